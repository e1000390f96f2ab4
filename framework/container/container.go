package container

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotBound is returned by Get when nothing is registered under an abstract.
var ErrNotBound = errors.New("container: no binding registered")

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// binding holds a registered factory and whether it is a singleton.
type binding struct {
	factory   Factory
	singleton bool
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the service container the host and its field plugins share.
//
// It supports:
//   - Bind / Singleton / Instance / Alias
//   - Make / Get / Resolve (generic)
//   - Tags (group field types and other services under one name)
//   - Resolved event callbacks
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved singleton instance
	instances map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string

	// tag → []abstract
	tags map[string][]string

	// resolved callbacks: []func(abstract, instance)
	afterResolving []func(string, any)
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
		tags:      make(map[string][]string),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient (new instance each Make) factory.
//
//	c.Bind("telephone.normalizer", func(c *container.Container) any {
//	    return telephone.NewNormalizer(container.Resolve[phone.Capability](c, "phone"), "US")
//	})
func (c *Container) Bind(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bind(abstract, factory, false)
}

// Singleton registers a factory whose result is cached after first resolution.
//
//	c.Singleton("phone", func(c *container.Container) any {
//	    return phone.NewLibrary()
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bind(abstract, factory, true)
}

// Instance registers a pre-built value as a singleton.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

// bind is the internal registration helper (must hold mu.Lock).
func (c *Container) bind(abstract string, factory Factory, singleton bool) {
	key := c.canonical(abstract)
	// Drop the cached instance so it is rebuilt with the new factory.
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory, singleton: singleton}
}

// Alias registers an alternative name for an abstract.
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Tags ──────────────────────────────────────────────────────────────────────

// Tag associates multiple abstracts under a named group.
//
//	c.Tag([]string{"fields.phone", "fields.fax"}, "fields")
func (c *Container) Tag(abstracts []string, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[tag] = append(c.tags[tag], abstracts...)
}

// Tagged resolves all abstracts registered under a tag, in tagging order.
func (c *Container) Tagged(tag string) []any {
	c.mu.RLock()
	abstracts := append([]string(nil), c.tags[tag]...)
	c.mu.RUnlock()

	result := make([]any, 0, len(abstracts))
	for _, abs := range abstracts {
		result = append(result, c.Make(abs))
	}
	return result
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container and panics when nothing is
// bound. Use Get where a missing binding is an expected condition.
func (c *Container) Make(abstract string) any {
	instance, err := c.Get(abstract)
	if err != nil {
		panic(err.Error())
	}
	return instance
}

// Get resolves an abstract, returning ErrNotBound when it is unknown.
func (c *Container) Get(abstract string) (any, error) {
	c.mu.RLock()
	key := c.canonical(abstract)
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w for [%s]", ErrNotBound, abstract)
	}
	if !b.singleton {
		return c.build(key, b.factory), nil
	}

	// Factories may resolve other singletons, so build without holding the
	// lock and keep whichever instance was stored first.
	inst := c.build(key, b.factory)
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.instances[key]; ok {
		return existing, nil
	}
	c.instances[key] = inst
	return inst, nil
}

func (c *Container) build(key string, f Factory) any {
	instance := f(c)
	c.fireAfterResolving(key, instance)
	return instance
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound returns true if an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasBinding := c.bindings[key]
	_, hasInstance := c.instances[key]
	return hasBinding || hasInstance
}

// Resolved returns true if the abstract has been resolved as a singleton.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// canonical resolves an alias to its canonical key.
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Callbacks ─────────────────────────────────────────────────────────────────

// AfterResolving registers a callback fired after any factory runs.
func (c *Container) AfterResolving(cb func(abstract string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

func (c *Container) fireAfterResolving(abstract string, instance any) {
	c.mu.RLock()
	cbs := c.afterResolving
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(abstract, instance)
	}
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result.
//
//	capability := container.Resolve[phone.Capability](c, "phone")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}

// TryResolve is like Resolve but reports a missing or mistyped binding
// instead of panicking.
func TryResolve[T any](c *Container, abstract string) (T, bool) {
	instance, err := c.Get(abstract)
	if err != nil {
		var zero T
		return zero, false
	}
	typed, ok := instance.(T)
	return typed, ok
}
