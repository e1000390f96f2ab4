package fields

import (
	"fmt"
	"sort"
	"sync"

	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
)

// Factory builds a field instance of one kind from its definition.
type Factory func(def Definition) (Type, error)

// Kinds maps field type names ("telephone") to the plugin factories that
// build them.
type Kinds struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewKinds() *Kinds {
	return &Kinds{factories: make(map[string]Factory)}
}

// Add registers the factory for kind, replacing any earlier one.
func (k *Kinds) Add(kind string, f Factory) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.factories[kind] = f
}

// Build creates the field described by def.
func (k *Kinds) Build(def Definition) (Type, error) {
	k.mu.RLock()
	f, ok := k.factories[def.Kind]
	k.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("field %s: unknown type %q", def.Handle, def.Kind)
	}
	return f(def)
}

// Registry holds the configured field instances by handle.
type Registry struct {
	mu       sync.RWMutex
	fields   map[string]Type
	required map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		fields:   make(map[string]Type),
		required: make(map[string]bool),
	}
}

// Register adds f. Registering a second field under the same handle fails.
func (r *Registry) Register(f Type, required bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.fields[f.Handle()]; dup {
		return fmt.Errorf("fields: handle %q already registered", f.Handle())
	}
	r.fields[f.Handle()] = f
	r.required[f.Handle()] = required
	return nil
}

// Get returns the field registered under handle.
func (r *Registry) Get(handle string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fields[handle]
	return f, ok
}

// Handles returns every registered handle, sorted.
func (r *Registry) Handles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.fields))
	for h := range r.fields {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// Load normalizes stored column values for every registered field. Fields
// with no stored entry normalize from nil.
func (r *Registry) Load(stored map[string]*string) map[string]any {
	out := make(map[string]any)
	for _, handle := range r.Handles() {
		f, _ := r.Get(handle)
		var raw any
		if s := stored[handle]; s != nil {
			raw = *s
		}
		out[handle] = f.Normalize(raw)
	}
	return out
}

// Save runs one element save pass: every field normalizes its posted value,
// validates it, and serializes it. Values are only returned when the whole
// element validates; a nil entry means the column stores NULL.
func (r *Registry) Save(posted map[string]any) (map[string]*string, *validation.Errors) {
	errs := &validation.Errors{}
	stored := make(map[string]*string)

	for _, handle := range r.Handles() {
		f, _ := r.Get(handle)
		value := f.Normalize(posted[handle])

		r.mu.RLock()
		required := r.required[handle]
		r.mu.RUnlock()

		// The field's own message wins over the blank check.
		f.Validate(value, errs)
		if required && f.IsEmpty(value) && errs.First(handle) == "" {
			errs.Add(handle, fmt.Sprintf("%s cannot be blank.", f.Name()))
		}
		if s, ok := f.Serialize(value); ok {
			stored[handle] = &s
		} else {
			stored[handle] = nil
		}
	}

	if errs.Has() {
		return nil, errs
	}
	return stored, nil
}
