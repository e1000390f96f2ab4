// Package container provides the service container and provider registry the
// host uses to wire configuration, logging, metrics and field plugins.
//
// # Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot(), safe to resolve everything after this
//  4. Serve requests
//
// # Bindings
//
//	c.Bind("normalizer", func(c *container.Container) any { return newNormalizer() })
//	c.Singleton("phone", func(c *container.Container) any { return phone.NewLibrary() })
//	c.Instance("config", cfg)
//	c.Alias("config", "configuration")
//
// # Resolving
//
//	raw := c.Make("phone")
//	capability := container.Resolve[phone.Capability](c, "phone")
//	logger, ok := container.TryResolve[*log.Logger](c, "log")
//
// # Tags
//
// Field plugins tag each field instance they bind with "fields" so the host
// can build its registry without knowing the concrete types:
//
//	c.Tag([]string{"fields.phone"}, "fields")
//	for _, f := range c.Tagged("fields") { ... }
//
// # Deferred Providers
//
//	type HeavyProvider struct{ container.BaseProvider }
//
//	func (p *HeavyProvider) IsDeferred() bool   { return true }
//	func (p *HeavyProvider) Provides() []string { return []string{"heavy"} }
package container
