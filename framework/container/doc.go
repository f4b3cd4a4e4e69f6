// Package container provides the IoC container and Service Provider system
// the bootstrap sequence registers providers into.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: repo.Register(&MyProvider{})
//  3. Boot: repo.Boot()        — safe to resolve everything after this
//  4. Serve requests
//
// # Bindings
//
//	// Transient — new instance every Make()
//	c.Bind("Foo", func(c *container.Container) any { return &Foo{} })
//
//	// Singleton — created once, reused
//	c.Singleton("router", func(c *container.Container) any { return routing.New() })
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
// # Resolving
//
//	raw := c.Make("router")
//	router := container.Resolve[*routing.Router](c, "router")
//
// # Service Providers
//
//	repo := container.NewProviderRepository(c)
//	repo.RegisterAs(`App\Providers\AppServiceProvider`, &AppServiceProvider{})
//	repo.Boot()
//
// # Deferred Providers
//
//	type HeavyProvider struct{ container.BaseProvider }
//
//	func (p *HeavyProvider) IsDeferred() bool   { return true }
//	func (p *HeavyProvider) Provides() []string { return []string{"heavy"} }
//	func (p *HeavyProvider) Register(app *container.Container) {
//	    app.Singleton("heavy", func(c *container.Container) any {
//	        return heavySetup() // only called on first app.Make("heavy")
//	    })
//	}
package container
