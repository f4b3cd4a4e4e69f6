package container

import (
	"fmt"
	"sync"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider mirrors Laravel's Illuminate\Support\ServiceProvider.
//
// Every provider must implement at minimum Register().
// Boot() is called after ALL providers have been registered, making it safe
// to resolve other bindings inside Boot().
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Singleton("clock", func(c *container.Container) any { return time.Now })
//	}
type ServiceProvider interface {
	// Register binds services into the container.
	// Do NOT resolve other bindings here — use Boot() for that.
	Register(app *Container)

	// Boot is called after all providers are registered.
	Boot(app *Container)

	// Provides returns the abstract keys a deferred provider registers.
	//
	//	// Laravel: public function provides(): array { return [Cache::class]; }
	Provides() []string

	// IsDeferred returns true if this provider should be loaded lazily —
	// only when one of its Provides() abstracts is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct that provides no-op implementations
// of Boot(), Provides(), and IsDeferred().
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool { return false }

// ── ProviderRepository ────────────────────────────────────────────────────────

// ProviderRepository registers and boots ServiceProviders in the order they
// are handed to it, including deferred (lazy) providers. It mirrors
// Laravel's Application::register, Application::boot and
// Illuminate\Foundation\ProviderRepository.
type ProviderRepository struct {
	app *Container

	mu         sync.Mutex
	eager      []ServiceProvider
	loaded     []string
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRepository creates a repository bound to app.
func NewProviderRepository(app *Container) *ProviderRepository {
	return &ProviderRepository{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method (unless deferred).
// Registering the same provider twice is a no-op.
//
//	// Laravel: $app->register(new AppServiceProvider($app))
func (r *ProviderRepository) Register(provider ServiceProvider) {
	r.RegisterAs("", provider)
}

// RegisterAs is Register with the identifier the provider was loaded from,
// as reported by Loaded().
func (r *ProviderRepository) RegisterAs(id string, provider ServiceProvider) {
	r.mu.Lock()
	if r.registered[provider] {
		r.mu.Unlock()
		return
	}
	r.registered[provider] = true
	if id != "" {
		r.loaded = append(r.loaded, id)
	}

	if provider.IsDeferred() {
		r.mu.Unlock()
		r.interceptDeferred(provider)
		return
	}

	r.eager = append(r.eager, provider)
	booted := r.booted
	r.mu.Unlock()

	provider.Register(r.app)
	if booted {
		provider.Boot(r.app)
	}
}

// deferredLoad tracks the one-time registration of a deferred provider.
type deferredLoad struct {
	provider     ServiceProvider
	once         sync.Once
	placeholders map[string]*binding
	unbound      map[string]bool // set once Register has returned
}

// interceptDeferred binds a placeholder for each deferred abstract. The first
// Make() of any of them registers the provider for real (replacing the
// placeholders) and resolves again. Concurrent callers wait for that
// registration to finish.
func (r *ProviderRepository) interceptDeferred(provider ServiceProvider) {
	load := &deferredLoad{
		provider:     provider,
		placeholders: make(map[string]*binding),
	}
	for _, abstract := range provider.Provides() {
		abs := abstract
		load.placeholders[abs] = &binding{factory: func(c *Container) any {
			r.loadDeferred(load)
			if load.unbound[abs] {
				panic(fmt.Sprintf("container: deferred provider %T did not bind [%s]", provider, abs))
			}
			return c.Make(abs)
		}}
	}
	// Publish only after placeholders is complete; loadDeferred reads it.
	for abs, placeholder := range load.placeholders {
		r.app.bindPlaceholder(abs, placeholder)
	}
}

// loadDeferred registers a deferred provider exactly once. Callers arriving
// while Register is running block until it returns.
func (r *ProviderRepository) loadDeferred(load *deferredLoad) {
	load.once.Do(func() {
		provider := load.provider
		provider.Register(r.app)

		load.unbound = make(map[string]bool)
		for abs, placeholder := range load.placeholders {
			if r.app.bindingFor(abs) == placeholder {
				load.unbound[abs] = true
			}
		}

		r.mu.Lock()
		booted := r.booted
		if !booted {
			// Loaded before Boot(): boot it with the eager providers.
			r.eager = append(r.eager, provider)
		}
		r.mu.Unlock()

		if booted {
			provider.Boot(r.app)
		}
	})
}

// Boot calls Boot() on all eager providers in registration order.
// Subsequent calls are no-ops.
//
//	// Laravel: $app->boot()
func (r *ProviderRepository) Boot() {
	r.mu.Lock()
	if r.booted {
		r.mu.Unlock()
		return
	}
	r.booted = true
	eager := append([]ServiceProvider(nil), r.eager...)
	r.mu.Unlock()

	for _, provider := range eager {
		provider.Boot(r.app)
	}
}

// Booted returns true if Boot() has been called.
func (r *ProviderRepository) Booted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.booted
}

// Providers returns the providers that boot with Boot(): eager ones and
// deferred ones already loaded before Boot().
func (r *ProviderRepository) Providers() []ServiceProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ServiceProvider(nil), r.eager...)
}

// Loaded returns the identifiers passed to RegisterAs, in order.
func (r *ProviderRepository) Loaded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.loaded...)
}
