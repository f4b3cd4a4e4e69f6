package container

import (
	"fmt"
	"slices"
	"sync"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// binding holds a registered factory and whether it is a singleton.
type binding struct {
	factory   Factory
	singleton bool
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container — mirrors the parts of Laravel's
// Illuminate\Container\Container that service providers rely on during
// bootstrap: Bind / Singleton / Instance, Make / Resolve, Bound.
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved singleton instance
	instances map[string]any
}

// New creates an empty container bound to itself under "container".
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient (new instance each Make) factory.
//
//	// Laravel: $app->bind(UserRepository::class, fn($app) => new EloquentUserRepository($app))
func (c *Container) Bind(abstract string, factory Factory) {
	c.bind(abstract, factory, false)
}

// Singleton registers a factory whose result is cached after first resolution.
//
//	// Laravel: $app->singleton('router', fn($app) => new Router($app))
func (c *Container) Singleton(abstract string, factory Factory) {
	c.bind(abstract, factory, true)
}

// Instance registers a pre-built value as a singleton.
//
//	// Laravel: $app->instance('config', $config)
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bindings, abstract)
	c.instances[abstract] = instance
}

func (c *Container) bind(abstract string, factory Factory, singleton bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Drop a cached instance so the new factory takes effect.
	delete(c.instances, abstract)
	c.bindings[abstract] = &binding{factory: factory, singleton: singleton}
}

// bindPlaceholder installs b as the binding for abstract. Callers keep b to
// tell later whether it was replaced.
func (c *Container) bindPlaceholder(abstract string, b *binding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, abstract)
	c.bindings[abstract] = b
}

// bindingFor returns the current binding for abstract, or nil.
func (c *Container) bindingFor(abstract string) *binding {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bindings[abstract]
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container. It panics when nothing is
// registered under abstract.
//
//	// Laravel: $app->make('router')
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	if inst, ok := c.instances[abstract]; ok {
		c.mu.RUnlock()
		return inst
	}
	b, ok := c.bindings[abstract]
	c.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	// Factories may call Make themselves, so run them unlocked.
	instance := b.factory(c)

	if b.singleton {
		c.mu.Lock()
		// A concurrent Make may have won the race; keep the first instance.
		if existing, ok := c.instances[abstract]; ok {
			instance = existing
		} else if c.bindings[abstract] == b {
			c.instances[abstract] = instance
		}
		c.mu.Unlock()
	}
	return instance
}

// Bound returns true if an abstract has been registered.
//
//	// Laravel: $app->bound('view')
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasBinding := c.bindings[abstract]
	_, hasInstance := c.instances[abstract]
	return hasBinding || hasInstance
}

// Resolved returns true if the abstract has a cached instance.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[abstract]
	return ok
}

// Bindings returns every registered abstract key, sorted.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings)+len(c.instances))
	for k := range c.bindings {
		out = append(out, k)
	}
	for k := range c.instances {
		if _, already := c.bindings[k]; !already {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result, panicking on mismatch.
//
//	// Instead of: router := c.Make("router").(*routing.Router)
//	// Write:      router := container.Resolve[*routing.Router](c, "router")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}

// MustResolve is like Resolve but returns (T, bool) without panicking,
// including when abstract is not bound.
func MustResolve[T any](c *Container, abstract string) (T, bool) {
	if !c.Bound(abstract) {
		var zero T
		return zero, false
	}
	typed, ok := c.Make(abstract).(T)
	return typed, ok
}
