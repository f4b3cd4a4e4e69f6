package providers

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/km-arc/go-laravel/framework/container"
	"github.com/km-arc/go-laravel/framework/support"
)

// ErrUnknownProvider is returned by Load in strict mode when an identifier
// has no constructor in the catalog.
var ErrUnknownProvider = errors.New("providers: unknown provider")

// Constructor builds a fresh ServiceProvider.
type Constructor func() container.ServiceProvider

// Catalog maps provider identifiers onto constructors. It is how an opaque
// identifier from support.DefaultProviders becomes a live ServiceProvider.
//
//	catalog := providers.NewCatalog()
//	catalog.Register(`App\Providers\AppServiceProvider`, func() container.ServiceProvider {
//	    return &AppServiceProvider{}
//	})
type Catalog struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewCatalog returns a catalog holding the providers this framework ships.
func NewCatalog() *Catalog {
	c := &Catalog{constructors: make(map[string]Constructor)}
	c.Register(support.FoundationServiceProvider, func() container.ServiceProvider {
		return &FoundationServiceProvider{}
	})
	c.Register(support.ViewServiceProvider, func() container.ServiceProvider {
		return &ViewServiceProvider{}
	})
	return c
}

// Register adds or replaces the constructor for id.
func (c *Catalog) Register(id string, ctor Constructor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constructors[id] = ctor
}

// Lookup returns the constructor for id.
func (c *Catalog) Lookup(id string) (Constructor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ctor, ok := c.constructors[id]
	return ctor, ok
}

// IDs returns every registered identifier, sorted.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.constructors))
	for id := range c.constructors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Load registers the provider behind each identifier in ids, in order.
//
// Identifiers missing from the catalog are skipped (logged at debug), or, when
// strict is set, stop loading with an error wrapping ErrUnknownProvider.
// Providers registered before the failure stay registered. An identifier
// listed more than once is only registered the first time.
//
//	// Laravel: $app->registerConfiguredProviders()
func Load(repo *container.ProviderRepository, catalog *Catalog, ids []string, strict bool, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		ctor, ok := catalog.Lookup(id)
		if !ok {
			if strict {
				return fmt.Errorf("%w: %s", ErrUnknownProvider, id)
			}
			logger.Debug("skipping provider with no implementation", "provider", id)
			continue
		}
		repo.RegisterAs(id, ctor())
		logger.Debug("registered provider", "provider", id)
	}
	return nil
}
