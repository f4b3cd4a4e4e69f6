package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/km-arc/go-laravel/framework/config"
	"github.com/km-arc/go-laravel/framework/container"
	"github.com/km-arc/go-laravel/framework/logging"
	"github.com/km-arc/go-laravel/framework/providers"
	"github.com/km-arc/go-laravel/framework/routing"
	"github.com/km-arc/go-laravel/framework/support"
)

// Application is the top-level application container.
// It embeds the IoC Container so user code can call app.Bind(),
// app.Singleton(), app.Make() directly — like $app in bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRepository

	closer io.Closer
}

// Option customises New.
type Option func(*options)

type options struct {
	envFiles  []string
	catalog   *providers.Catalog
	edit      func(support.DefaultProviders) support.DefaultProviders
	logOutput io.Writer
}

// WithEnvFiles loads the given .env files instead of ".env".
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = files }
}

// WithCatalog resolves provider identifiers through catalog instead of
// providers.NewCatalog().
func WithCatalog(catalog *providers.Catalog) Option {
	return func(o *options) { o.catalog = catalog }
}

// WithProviders edits the provider list after the APP_PROVIDERS* settings
// have been applied.
//
//	// Laravel (bootstrap/providers.php):
//	// return ServiceProvider::defaultProviders()->merge([AppServiceProvider::class])->toArray();
//	app.New(app.WithProviders(func(d support.DefaultProviders) support.DefaultProviders {
//	    return d.Merge(`App\Providers\AppServiceProvider`)
//	}))
func WithProviders(edit func(support.DefaultProviders) support.DefaultProviders) Option {
	return func(o *options) { o.edit = edit }
}

// WithLogOutput sends log output to w instead of stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// New creates and bootstraps the application: it loads configuration,
// registers the base providers (config, log, router), then registers each
// configured provider identifier in list order.
func New(opts ...Option) (*Application, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		o.catalog = providers.NewCatalog()
	}

	cfg := config.Load(o.envFiles...)
	logger, closer := logging.New(cfg.Log, o.logOutput)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	c := container.New()
	repo := container.NewProviderRepository(c)
	c.Instance("providers", repo)

	application := &Application{Container: c, Providers: repo, closer: closer}

	// Base providers are always present and not part of the configurable list.
	repo.Register(&providers.ConfigServiceProvider{Config: cfg})
	repo.Register(&providers.LogServiceProvider{Logger: logger})
	repo.Register(&providers.RoutingServiceProvider{})

	list := cfg.Providers.Build()
	if o.edit != nil {
		list = o.edit(list)
	}
	if err := providers.Load(repo, o.catalog, list.ToArray(), cfg.Providers.Strict, logger); err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("app: register providers: %w", err)
	}

	logger.Info("providers registered",
		"configured", list.Len(),
		"loaded", len(repo.Loaded()),
	)
	return application, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Logger resolves the application *slog.Logger.
func (a *Application) Logger() *slog.Logger {
	return container.Resolve[*slog.Logger](a.Container, "log")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// LoadedProviders returns the identifiers registered from the provider list.
func (a *Application) LoadedProviders() []string { return a.Providers.Loaded() }

// Run boots the application (if needed) and serves HTTP on APP_PORT until
// ctx is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	logger := a.Logger()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "app", cfg.App.Name, "addr", srv.Addr, "env", cfg.App.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}

// Close releases the log file, if any.
func (a *Application) Close() error {
	return a.closer.Close()
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Config().App.IsProduction() }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
func (a *Application) Version() string     { return "0.2.0" }
