package providers

import (
	"log/slog"
	"net/http"

	"github.com/km-arc/go-laravel/framework/config"
	"github.com/km-arc/go-laravel/framework/container"
	gohttp "github.com/km-arc/go-laravel/framework/http"
	"github.com/km-arc/go-laravel/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the loaded application configuration.
//
// Bound abstracts:
//   - "config"  → *config.Config
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->instance('config', $config = new Repository($items));
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	app.Instance("config", p.Config)
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds the application logger.
//
// Bound abstracts:
//   - "log"  → *slog.Logger
//
// Laravel equivalent:
//
//	// Illuminate\Log\LogServiceProvider
//	$this->app->singleton('log', fn ($app) => new LogManager($app));
type LogServiceProvider struct {
	container.BaseProvider
	Logger *slog.Logger
}

func (p *LogServiceProvider) Register(app *container.Container) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	app.Instance("log", logger)
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router"  → *routing.Router
//
// Laravel equivalent:
//
//	// Illuminate\Routing\RoutingServiceProvider
//	$app->singleton('router', fn($app) => new Router($app['events'], $app));
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		logger, _ := container.MustResolve[*slog.Logger](c, "log")
		return routing.New(logger)
	})
}

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template engine. It is deferred: the
// engine is only built when "view" is first resolved.
//
// Bound abstracts:
//   - "view"   → *gohttp.ViewEngine
//
// Environment read at registration:
//   - VIEW_PATH (default: "./views")
//
// Laravel equivalent:
//
//	// Illuminate\View\ViewServiceProvider
//	$app->singleton('view', fn($app) => new Factory(...));
type ViewServiceProvider struct {
	container.BaseProvider
	Dir string // template directory, default: VIEW_PATH or "./views"
	Ext string // file extension,    default: ".html"
}

func (p *ViewServiceProvider) IsDeferred() bool { return true }
func (p *ViewServiceProvider) Provides() []string { return []string{"view"} }

func (p *ViewServiceProvider) Register(app *container.Container) {
	dir := p.Dir
	if dir == "" {
		dir = config.Get("VIEW_PATH", "./views")
	}
	ext := p.Ext
	if ext == "" {
		ext = ".html"
	}

	app.Singleton("view", func(c *container.Container) any {
		return gohttp.NewViewEngine(dir, ext)
	})
}

// ── FoundationServiceProvider ─────────────────────────────────────────────────

// FoundationServiceProvider registers the framework's own routes on Boot:
//
//	GET /up                    → 200 {"data": {"status": "up"}}
//	GET /_framework/providers  → 200 {"data": ["<loaded provider id>", ...]}
//
// The provider listing is only mounted when APP_DEBUG is on and APP_ENV is
// not production.
//
// Laravel equivalent:
//
//	// ->withRouting(health: '/up')
type FoundationServiceProvider struct {
	container.BaseProvider
}

func (p *FoundationServiceProvider) Register(app *container.Container) {}

func (p *FoundationServiceProvider) Boot(app *container.Container) {
	router, ok := container.MustResolve[*routing.Router](app, "router")
	if !ok {
		return
	}

	router.Get("/up", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Success(map[string]string{"status": "up"})
	})

	cfg, _ := container.MustResolve[*config.Config](app, "config")
	repo, ok := container.MustResolve[*container.ProviderRepository](app, "providers")
	if cfg == nil || !cfg.App.Debug || cfg.App.IsProduction() || !ok {
		return
	}
	router.Get("/_framework/providers", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Success(repo.Loaded())
	})
}
