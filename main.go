package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-laravel/framework/app"
	"github.com/km-arc/go-laravel/framework/container"
	gohttp "github.com/km-arc/go-laravel/framework/http"
	"github.com/km-arc/go-laravel/framework/providers"
	"github.com/km-arc/go-laravel/framework/routing"
	"github.com/km-arc/go-laravel/framework/support"
)

const appServiceProvider = `App\Providers\AppServiceProvider`

// AppServiceProvider registers the example application's routes.
type AppServiceProvider struct{ container.BaseProvider }

func (p *AppServiceProvider) Register(app *container.Container) {}

func (p *AppServiceProvider) Boot(app *container.Container) {
	r := container.Resolve[*routing.Router](app, "router")

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{"message": "Welcome to Go-Laravel!"})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			gohttp.NewResponse(w).Success(map[string]any{"id": routing.Param(req, "id")})
		})
	})
}

func main() {
	catalog := providers.NewCatalog()
	catalog.Register(appServiceProvider, func() container.ServiceProvider { return &AppServiceProvider{} })

	application, err := app.New(
		app.WithCatalog(catalog),
		// bootstrap/providers.php
		app.WithProviders(func(d support.DefaultProviders) support.DefaultProviders {
			return d.Merge(appServiceProvider)
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger().Error("server error", "error", err)
		os.Exit(1)
	}
}
