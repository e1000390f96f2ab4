package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/km-arc/go-laravel-telephone/framework/config"
	"github.com/km-arc/go-laravel-telephone/framework/container"
	"github.com/km-arc/go-laravel-telephone/framework/fields"
	gohttp "github.com/km-arc/go-laravel-telephone/framework/http"
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
	"github.com/km-arc/go-laravel-telephone/framework/log"
	"github.com/km-arc/go-laravel-telephone/framework/providers"
	"github.com/km-arc/go-laravel-telephone/framework/routing"
)

const shutdownTimeout = 10 * time.Second

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so plugins can call
// app.Singleton() and app.Register() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application with the framework providers registered.
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LogServiceProvider{})
	registry.Register(&providers.MetricsServiceProvider{})
	registry.Register(&providers.ValidationServiceProvider{})
	registry.Register(&providers.FieldServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	app.traceResolutions()
	return app
}

// traceResolutions debug-logs every factory the container runs once the
// logger itself is available.
func (a *Application) traceResolutions() {
	a.AfterResolving(func(abstract string, instance any) {
		if abstract == "log" || !a.Resolved("log") {
			return
		}
		a.Logger().Debug("service_resolved",
			zap.String("abstract", abstract),
			zap.String("type", fmt.Sprintf("%T", instance)),
		)
	})
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

// Logger resolves *log.Logger from the container.
func (a *Application) Logger() *log.Logger {
	return container.Resolve[*log.Logger](a.Container, "log")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Fields resolves the field registry. Call it after Boot so plugin kinds
// are known.
func (a *Application) Fields() *fields.Registry {
	return container.Resolve[*fields.Registry](a.Container, "fields")
}

// Validator resolves the validation factory.
func (a *Application) Validator() *validation.Factory {
	return container.Resolve[*validation.Factory](a.Container, "validator")
}

// Handler boots the application if needed and returns the router.
func (a *Application) Handler() http.Handler {
	if !a.Providers.Booted() {
		a.Boot()
	}
	return a.Router()
}

// Run serves HTTP on APP_PORT until ctx is cancelled, then drains
// in-flight requests.
func (a *Application) Run(ctx context.Context) error {
	handler := a.Handler()
	cfg := a.Config()
	logger := a.Logger()

	registry := a.Fields()
	logger.Info("fields_loaded", zap.Strings("handles", registry.Handles()))

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server_started",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server_stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	_ = logger.Sync()
	return err
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

// Controller is an embeddable base for HTTP controllers.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}
func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
