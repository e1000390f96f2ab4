package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-telephone/framework/config"
	"github.com/km-arc/go-laravel-telephone/framework/container"
	"github.com/km-arc/go-laravel-telephone/framework/fields"
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
	"github.com/km-arc/go-laravel-telephone/framework/log"
	"github.com/km-arc/go-laravel-telephone/framework/metrics"
	"github.com/km-arc/go-laravel-telephone/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound abstracts:
//   - "config"        → *config.Config
//   - "configuration" → alias of "config"
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds the structured logger.
//
// Bound abstracts:
//   - "log" → *log.Logger
type LogServiceProvider struct {
	container.BaseProvider

	// Logger overrides the logger built from config, e.g. in tests.
	Logger *log.Logger
}

func (p *LogServiceProvider) Register(app *container.Container) {
	override := p.Logger
	app.Singleton("log", func(c *container.Container) any {
		if override != nil {
			return override
		}
		cfg := container.Resolve[*config.Config](c, "config")
		return log.Wrap(log.New(cfg.App.Env, cfg.Log.Level).With(zap.String("app", cfg.App.Name)))
	})
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider owns a private prometheus registry so several
// applications can live in one process. It is deferred: the registry and
// its collectors are only created once something resolves them.
//
// Bound abstracts:
//   - "metrics.registry" → *prometheus.Registry
//   - "metrics.fields"   → *metrics.FieldMetrics
type MetricsServiceProvider struct {
	container.BaseProvider
}

func (p *MetricsServiceProvider) IsDeferred() bool { return true }

func (p *MetricsServiceProvider) Provides() []string {
	return []string{"metrics.registry", "metrics.fields"}
}

func (p *MetricsServiceProvider) Register(app *container.Container) {
	app.Singleton("metrics.registry", func(c *container.Container) any {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg
	})
	app.Singleton("metrics.fields", func(c *container.Container) any {
		return metrics.NewFieldMetrics(container.Resolve[*prometheus.Registry](c, "metrics.registry"))
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router and mounts GET /metrics.
//
// Bound abstracts:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		logger, _ := container.TryResolve[*log.Logger](c, "log")
		return routing.New(logger)
	})
}

func (p *RoutingServiceProvider) Boot(app *container.Container) {
	if !app.Bound("metrics.registry") {
		return
	}
	reg := container.Resolve[*prometheus.Registry](app, "metrics.registry")
	container.Resolve[*routing.Router](app, "router").Handle("/metrics", metrics.Handler(reg))
}

// ── ValidationServiceProvider ─────────────────────────────────────────────────

// ValidationServiceProvider binds the validator factory plugins extend with
// their own rules.
//
// Bound abstracts:
//   - "validator" → *validation.Factory
type ValidationServiceProvider struct {
	container.BaseProvider
}

func (p *ValidationServiceProvider) Register(app *container.Container) {
	app.Singleton("validator", func(c *container.Container) any {
		return validation.NewFactory()
	})
}

// ── FieldServiceProvider ──────────────────────────────────────────────────────

// FieldServiceProvider binds the field kind table and the registry of field
// instances declared in the fields file. The registry is built on first
// resolution, after every plugin has added its kinds during Boot.
//
// Bound abstracts:
//   - "fields.kinds" → *fields.Kinds
//   - "fields"       → *fields.Registry
//
// Services tagged "fields" that resolve to a fields.Type are registered too.
type FieldServiceProvider struct {
	container.BaseProvider
}

func (p *FieldServiceProvider) Register(app *container.Container) {
	app.Singleton("fields.kinds", func(c *container.Container) any {
		return fields.NewKinds()
	})
	app.Singleton("fields", func(c *container.Container) any {
		return buildRegistry(c)
	})
}

func buildRegistry(c *container.Container) *fields.Registry {
	cfg := container.Resolve[*config.Config](c, "config")
	kinds := container.Resolve[*fields.Kinds](c, "fields.kinds")
	logger, ok := container.TryResolve[*log.Logger](c, "log")
	if !ok {
		logger = log.Nop()
	}

	registry := fields.NewRegistry()
	defs, err := fields.LoadDefinitions(cfg.Fields.Path)
	if err != nil {
		logger.Error("fields_load_failed", zap.String("path", cfg.Fields.Path), zap.Error(err))
	}
	for _, def := range defs {
		f, err := kinds.Build(def)
		if err == nil {
			err = registry.Register(f, def.Required)
		}
		if err != nil {
			logger.Error("field_build_failed", zap.String("field", def.Handle), zap.Error(err))
			continue
		}
		logger.Debug("field_registered", zap.String("field", def.Handle), zap.String("type", def.Kind))
	}

	for _, tagged := range c.Tagged("fields") {
		f, ok := tagged.(fields.Type)
		if !ok {
			continue
		}
		if err := registry.Register(f, false); err != nil {
			logger.Error("field_build_failed", zap.String("field", f.Handle()), zap.Error(err))
		}
	}
	return registry
}
