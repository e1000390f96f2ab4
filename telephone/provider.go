package telephone

import (
	"github.com/km-arc/go-laravel-telephone/framework/config"
	"github.com/km-arc/go-laravel-telephone/framework/container"
	"github.com/km-arc/go-laravel-telephone/framework/fields"
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
	"github.com/km-arc/go-laravel-telephone/framework/log"
	"github.com/km-arc/go-laravel-telephone/framework/metrics"
	"github.com/km-arc/go-laravel-telephone/framework/routing"
	"github.com/km-arc/go-laravel-telephone/phone"
)

// ServiceProvider installs the telephone field type into a host.
//
// Bound abstracts:
//   - "phone" → phone.Capability
//
// On boot it adds the "telephone" kind to "fields.kinds", the "telephone"
// rule to "validator" and GET /fields/telephone/countries to "router", skipping
// whichever of those the host does not bind.
type ServiceProvider struct {
	container.BaseProvider

	// Capability replaces the libphonenumber-backed default.
	Capability phone.Capability
}

func (p *ServiceProvider) Register(app *container.Container) {
	capability := p.Capability
	app.Singleton("phone", func(*container.Container) any {
		if capability != nil {
			return capability
		}
		return phone.NewLibrary()
	})
}

func (p *ServiceProvider) Boot(app *container.Container) {
	capability := container.Resolve[phone.Capability](app, "phone")

	defaults := DefaultSettings()
	if cfg, ok := container.TryResolve[*config.Config](app, "config"); ok {
		defaults.DefaultCountryCode = cfg.Telephone.DefaultCountryCode
		defaults.ShowCountrySelector = cfg.Telephone.ShowCountrySelector
	}

	if kinds, ok := container.TryResolve[*fields.Kinds](app, "fields.kinds"); ok {
		logger, _ := container.TryResolve[*log.Logger](app, "log")
		m, _ := container.TryResolve[*metrics.FieldMetrics](app, "metrics.fields")
		kinds.Add(Kind, func(def fields.Definition) (fields.Type, error) {
			f, err := FromDefinition(def, defaults, capability, logger, m)
			if err != nil {
				return nil, err
			}
			return f, nil
		})
	}

	if factory, ok := container.TryResolve[*validation.Factory](app, "validator"); ok {
		factory.Extend(Kind, Rule(capability, defaults.DefaultCountryCode))
	}

	if router, ok := container.TryResolve[*routing.Router](app, "router"); ok {
		router.Get("/fields/telephone/countries", CountriesHandler(capability))
	}
}
