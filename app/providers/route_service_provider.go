package providers

import (
	"github.com/km-arc/go-laravel-telephone/app/http/controllers"
	"github.com/km-arc/go-laravel-telephone/framework/container"
	"github.com/km-arc/go-laravel-telephone/framework/fields"
	"github.com/km-arc/go-laravel-telephone/framework/routing"
)

// RouteServiceProvider mounts the field and element endpoints. Register it
// after every field plugin so their kinds are known when the registry is
// first built.
type RouteServiceProvider struct {
	container.BaseProvider
}

func (p *RouteServiceProvider) Register(app *container.Container) {}

func (p *RouteServiceProvider) Boot(app *container.Container) {
	router := container.Resolve[*routing.Router](app, "router")
	registry := container.Resolve[*fields.Registry](app, "fields")

	fieldController := &controllers.FieldController{Fields: registry}
	elementController := &controllers.ElementController{Fields: registry}

	router.Get("/fields", fieldController.Index)
	router.Prefix("/fields/{handle}", func(r *routing.Router) {
		r.Post("/normalize", fieldController.Normalize)
		r.Post("/validate", fieldController.Validate)
		r.Get("/input", fieldController.Input)
		r.Get("/settings", fieldController.Settings)
	})

	router.Post("/elements", elementController.Store)
	router.Post("/elements/load", elementController.Load)
}
