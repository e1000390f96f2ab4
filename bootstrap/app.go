// Package bootstrap assembles the application: framework providers, the
// telephone field plugin and the HTTP routes, in boot order.
package bootstrap

import (
	approviders "github.com/km-arc/go-laravel-telephone/app/providers"
	"github.com/km-arc/go-laravel-telephone/framework/app"
	"github.com/km-arc/go-laravel-telephone/telephone"
)

// App creates the application. Bindings may still be replaced with
// Instance until the first Boot.
func App(envFiles ...string) *app.Application {
	application := app.New(envFiles...)
	application.Register(&telephone.ServiceProvider{})
	application.Register(&approviders.RouteServiceProvider{})
	return application
}
