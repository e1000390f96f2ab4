// Package http provides the host's request and response helpers and the view
// engine field plugins render their inputs with.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	var payload struct {
//	    CountryCode string `json:"countryCode"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	handle := req.RouteParam("handle")
//	values := req.Nested("fields") // fields[phone][rawInput]=...
//
// # Response
//
//	res := gohttp.NewResponse(w)
//	res.Success(data)             // 200 {"data": ...}
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.ValidationError(errs)     // 422 {"errors": {"field": ["msg"]}}
//	res.HTML(200, fragment)
//
// # ViewEngine
//
//	engine := gohttp.NewViewEngine(viewsFS, ".html", nil)
//	html, err := engine.Render("input", data)
package http
