package controllers

import (
	"net/http"

	"github.com/km-arc/go-laravel-telephone/framework/app"
	"github.com/km-arc/go-laravel-telephone/framework/fields"
)

// ElementController runs whole-element save and load passes.
type ElementController struct {
	app.Controller
	Fields *fields.Registry
}

type savedElement struct {
	Stored map[string]*string `json:"stored"`
	Values map[string]any     `json:"values"`
}

type loadBody struct {
	Stored map[string]*string `json:"stored"`
}

// Store validates every posted field and answers with the column values a
// host would persist.
// POST /elements
func (c *ElementController) Store(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	posted, err := postedFields(c.Request(r))
	if err != nil {
		badRequest(res, err)
		return
	}
	for handle, raw := range posted {
		f, ok := c.Fields.Get(handle)
		if !ok {
			continue
		}
		if posted[handle], err = decodePosted(f, raw); err != nil {
			badRequest(res, err)
			return
		}
	}
	stored, errs := c.Fields.Save(posted)
	if errs != nil {
		res.ValidationError(errs)
		return
	}
	res.Created(savedElement{Stored: stored, Values: c.export(c.Fields.Load(stored))})
}

// Load normalizes stored column values the way an element read would.
// POST /elements/load
func (c *ElementController) Load(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	var body loadBody
	if err := c.Request(r).Bind(&body); err != nil {
		badRequest(res, err)
		return
	}
	res.Success(c.export(c.Fields.Load(body.Stored)))
}

func (c *ElementController) export(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for handle, v := range values {
		f, _ := c.Fields.Get(handle)
		out[handle] = f.Export(v)
	}
	return out
}
