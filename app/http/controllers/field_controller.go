package controllers

import (
	"net/http"

	"github.com/km-arc/go-laravel-telephone/framework/app"
	"github.com/km-arc/go-laravel-telephone/framework/fields"
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
)

// FieldController exposes a single field's lifecycle over HTTP.
type FieldController struct {
	app.Controller
	Fields *fields.Registry
}

type fieldSummary struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

type normalized struct {
	Value  any     `json:"value"`
	Stored *string `json:"stored"`
	Empty  bool    `json:"empty"`
	Table  string  `json:"table"`
}

// Index lists the configured fields.
// GET /fields
func (c *FieldController) Index(w http.ResponseWriter, r *http.Request) {
	out := make([]fieldSummary, 0)
	for _, handle := range c.Fields.Handles() {
		f, _ := c.Fields.Get(handle)
		out = append(out, fieldSummary{Handle: handle, Name: f.Name(), Type: f.Kind()})
	}
	c.Response(w).Success(out)
}

// Normalize resolves a posted or stored value and echoes every form of it.
// POST /fields/{handle}/normalize
func (c *FieldController) Normalize(w http.ResponseWriter, r *http.Request) {
	f, ok := c.field(w, r)
	if !ok {
		return
	}
	value, ok := c.posted(w, r, f)
	if !ok {
		return
	}
	c.Response(w).Success(present(f, value))
}

// Validate runs the field's validation on a posted value.
// POST /fields/{handle}/validate
func (c *FieldController) Validate(w http.ResponseWriter, r *http.Request) {
	f, ok := c.field(w, r)
	if !ok {
		return
	}
	value, ok := c.posted(w, r, f)
	if !ok {
		return
	}
	errs := &validation.Errors{}
	f.Validate(value, errs)
	if errs.Has() {
		c.Response(w).ValidationError(errs)
		return
	}
	c.Response(w).Success(present(f, value))
}

// Input renders the edit control. ?stored= carries the stored form to
// redisplay.
// GET /fields/{handle}/input
func (c *FieldController) Input(w http.ResponseWriter, r *http.Request) {
	f, ok := c.field(w, r)
	if !ok {
		return
	}
	var raw any
	if stored := c.Request(r).Query("stored"); stored != "" {
		raw = stored
	}
	html, err := f.InputHTML(f.Normalize(raw))
	if err != nil {
		c.Response(w).ServerError(err.Error())
		return
	}
	c.Response(w).HTML(http.StatusOK, html)
}

// Settings renders the field's settings form.
// GET /fields/{handle}/settings
func (c *FieldController) Settings(w http.ResponseWriter, r *http.Request) {
	f, ok := c.field(w, r)
	if !ok {
		return
	}
	html, err := f.SettingsHTML()
	if err != nil {
		c.Response(w).ServerError(err.Error())
		return
	}
	c.Response(w).HTML(http.StatusOK, html)
}

func (c *FieldController) field(w http.ResponseWriter, r *http.Request) (fields.Type, bool) {
	handle := c.Request(r).RouteParam("handle")
	f, ok := c.Fields.Get(handle)
	if !ok {
		c.Response(w).NotFound("Unknown field " + handle + ".")
	}
	return f, ok
}

func (c *FieldController) posted(w http.ResponseWriter, r *http.Request, f fields.Type) (any, bool) {
	raw, err := postedValue(c.Request(r), f.Handle())
	if err == nil {
		var value any
		if value, err = decodePosted(f, raw); err == nil {
			return value, true
		}
	}
	badRequest(c.Response(w), err)
	return nil, false
}

func present(f fields.Type, value any) normalized {
	out := normalized{
		Value: f.Export(value),
		Empty: f.IsEmpty(value),
		Table: f.TableAttribute(value),
	}
	if s, ok := f.Serialize(value); ok {
		out.Stored = &s
	}
	return out
}
