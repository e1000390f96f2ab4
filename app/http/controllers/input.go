package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/km-arc/go-laravel-telephone/framework/fields"
	gohttp "github.com/km-arc/go-laravel-telephone/framework/http"
)

// valueBody is the JSON body of the single-field endpoints. Value is either
// the stored string or an object with countryCode and rawInput.
type valueBody struct {
	Value any `json:"value"`
}

// elementBody is the JSON body of an element save.
type elementBody struct {
	Fields map[string]any `json:"fields"`
}

// postedValue reads one field's value from a JSON body or from
// fields[<handle>][...] form keys.
func postedValue(req *gohttp.Request, handle string) (any, error) {
	if sendsJSON(req) {
		var body valueBody
		if err := req.Bind(&body); err != nil && !errors.Is(err, gohttp.ErrEmptyBody) {
			return nil, err
		}
		return body.Value, nil
	}
	return formValue(req.Nested("fields")[handle]), nil
}

// postedFields reads every field value of an element save.
func postedFields(req *gohttp.Request) (map[string]any, error) {
	if sendsJSON(req) {
		var body elementBody
		if err := req.Bind(&body); err != nil {
			return nil, err
		}
		return body.Fields, nil
	}
	out := make(map[string]any)
	for handle, parts := range req.Nested("fields") {
		out[handle] = formValue(parts)
	}
	return out, nil
}

// formValue maps fields[h]=... to the stored string and fields[h][k]=... to
// a structured map.
func formValue(parts map[string]string) any {
	if parts == nil {
		return nil
	}
	if s, ok := parts[""]; ok && len(parts) == 1 {
		return s
	}
	delete(parts, "")
	return parts
}

// decodePosted normalizes one posted value, rejecting input the field
// reports as malformed.
func decodePosted(f fields.Type, raw any) (any, error) {
	d, ok := f.(fields.Decoder)
	if !ok {
		return f.Normalize(raw), nil
	}
	v, err := d.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", f.Handle(), err)
	}
	return v, nil
}

func sendsJSON(req *gohttp.Request) bool {
	return strings.Contains(req.ContentType(), "application/json")
}

func badRequest(res *gohttp.Response, err error) {
	res.Error(http.StatusBadRequest, "Malformed request body: "+err.Error())
}
