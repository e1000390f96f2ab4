// Package fields defines the contract between the host and field type
// plugins, and the registry the host drives element reads and saves through.
package fields

import (
	"html/template"

	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
)

// Type is one configured field instance. The host calls it at every point of
// a value's lifecycle:
//
//   - Normalize on every read (stored string, posted data, or nil)
//   - Serialize before persistence; ok=false stores NULL
//   - Validate during an element save pass
//   - InputHTML / SettingsHTML when rendering forms
//
// Normalize must never fail: malformed data degrades to an empty value.
type Type interface {
	Handle() string
	Name() string
	Kind() string

	Normalize(raw any) any
	Serialize(value any) (stored string, ok bool)
	Validate(value any, errs *validation.Errors)
	IsEmpty(value any) bool

	// Export is the value's JSON-friendly representation.
	Export(value any) any
	// TableAttribute is the compact form shown in element index tables.
	TableAttribute(value any) string

	InputHTML(value any) (template.HTML, error)
	SettingsHTML() (template.HTML, error)
}

// Decoder is implemented by fields that can tell malformed client input
// apart from an empty value. Posted data goes through Decode so the caller
// can reject it; stored data keeps using Normalize.
type Decoder interface {
	Decode(raw any) (value any, err error)
}
