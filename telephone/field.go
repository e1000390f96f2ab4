package telephone

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strconv"
	"sync"

	"github.com/km-arc/go-laravel-telephone/framework/fields"
	gohttp "github.com/km-arc/go-laravel-telephone/framework/http"
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
	"github.com/km-arc/go-laravel-telephone/framework/log"
	"github.com/km-arc/go-laravel-telephone/framework/metrics"
	"github.com/km-arc/go-laravel-telephone/phone"
)

// Kind is the type name telephone fields are declared with.
const Kind = "telephone"

// ErrUnsupportedRegion is returned for a default country the capability has
// no calling code for.
var ErrUnsupportedRegion = errors.New("telephone: unsupported default country")

//go:embed views/*.html
var viewFiles embed.FS

var views = func() *gohttp.ViewEngine {
	sub, err := fs.Sub(viewFiles, "views")
	if err != nil {
		panic(err)
	}
	return gohttp.NewViewEngine(sub, ".html", nil)
}()

// FieldConfig is everything NewField needs.
type FieldConfig struct {
	Handle     string
	Name       string
	Settings   Settings
	Capability phone.Capability
	Logger     *log.Logger
	Metrics    *metrics.FieldMetrics
}

// Field is a configured telephone field instance.
type Field struct {
	handle     string
	name       string
	settings   Settings
	capability phone.Capability
	normalizer *Normalizer
	metrics    *metrics.FieldMetrics

	countriesOnce sync.Once
	countries     []Country
}

var (
	_ fields.Type    = (*Field)(nil)
	_ fields.Decoder = (*Field)(nil)
)

// NewField validates the settings and builds the field.
func NewField(cfg FieldConfig) (*Field, error) {
	if cfg.Capability == nil {
		return nil, errors.New("telephone: field needs a phone capability")
	}
	settings := cfg.Settings.normalized()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("field %s: %w", cfg.Handle, err)
	}
	if _, ok := cfg.Capability.CallingCode(settings.DefaultCountryCode); !ok {
		return nil, fmt.Errorf("field %s: %w: %s", cfg.Handle, ErrUnsupportedRegion, settings.DefaultCountryCode)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Nop()
	}
	name := cfg.Name
	if name == "" {
		name = cfg.Handle
	}
	return &Field{
		handle:     cfg.Handle,
		name:       name,
		settings:   settings,
		capability: cfg.Capability,
		normalizer: NewNormalizer(cfg.Capability, settings.DefaultCountryCode,
			WithHandle(cfg.Handle),
			WithLogger(logger.Field(cfg.Handle)),
			WithMetrics(cfg.Metrics),
		),
		metrics: cfg.Metrics,
	}, nil
}

// FromDefinition builds a field from a fields file entry. Settings missing
// from the entry keep the values in defaults.
func FromDefinition(def fields.Definition, defaults Settings, capability phone.Capability, logger *log.Logger, m *metrics.FieldMetrics) (*Field, error) {
	settings := defaults
	if err := def.DecodeSettings(&settings); err != nil {
		return nil, err
	}
	return NewField(FieldConfig{
		Handle:     def.Handle,
		Name:       def.Name,
		Settings:   settings,
		Capability: capability,
		Logger:     logger,
		Metrics:    m,
	})
}

func (f *Field) Handle() string          { return f.handle }
func (f *Field) Name() string            { return f.name }
func (f *Field) Kind() string            { return Kind }
func (f *Field) Settings() Settings      { return f.settings }
func (f *Field) Normalizer() *Normalizer { return f.normalizer }

// Value normalizes any host value into a Value.
func (f *Field) Value(raw any) Value {
	if v, ok := raw.(Value); ok {
		return v
	}
	return f.normalizer.NormalizeAny(raw)
}

func (f *Field) Normalize(raw any) any { return f.Value(raw) }

// Decode is Normalize for client input: an unsupported shape or a string
// that is not a stored value is returned as an error instead of being
// logged and emptied.
func (f *Field) Decode(raw any) (any, error) {
	in, err := FromAny(raw)
	if err != nil {
		return nil, err
	}
	v, err := f.normalizer.Decode(in)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (f *Field) Serialize(value any) (string, bool) { return Serialize(f.Value(value)) }

// Validate adds InvalidMessage under the field handle when the value holds
// input that is not a valid phone number.
func (f *Field) Validate(value any, errs *validation.Errors) {
	o := Validate(f.Value(value))
	f.metrics.ObserveValidation(f.handle, o.IsValid())
	if !o.IsValid() {
		errs.Add(f.handle, o.Message())
	}
}

func (f *Field) IsEmpty(value any) bool { return f.Value(value).IsEmpty() }

func (f *Field) Export(value any) any { return ExportValue(f.Value(value)) }

func (f *Field) TableAttribute(value any) string { return f.Value(value).TableString() }

// Countries is the selector list, built once per field.
func (f *Field) Countries() []Country {
	f.countriesOnce.Do(func() {
		f.countries = Countries(f.capability)
	})
	return f.countries
}

type inputView struct {
	Handle              string
	Name                string
	Label               string
	CountryCode         string
	RawInput            string
	Placeholder         string
	ShowCountrySelector bool
	Countries           []Country
}

// InputHTML renders the edit control for value.
func (f *Field) InputHTML(value any) (template.HTML, error) {
	v := f.Value(value)
	data := inputView{
		Handle:              f.handle,
		Name:                "fields[" + f.handle + "]",
		Label:               f.name,
		CountryCode:         v.CountryCode(),
		RawInput:            v.RawInput(),
		ShowCountrySelector: f.settings.ShowCountrySelector,
	}
	if code, ok := v.CallingCode(); ok {
		data.Placeholder = "+" + strconv.Itoa(code)
	}
	if data.ShowCountrySelector {
		data.Countries = f.Countries()
	}
	return views.Render("input", data)
}

type settingsView struct {
	Handle    string
	Settings  Settings
	Countries []Country
}

// SettingsHTML renders the administrator's settings form.
func (f *Field) SettingsHTML() (template.HTML, error) {
	return views.Render("settings", settingsView{
		Handle:    f.handle,
		Settings:  f.settings,
		Countries: f.Countries(),
	})
}
