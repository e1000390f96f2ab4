package fields_test

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-telephone/framework/fields"
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
)

// digitsField stores digit strings and rejects anything else.
type digitsField struct {
	handle string
	prefix string
}

func (f *digitsField) Handle() string { return f.handle }
func (f *digitsField) Name() string   { return strings.ToUpper(f.handle) }
func (f *digitsField) Kind() string   { return "digits" }

func (f *digitsField) Normalize(raw any) any {
	s, _ := raw.(string)
	return strings.TrimSpace(s)
}

func (f *digitsField) Serialize(value any) (string, bool) {
	s := value.(string)
	return f.prefix + s, s != ""
}

func (f *digitsField) Validate(value any, errs *validation.Errors) {
	for _, r := range value.(string) {
		if r < '0' || r > '9' {
			errs.Add(f.handle, "digits only")
			return
		}
	}
}

func (f *digitsField) IsEmpty(value any) bool         { return value.(string) == "" }
func (f *digitsField) Export(value any) any           { return value }
func (f *digitsField) TableAttribute(value any) string { return value.(string) }

func (f *digitsField) InputHTML(any) (template.HTML, error) { return "", nil }
func (f *digitsField) SettingsHTML() (template.HTML, error) { return "", nil }

func newRegistry(t *testing.T) *fields.Registry {
	t.Helper()
	reg := fields.NewRegistry()
	require.NoError(t, reg.Register(&digitsField{handle: "pin"}, true))
	require.NoError(t, reg.Register(&digitsField{handle: "ext"}, false))
	return reg
}

// ── Registry ──────────────────────────────────────────────────────────────────

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := newRegistry(t)

	assert.Equal(t, []string{"ext", "pin"}, reg.Handles())
	f, ok := reg.Get("pin")
	require.True(t, ok)
	assert.Equal(t, "digits", f.Kind())

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	assert.Error(t, reg.Register(&digitsField{handle: "pin"}, false))
}

func TestRegistry_SaveStoresValuesAndNulls(t *testing.T) {
	reg := newRegistry(t)

	stored, errs := reg.Save(map[string]any{"pin": " 1234 "})
	require.Nil(t, errs)
	require.NotNil(t, stored["pin"])
	assert.Equal(t, "1234", *stored["pin"])
	assert.Nil(t, stored["ext"])
}

func TestRegistry_SaveCollectsErrors(t *testing.T) {
	reg := newRegistry(t)

	stored, errs := reg.Save(map[string]any{"ext": "12a"})
	assert.Nil(t, stored)
	require.NotNil(t, errs)
	assert.Equal(t, "PIN cannot be blank.", errs.First("pin"))
	assert.Equal(t, "digits only", errs.First("ext"))
}

func TestRegistry_FieldMessageWinsOverBlank(t *testing.T) {
	reg := fields.NewRegistry()
	require.NoError(t, reg.Register(&digitsField{handle: "code"}, true))

	_, errs := reg.Save(map[string]any{"code": "abc"})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"digits only"}, errs.Get("code"))
}

func TestRegistry_Load(t *testing.T) {
	reg := newRegistry(t)
	pin := " 42 "

	values := reg.Load(map[string]*string{"pin": &pin})
	assert.Equal(t, "42", values["pin"])
	assert.Equal(t, "", values["ext"])
}

// ── Kinds ─────────────────────────────────────────────────────────────────────

func TestKinds_Build(t *testing.T) {
	kinds := fields.NewKinds()
	kinds.Add("digits", func(def fields.Definition) (fields.Type, error) {
		var s struct {
			Prefix string `yaml:"prefix"`
		}
		if err := def.DecodeSettings(&s); err != nil {
			return nil, err
		}
		return &digitsField{handle: def.Handle, prefix: s.Prefix}, nil
	})

	defs, err := fields.ParseDefinitions(strings.NewReader(`
fields:
  - handle: pin
    type: digits
    settings:
      prefix: "#"
  - handle: other
    type: colour
`))
	require.NoError(t, err)

	f, err := kinds.Build(defs[0])
	require.NoError(t, err)
	s, ok := f.Serialize("9")
	assert.True(t, ok)
	assert.Equal(t, "#9", s)

	_, err = kinds.Build(defs[1])
	assert.ErrorContains(t, err, `unknown type "colour"`)
}

// ── Definitions ───────────────────────────────────────────────────────────────

func TestParseDefinitions_FillsDefaults(t *testing.T) {
	defs, err := fields.ParseDefinitions(strings.NewReader(`
fields:
  - handle: phone
    type: telephone
  - handle: fax
    name: Fax number
    type: telephone
    uid: 5b0f3a57-8f4c-4a43-9d4b-0c9d1f7f2a11
    required: true
`))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	_, err = uuid.Parse(defs[0].UID)
	assert.NoError(t, err)
	assert.Equal(t, "phone", defs[0].Name)
	assert.Equal(t, "5b0f3a57-8f4c-4a43-9d4b-0c9d1f7f2a11", defs[1].UID)
	assert.True(t, defs[1].Required)

	var settings struct{ DefaultCountryCode string }
	settings.DefaultCountryCode = "US"
	require.NoError(t, defs[0].DecodeSettings(&settings))
	assert.Equal(t, "US", settings.DefaultCountryCode)
}

func TestParseDefinitions_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing handle": "fields:\n  - type: telephone\n",
		"bad handle":     "fields:\n  - handle: work phone\n    type: telephone\n",
		"missing type":   "fields:\n  - handle: phone\n",
		"duplicate":      "fields:\n  - handle: a\n    type: t\n  - handle: a\n    type: t\n",
		"bad uid":        "fields:\n  - handle: a\n    type: t\n    uid: nope\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fields.ParseDefinitions(strings.NewReader(doc))
			assert.ErrorIs(t, err, fields.ErrInvalidDefinition)
		})
	}
}

func TestParseDefinitions_Empty(t *testing.T) {
	defs, err := fields.ParseDefinitions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadDefinitions(t *testing.T) {
	dir := t.TempDir()

	defs, err := fields.LoadDefinitions(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, defs)

	path := filepath.Join(dir, "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields:\n  - handle: phone\n    type: telephone\n"), 0o600))
	defs, err = fields.LoadDefinitions(path)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "telephone", defs[0].Kind)
}
