package fields

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
)

// Definition declares one field instance in the fields file.
type Definition struct {
	UID      string    `yaml:"uid"`
	Handle   string    `yaml:"handle"`
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"type"`
	Required bool      `yaml:"required"`
	Settings yaml.Node `yaml:"settings"`
}

// DecodeSettings unmarshals the definition's settings block into out. An
// absent block leaves out untouched so callers can pre-fill defaults.
func (d Definition) DecodeSettings(out any) error {
	if d.Settings.Kind == 0 {
		return nil
	}
	if err := d.Settings.Decode(out); err != nil {
		return fmt.Errorf("field %s: settings: %w", d.Handle, err)
	}
	return nil
}

type document struct {
	Fields []Definition `yaml:"fields"`
}

// ErrInvalidDefinition wraps every structural problem in a fields file.
var ErrInvalidDefinition = errors.New("fields: invalid definition")

// LoadDefinitions reads the YAML fields file at path. A missing file yields
// no definitions.
func LoadDefinitions(path string) ([]Definition, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fields: read %s: %w", path, err)
	}
	return ParseDefinitions(bytes.NewReader(raw))
}

// ParseDefinitions decodes and checks a fields document. Definitions without
// a uid get a fresh one.
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("fields: decode: %w", err)
	}

	seen := make(map[string]bool, len(doc.Fields))
	for i := range doc.Fields {
		def := &doc.Fields[i]
		v := validation.Make(map[string]string{
			"handle": def.Handle,
			"type":   def.Kind,
		}, validation.Rules{
			"handle": "required|alpha_dash|max:64",
			"type":   "required|alpha_dash",
		})
		if v.Fails() {
			errs := v.Errors()
			field := errs.Fields()[0]
			return nil, fmt.Errorf("%w: fields[%d]: %s", ErrInvalidDefinition, i, errs.First(field))
		}
		if seen[def.Handle] {
			return nil, fmt.Errorf("%w: duplicate handle %q", ErrInvalidDefinition, def.Handle)
		}
		seen[def.Handle] = true

		if def.UID == "" {
			def.UID = uuid.NewString()
		} else if _, err := uuid.Parse(def.UID); err != nil {
			return nil, fmt.Errorf("%w: field %s: uid: %v", ErrInvalidDefinition, def.Handle, err)
		}
		if def.Name == "" {
			def.Name = def.Handle
		}
	}
	return doc.Fields, nil
}
