package telephone

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Settings are the per-field options an administrator chooses.
type Settings struct {
	DefaultCountryCode  string `yaml:"defaultCountryCode" json:"defaultCountryCode" validate:"required,iso3166_1_alpha2"`
	ShowCountrySelector bool   `yaml:"showCountrySelector" json:"showCountrySelector"`
}

// DefaultSettings are used when a field definition has no settings block.
func DefaultSettings() Settings {
	return Settings{DefaultCountryCode: DefaultCountryCode}
}

var settingsValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the settings after upper-casing the country code.
func (s Settings) Validate() error {
	s = s.normalized()
	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("telephone settings: %w", err)
	}
	return nil
}

func (s Settings) normalized() Settings {
	s.DefaultCountryCode = strings.ToUpper(strings.TrimSpace(s.DefaultCountryCode))
	return s
}
