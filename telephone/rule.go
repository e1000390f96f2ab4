package telephone

import (
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
	"github.com/km-arc/go-laravel-telephone/phone"
)

// Rule is the "telephone" validation rule. Its parameter is the region the
// value is parsed for, e.g. "telephone:AU"; without one defaultCountry is
// used. Blank values pass.
func Rule(capability phone.Capability, defaultCountry string) validation.RuleFunc {
	return func(_, value, region string) string {
		if region == "" {
			region = defaultCountry
		}
		return Validate(New(capability, region, value)).Message()
	}
}
