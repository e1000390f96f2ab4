package telephone

import (
	"strings"

	"github.com/km-arc/go-laravel-telephone/phone"
)

// DefaultCountryCode is used when neither the input nor the field settings
// name a region.
const DefaultCountryCode = "US"

// Value is a phone number together with the region it was entered for. It is
// immutable; build a new one with New or a Normalizer to change it.
type Value struct {
	countryCode string
	rawInput    string
	number      *phone.Number
	parseErr    error
	capability  phone.Capability
}

// New parses rawInput for countryCode. It never fails: unparseable input is
// kept as the raw text with no number. An empty countryCode falls back to
// DefaultCountryCode.
func New(capability phone.Capability, countryCode, rawInput string) Value {
	cc := strings.ToUpper(strings.TrimSpace(countryCode))
	if cc == "" {
		cc = DefaultCountryCode
	}
	v := Value{countryCode: cc, capability: capability}
	if strings.TrimSpace(rawInput) == "" {
		return v
	}
	v.rawInput = rawInput
	res := parse(capability, rawInput, cc)
	v.number, v.parseErr = res.number, res.err
	return v
}

func (Value) isInput() {}

// CountryCode is the ISO 3166-1 alpha-2 region, never empty.
func (v Value) CountryCode() string {
	if v.countryCode == "" {
		return DefaultCountryCode
	}
	return v.countryCode
}

// RawInput is the text as entered, empty when there was none.
func (v Value) RawInput() string { return v.rawInput }

// Number returns the parsed number, if parsing succeeded.
func (v Value) Number() (phone.Number, bool) {
	if v.number == nil {
		return phone.Number{}, false
	}
	return *v.number, true
}

// IsEmpty reports whether there is no parsed number.
func (v Value) IsEmpty() bool { return v.number == nil }

// HasInput reports whether any raw text was supplied.
func (v Value) HasInput() bool { return v.rawInput != "" }

// IsUnparsed reports raw text the capability could not interpret.
func (v Value) IsUnparsed() bool { return v.HasInput() && v.number == nil }

// ParseError is why the raw input stayed unparsed, nil otherwise.
func (v Value) ParseError() error { return v.parseErr }

// IsValid asks the capability whether the parsed number is valid for
// CountryCode. A number dialled with another country's prefix is not. It is
// false when nothing was parsed.
func (v Value) IsValid() bool {
	if v.number == nil || v.capability == nil {
		return false
	}
	return v.capability.IsValidNumberForRegion(*v.number, v.CountryCode())
}

// CallingCode is the international calling code for CountryCode.
func (v Value) CallingCode() (int, bool) {
	if v.capability == nil {
		return 0, false
	}
	return v.capability.CallingCode(v.CountryCode())
}

// Format renders the parsed number, or "" when there is none.
func (v Value) Format(f phone.Format) string {
	if v.number == nil || v.capability == nil {
		return ""
	}
	return v.capability.Format(*v.number, f)
}

// DisplayString is the international form of a parsed number, or the raw
// input verbatim.
func (v Value) DisplayString() string {
	if v.number == nil {
		return v.rawInput
	}
	return v.Format(phone.International)
}

func (v Value) String() string { return v.DisplayString() }

// TableString is the compact "<number> [<CC>]" form for element tables, or
// "" when there is no number.
func (v Value) TableString() string {
	if v.number == nil {
		return ""
	}
	return v.DisplayString() + " [" + v.CountryCode() + "]"
}

// Equal compares the externally observable state of two values.
func (v Value) Equal(other Value) bool {
	if v.CountryCode() != other.CountryCode() || v.rawInput != other.rawInput {
		return false
	}
	if (v.number == nil) != (other.number == nil) {
		return false
	}
	if v.number == nil {
		return true
	}
	a, b := *v.number, *other.number
	return a.CallingCode == b.CallingCode &&
		a.NationalNumber == b.NationalNumber &&
		a.Extension == b.Extension &&
		a.LeadingZeros == b.LeadingZeros
}
