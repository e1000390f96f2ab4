package phone

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Library implements Capability with github.com/nyaruka/phonenumbers. It
// holds no state, so the zero value is ready to use.
type Library struct{}

// NewLibrary returns the libphonenumber-backed capability.
func NewLibrary() *Library { return &Library{} }

var _ Capability = (*Library)(nil)

// Parse parses raw for region. Library errors are wrapped so callers can
// match ErrNotANumber / ErrInvalidRegion.
func (Library) Parse(raw, region string) (Number, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Number{}, ErrNotANumber
	}

	pn, err := phonenumbers.Parse(trimmed, strings.ToUpper(region))
	if err != nil {
		if errors.Is(err, phonenumbers.ErrInvalidCountryCode) {
			return Number{}, fmt.Errorf("%w: %q: %v", ErrInvalidRegion, region, err)
		}
		return Number{}, fmt.Errorf("%w: %v", ErrNotANumber, err)
	}
	return fromLibrary(pn), nil
}

func (Library) IsValidNumber(n Number) bool {
	return phonenumbers.IsValidNumber(toLibrary(n))
}

func (Library) IsValidNumberForRegion(n Number, region string) bool {
	return phonenumbers.IsValidNumberForRegion(toLibrary(n), strings.ToUpper(region))
}

func (Library) CallingCode(region string) (int, bool) {
	code := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(region))
	return code, code != 0
}

func (Library) Format(n Number, f Format) string {
	pn := toLibrary(n)
	switch f {
	case International:
		return phonenumbers.Format(pn, phonenumbers.INTERNATIONAL)
	case National:
		return phonenumbers.Format(pn, phonenumbers.NATIONAL)
	default:
		return phonenumbers.Format(pn, phonenumbers.E164)
	}
}

func (Library) Regions() []string {
	supported := phonenumbers.GetSupportedRegions()
	out := make([]string, 0, len(supported))
	for region := range supported {
		out = append(out, region)
	}
	sort.Strings(out)
	return out
}

func fromLibrary(pn *phonenumbers.PhoneNumber) Number {
	n := Number{
		CallingCode:    int(pn.GetCountryCode()),
		NationalNumber: pn.GetNationalNumber(),
		Extension:      pn.GetExtension(),
		parsed:         pn,
	}
	if pn.GetItalianLeadingZero() {
		n.LeadingZeros = int(pn.GetNumberOfLeadingZeros())
	}
	return n
}

func toLibrary(n Number) *phonenumbers.PhoneNumber {
	if pn, ok := n.parsed.(*phonenumbers.PhoneNumber); ok {
		return pn
	}
	cc := int32(n.CallingCode)
	nn := n.NationalNumber
	pn := &phonenumbers.PhoneNumber{CountryCode: &cc, NationalNumber: &nn}
	if n.Extension != "" {
		ext := n.Extension
		pn.Extension = &ext
	}
	if n.LeadingZeros > 0 {
		italian := true
		zeros := int32(n.LeadingZeros)
		pn.ItalianLeadingZero = &italian
		pn.NumberOfLeadingZeros = &zeros
	}
	return pn
}
