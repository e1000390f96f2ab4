package telephone

import (
	"encoding/json"

	"github.com/km-arc/go-laravel-telephone/phone"
)

// stored is the persisted JSON shape. number is the E.164 form of a parsed
// value; older rows may carry only number.
type stored struct {
	CountryCode string `json:"countryCode"`
	RawInput    string `json:"rawInput,omitempty"`
	Number      string `json:"number,omitempty"`
}

func (s stored) structured() Structured {
	raw := s.RawInput
	if raw == "" {
		raw = s.Number
	}
	return Structured{CountryCode: s.CountryCode, RawInput: raw}
}

// Serialize returns the stored form of v, or ok=false when v holds no input
// and the column should be NULL. Unparsed input is kept so it can be
// corrected later.
func Serialize(v Value) (string, bool) {
	if !v.HasInput() {
		return "", false
	}
	s := stored{
		CountryCode: v.CountryCode(),
		RawInput:    v.RawInput(),
		Number:      v.Format(phone.E164),
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", false
	}
	return string(b), true
}
