package telephone

import "github.com/km-arc/go-laravel-telephone/phone"

// Export is the JSON representation of a Value handed to API clients and
// templates.
type Export struct {
	CountryCode   string `json:"countryCode"`
	CallingCode   int    `json:"callingCode,omitempty"`
	RawInput      string `json:"rawInput"`
	Number        string `json:"number,omitempty"`
	International string `json:"international,omitempty"`
	National      string `json:"national,omitempty"`
	Display       string `json:"display"`
	Table         string `json:"table"`
	Empty         bool   `json:"empty"`
	Valid         bool   `json:"valid"`
}

// ExportValue builds the Export for v.
func ExportValue(v Value) Export {
	code, _ := v.CallingCode()
	return Export{
		CountryCode:   v.CountryCode(),
		CallingCode:   code,
		RawInput:      v.RawInput(),
		Number:        v.Format(phone.E164),
		International: v.Format(phone.International),
		National:      v.Format(phone.National),
		Display:       v.DisplayString(),
		Table:         v.TableString(),
		Empty:         v.IsEmpty(),
		Valid:         Validate(v).IsValid(),
	}
}
