package telephone

import (
	"strconv"

	"github.com/km-arc/go-laravel-telephone/phone"
)

// Country is one entry of the country selector.
type Country struct {
	Region      string `json:"region"`
	CallingCode int    `json:"callingCode"`
}

// Label is the selector text, e.g. "US (+1)".
func (c Country) Label() string {
	return c.Region + " (+" + strconv.Itoa(c.CallingCode) + ")"
}

// Countries lists every region the capability supports with its calling
// code, in region order.
func Countries(capability phone.Capability) []Country {
	regions := capability.Regions()
	out := make([]Country, 0, len(regions))
	for _, region := range regions {
		code, ok := capability.CallingCode(region)
		if !ok {
			continue
		}
		out = append(out, Country{Region: region, CallingCode: code})
	}
	return out
}
