package telephone

import (
	"net/http"
	"strings"
	"sync"

	gohttp "github.com/km-arc/go-laravel-telephone/framework/http"
	"github.com/km-arc/go-laravel-telephone/phone"
)

// CountriesHandler serves the selector list as JSON. ?region=XX narrows it
// to one entry and answers 404 for unknown regions.
func CountriesHandler(capability phone.Capability) http.HandlerFunc {
	countries := sync.OnceValue(func() []Country { return Countries(capability) })
	return func(w http.ResponseWriter, r *http.Request) {
		req := gohttp.NewRequest(r)
		res := gohttp.NewResponse(w)

		if region := strings.ToUpper(req.Query("region")); region != "" {
			code, ok := capability.CallingCode(region)
			if !ok {
				res.NotFound("Unknown region " + region + ".")
				return
			}
			res.Success(Country{Region: region, CallingCode: code})
			return
		}
		res.Success(countries())
	}
}
