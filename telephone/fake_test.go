package telephone_test

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/km-arc/go-laravel-telephone/phone"
)

// fakeCapability understands a handful of regions with fixed-length
// national numbers. It is enough to drive every branch of the field without
// the real metadata.
type fakeCapability struct {
	parses int
}

var fakeRegions = map[string]struct {
	code   int
	digits int
}{
	"AU": {61, 9},
	"GB": {44, 10},
	"US": {1, 10},
}

func (f *fakeCapability) Parse(raw, region string) (phone.Number, error) {
	f.parses++
	region = strings.ToUpper(region)
	r, ok := fakeRegions[region]
	if !ok {
		return phone.Number{}, phone.ErrInvalidRegion
	}
	raw = strings.TrimSpace(raw)
	var digits strings.Builder
	for _, c := range raw {
		switch {
		case unicode.IsDigit(c):
			digits.WriteRune(c)
		case strings.ContainsRune(" ()-.+", c):
		default:
			return phone.Number{}, phone.ErrNotANumber
		}
	}
	d := digits.String()
	if d == "" {
		return phone.Number{}, phone.ErrNotANumber
	}
	code := r.code
	if strings.HasPrefix(raw, "+") {
		// An international prefix overrides region, as in libphonenumber.
		code = 0
		for _, other := range fakeRegions {
			prefix := strconv.Itoa(other.code)
			if strings.HasPrefix(d, prefix) {
				code = other.code
				d = d[len(prefix):]
				break
			}
		}
		if code == 0 {
			return phone.Number{}, phone.ErrNotANumber
		}
	}
	d = strings.TrimLeft(d, "0")
	n, err := strconv.ParseUint(d, 10, 64)
	if err != nil {
		return phone.Number{}, phone.ErrNotANumber
	}
	return phone.Number{CallingCode: code, NationalNumber: n}, nil
}

func (f *fakeCapability) IsValidNumber(n phone.Number) bool {
	for _, r := range fakeRegions {
		if r.code == n.CallingCode {
			return len(strconv.FormatUint(n.NationalNumber, 10)) == r.digits
		}
	}
	return false
}

func (f *fakeCapability) IsValidNumberForRegion(n phone.Number, region string) bool {
	r, ok := fakeRegions[strings.ToUpper(region)]
	return ok && r.code == n.CallingCode && f.IsValidNumber(n)
}

func (f *fakeCapability) CallingCode(region string) (int, bool) {
	r, ok := fakeRegions[strings.ToUpper(region)]
	return r.code, ok
}

func (f *fakeCapability) Format(n phone.Number, format phone.Format) string {
	national := strconv.FormatUint(n.NationalNumber, 10)
	switch format {
	case phone.E164:
		return "+" + strconv.Itoa(n.CallingCode) + national
	case phone.International:
		return "+" + strconv.Itoa(n.CallingCode) + " " + national
	default:
		return national
	}
}

func (f *fakeCapability) Regions() []string {
	out := make([]string, 0, len(fakeRegions))
	for r := range fakeRegions {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
