package telephone

import (
	"strings"

	"github.com/km-arc/go-laravel-telephone/phone"
)

// parseResult is the outcome of one parse attempt. Exactly one of the states
// holds: no input, parsed (number set), or unparsed (raw kept, number nil).
type parseResult struct {
	number *phone.Number
	err    error
}

func parse(capability phone.Capability, raw, region string) parseResult {
	if strings.TrimSpace(raw) == "" {
		return parseResult{}
	}
	n, err := capability.Parse(raw, region)
	if err != nil {
		return parseResult{err: err}
	}
	return parseResult{number: &n}
}
