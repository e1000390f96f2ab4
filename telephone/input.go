package telephone

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Input is one of the shapes a field value arrives in:
//
//   - Absent: nothing stored or posted
//   - Serialized: the stored string form
//   - Structured: posted or decoded country code and raw input
//   - Value: an already normalized value, returned unchanged
type Input interface {
	isInput()
}

// Absent is a missing value.
type Absent struct{}

// Serialized is the stored string form produced by Serialize.
type Serialized string

// Structured carries the two user-facing parts of a value. An empty
// CountryCode means "use the field default".
type Structured struct {
	CountryCode string
	RawInput    string
}

func (Absent) isInput()     {}
func (Serialized) isInput() {}
func (Structured) isInput() {}

// FromAny resolves a dynamically typed host value into an Input. Maps accept
// the keys countryCode and rawInput; number is read when rawInput is absent.
func FromAny(raw any) (Input, error) {
	switch v := raw.(type) {
	case nil:
		return Absent{}, nil
	case *Value:
		if v == nil {
			return Absent{}, nil
		}
		return *v, nil
	case Input:
		return v, nil
	case string:
		return Serialized(v), nil
	case []byte:
		return Serialized(v), nil
	case map[string]string:
		return structuredFrom(func(k string) (string, bool, error) {
			s, ok := v[k]
			return s, ok, nil
		})
	case map[string]any:
		return structuredFrom(func(k string) (string, bool, error) {
			return scalar(k, v[k])
		})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, raw)
	}
}

func structuredFrom(get func(string) (string, bool, error)) (Input, error) {
	cc, _, err := get("countryCode")
	if err != nil {
		return nil, err
	}
	raw, ok, err := get("rawInput")
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		if raw, _, err = get("number"); err != nil {
			return nil, err
		}
	}
	return Structured{CountryCode: cc, RawInput: raw}, nil
}

// scalar reads one decoded JSON or YAML map entry as text. Numbers are kept
// in plain decimal so a digits-only rawInput posted unquoted survives.
func scalar(key string, v any) (string, bool, error) {
	switch s := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return s, true, nil
	case json.Number:
		return s.String(), true, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true, nil
	case int:
		return strconv.Itoa(s), true, nil
	case int64:
		return strconv.FormatInt(s, 10), true, nil
	default:
		return "", false, fmt.Errorf("%w: %s is %T", ErrUnsupportedShape, key, v)
	}
}
