package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors is the message bag keyed by field handle.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

// Add attaches msg to field. Field plugins use it to report validation
// failures against their handle.
func (e *Errors) Add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Get returns every error for a field.
func (e *Errors) Get(field string) []string { return e.Bag[field] }

// Fields returns the handles carrying errors, sorted.
func (e *Errors) Fields() []string {
	out := make([]string, 0, len(e.Bag))
	for k := range e.Bag {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Merge copies every message in other into e.
func (e *Errors) Merge(other *Errors) {
	if other == nil {
		return
	}
	for field, msgs := range other.Bag {
		for _, msg := range msgs {
			e.Add(field, msg)
		}
	}
}

// ── Custom rules ─────────────────────────────────────────────────────────────

// RuleFunc checks value against a custom rule. It returns an empty message
// when the value passes.
type RuleFunc func(field, value, param string) (message string)

// Factory builds validators that understand the built-in rules plus any
// rules plugins registered through Extend.
type Factory struct {
	mu    sync.RWMutex
	rules map[string]RuleFunc
}

// NewFactory creates a Factory with no custom rules.
func NewFactory() *Factory {
	return &Factory{rules: make(map[string]RuleFunc)}
}

// Extend registers a custom rule under name, replacing any earlier one.
//
//	factory.Extend("telephone", func(field, value, region string) string { ... })
func (f *Factory) Extend(name string, fn RuleFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[name] = fn
}

// Make creates a Validator that can use the factory's custom rules.
func (f *Factory) Make(data map[string]string, rules Rules) *Validator {
	v := Make(data, rules)
	v.custom = f.lookup
	return v
}

func (f *Factory) lookup(name string) (RuleFunc, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn, ok := f.rules[name]
	return fn, ok
}

// ── Validator ────────────────────────────────────────────────────────────────

// Rules is a map of field → pipe-separated rule string.
// e.g. Rules{"defaultCountryCode": "required|size:2|alpha"}
type Rules map[string]string

// Validator validates a flat map of input values.
type Validator struct {
	data   map[string]string
	rules  Rules
	errors *Errors
	custom func(name string) (RuleFunc, bool)
	once   sync.Once
}

// Make creates a new Validator using only the built-in rules.
func Make(data map[string]string, rules Rules) *Validator {
	return &Validator{
		data:   data,
		rules:  rules,
		errors: &Errors{},
	}
}

// Fails runs validation (once) and returns true if any rule fails.
func (v *Validator) Fails() bool {
	v.once.Do(v.validate)
	return v.errors.Has()
}

// Passes runs validation and returns true if all rules pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation error bag.
func (v *Validator) Errors() *Errors { return v.errors }

// ── Core validation loop ─────────────────────────────────────────────────────

func (v *Validator) validate() {
	for field, ruleStr := range v.rules {
		value := v.data[field]

		for _, rule := range strings.Split(ruleStr, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}
			name, param, _ := strings.Cut(rule, ":")

			if !v.applyRule(field, value, name, param) {
				break // stop on first failure for this field
			}
		}
	}
}

// applyRule returns true if the rule passes.
func (v *Validator) applyRule(field, value, rule, param string) bool {
	switch rule {
	case "required":
		if strings.TrimSpace(value) == "" {
			v.errors.Add(field, fmt.Sprintf("The %s field is required.", field))
			return false
		}

	case "nullable", "sometimes":
		// Skip the remaining rules silently when the field is empty.
		if strings.TrimSpace(value) == "" {
			return false
		}

	case "boolean":
		switch strings.ToLower(value) {
		case "true", "false", "1", "0", "yes", "no", "":
		default:
			v.errors.Add(field, fmt.Sprintf("The %s field must be true or false.", field))
			return false
		}

	case "min":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) < n {
			v.errors.Add(field, fmt.Sprintf("The %s must be at least %d characters.", field, n))
			return false
		}

	case "max":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) > n {
			v.errors.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, n))
			return false
		}

	case "size":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) != n {
			v.errors.Add(field, fmt.Sprintf("The %s must be %d characters.", field, n))
			return false
		}

	case "in":
		for _, a := range strings.Split(param, ",") {
			if strings.TrimSpace(a) == value {
				return true
			}
		}
		v.errors.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
		return false

	case "alpha":
		if !alphaRe.MatchString(value) {
			v.errors.Add(field, fmt.Sprintf("The %s may only contain letters.", field))
			return false
		}

	case "alpha_dash":
		if !alphaDashRe.MatchString(value) {
			v.errors.Add(field, fmt.Sprintf("The %s may only contain letters, numbers, dashes and underscores.", field))
			return false
		}

	case "regex":
		re, err := regexp.Compile(param)
		if err != nil || !re.MatchString(value) {
			v.errors.Add(field, fmt.Sprintf("The %s format is invalid.", field))
			return false
		}

	default:
		if v.custom == nil {
			return true
		}
		fn, ok := v.custom(rule)
		if !ok {
			return true
		}
		if msg := fn(field, value, param); msg != "" {
			v.errors.Add(field, msg)
			return false
		}
	}

	return true
}

var (
	alphaRe     = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaDashRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)
