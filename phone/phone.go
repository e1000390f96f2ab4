// Package phone is the phone-number parsing capability field plugins depend on.
//
// Capability is an interface so value objects can be exercised against a fake;
// Library is the production implementation backed by libphonenumber.
package phone

import "errors"

var (
	// ErrNotANumber is returned when the input holds no usable digits.
	ErrNotANumber = errors.New("phone: the string supplied did not seem to be a phone number")
	// ErrInvalidRegion is returned for region codes the library does not know.
	ErrInvalidRegion = errors.New("phone: invalid region code")
)

// Format selects a textual rendering of a Number.
type Format int

const (
	E164 Format = iota
	International
	National
)

// Number is a structured phone number.
type Number struct {
	CallingCode    int
	NationalNumber uint64
	Extension      string
	// LeadingZeros counts zeros dropped from the front of NationalNumber
	// (Italian-style numbers keep them).
	LeadingZeros int

	// parsed carries the library's own representation when available.
	parsed any
}

// Capability parses, validates and formats phone numbers. Implementations
// must be safe for concurrent use.
type Capability interface {
	// Parse interprets raw as a number dialled from region.
	Parse(raw, region string) (Number, error)
	// IsValidNumber reports whether n is a valid number for its region.
	IsValidNumber(n Number) bool
	// IsValidNumberForRegion reports whether n is valid and belongs to
	// region, so a US number does not pass as British.
	IsValidNumberForRegion(n Number, region string) bool
	// CallingCode maps a region code to its international calling code.
	CallingCode(region string) (int, bool)
	// Format renders n in the requested style.
	Format(n Number, f Format) string
	// Regions lists the supported region codes, sorted.
	Regions() []string
}
