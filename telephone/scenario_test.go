package telephone_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-telephone/phone"
	"github.com/km-arc/go-laravel-telephone/telephone"
)

// These run against libphonenumber metadata.

func TestLibrary_ValidUSNumber(t *testing.T) {
	n := telephone.NewNormalizer(phone.NewLibrary(), "US")
	v := n.Normalize(telephone.Structured{CountryCode: "US", RawInput: "(212) 555-0100"})

	require.False(t, v.IsEmpty())
	assert.Equal(t, telephone.Valid, telephone.Validate(v))
	assert.Equal(t, "+1 212-555-0100", v.DisplayString())
	assert.True(t, strings.HasPrefix(v.DisplayString(), "+1 "))
}

func TestLibrary_ShortNumberIsInvalid(t *testing.T) {
	n := telephone.NewNormalizer(phone.NewLibrary(), "US")
	v := n.Normalize(telephone.Structured{CountryCode: "US", RawInput: "123"})

	assert.Equal(t, telephone.Invalid("The string supplied did not seem to be a phone number."), telephone.Validate(v))
	assert.True(t, v.HasInput())
}

func TestLibrary_AbsentWithAustralianDefault(t *testing.T) {
	n := telephone.NewNormalizer(phone.NewLibrary(), "AU")
	v := n.NormalizeAny(nil)

	assert.Equal(t, "AU", v.CountryCode())
	assert.True(t, v.IsEmpty())
	assert.Equal(t, telephone.Valid, telephone.Validate(v))
	_, ok := telephone.Serialize(v)
	assert.False(t, ok)
}

func TestLibrary_GarbageIsKept(t *testing.T) {
	n := telephone.NewNormalizer(phone.NewLibrary(), "US")
	v := n.Normalize(telephone.Structured{CountryCode: "US", RawInput: "not-a-number"})

	assert.False(t, telephone.Validate(v).IsValid())
	stored, ok := telephone.Serialize(v)
	require.True(t, ok)
	assert.Equal(t, "not-a-number", n.Normalize(telephone.Serialized(stored)).DisplayString())
}

func TestLibrary_RoundTrip(t *testing.T) {
	lib := phone.NewLibrary()
	n := telephone.NewNormalizer(lib, "US")
	v := telephone.New(lib, "US", "212-555-0100")

	stored, ok := telephone.Serialize(v)
	require.True(t, ok)
	assert.JSONEq(t, `{"countryCode":"US","rawInput":"212-555-0100","number":"+12125550100"}`, stored)
	assert.True(t, v.Equal(n.Normalize(telephone.Serialized(stored))))
}

func TestLibrary_ForeignNumberFailsClaimedRegion(t *testing.T) {
	n := telephone.NewNormalizer(phone.NewLibrary(), "US")
	v := n.Normalize(telephone.Structured{CountryCode: "GB", RawInput: "+1 650 253 0000"})

	require.False(t, v.IsEmpty())
	assert.Equal(t, telephone.Invalid(telephone.InvalidMessage), telephone.Validate(v))
}
