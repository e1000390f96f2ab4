package phone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryParseValidUS(t *testing.T) {
	lib := NewLibrary()

	n, err := lib.Parse("(212) 555-0100", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CallingCode)
	assert.Equal(t, uint64(2125550100), n.NationalNumber)
	assert.True(t, lib.IsValidNumber(n))
	assert.Equal(t, "+12125550100", lib.Format(n, E164))
	assert.Equal(t, "+1 212-555-0100", lib.Format(n, International))
	assert.Equal(t, "(212) 555-0100", lib.Format(n, National))
}

func TestLibraryParseErrors(t *testing.T) {
	lib := NewLibrary()

	_, err := lib.Parse("not-a-number", "US")
	assert.True(t, errors.Is(err, ErrNotANumber), "got %v", err)

	_, err = lib.Parse("   ", "US")
	assert.True(t, errors.Is(err, ErrNotANumber))

	_, err = lib.Parse("212 555 0100", "ZZ")
	assert.True(t, errors.Is(err, ErrInvalidRegion), "got %v", err)
}

func TestLibraryShortNumberIsInvalid(t *testing.T) {
	lib := NewLibrary()

	n, err := lib.Parse("123", "US")
	if err != nil {
		return // rejected at parse time is just as good
	}
	assert.False(t, lib.IsValidNumber(n))
}

func TestLibraryRebuildsNumbersWithoutParsedForm(t *testing.T) {
	lib := NewLibrary()

	n := Number{CallingCode: 44, NationalNumber: 2079460000}
	assert.Equal(t, "+442079460000", lib.Format(n, E164))

	italian := Number{CallingCode: 39, NationalNumber: 236618300, LeadingZeros: 1}
	assert.Equal(t, "+390236618300", lib.Format(italian, E164))
}

func TestLibraryCallingCode(t *testing.T) {
	lib := NewLibrary()

	code, ok := lib.CallingCode("us")
	assert.True(t, ok)
	assert.Equal(t, 1, code)

	code, ok = lib.CallingCode("AU")
	assert.True(t, ok)
	assert.Equal(t, 61, code)

	_, ok = lib.CallingCode("ZZ")
	assert.False(t, ok)
}

func TestLibraryValidForRegion(t *testing.T) {
	lib := NewLibrary()

	n, err := lib.Parse("+1 650 253 0000", "GB")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CallingCode)
	assert.True(t, lib.IsValidNumber(n))
	assert.True(t, lib.IsValidNumberForRegion(n, "us"))
	assert.False(t, lib.IsValidNumberForRegion(n, "GB"))
}

func TestLibraryRegionsSorted(t *testing.T) {
	regions := NewLibrary().Regions()
	require.NotEmpty(t, regions)
	assert.Contains(t, regions, "US")
	assert.IsNonDecreasing(t, regions)
}
