package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthCountsCharactersNotBytes(t *testing.T) {
	// 11 runes, 13 bytes.
	assert.NoError(t, Length("locality", "Liège-Liège", 11))
	assert.NoError(t, Length("locality", "Liège", 5))
	err := Length("locality", "Liège", 4)
	var invalid *InvalidLengthError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "locality", invalid.Field)
	assert.Equal(t, 5, invalid.Length)
	assert.Equal(t, 4, invalid.MaxLength)
}

func TestOneOf(t *testing.T) {
	allowed := []string{"A4", "A6"}
	assert.NoError(t, OneOf("format", "A4", allowed))

	err := OneOf("format", "a4", allowed)
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "format", invalid.Field)
	assert.Equal(t, "a4", invalid.Value)
}

func TestUpperOneOf(t *testing.T) {
	normalized, err := UpperOneOf("format", "a6", []string{"A4", "A6"})
	require.NoError(t, err)
	assert.Equal(t, "A6", normalized)

	_, err = UpperOneOf("format", "letter", []string{"A4", "A6"})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
	assert.Equal(t, "Liè", Truncate("Liège", 3))
}
