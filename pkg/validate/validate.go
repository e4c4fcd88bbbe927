// Package validate provides the shared field validators used by the order
// model's setters. Enum membership and length constraints are checked at
// mutation time so callers get an error before any network call; lengths
// are counted in characters, not bytes.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// InvalidValueError reports a value outside a field's allowed set.
type InvalidValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s, allowed values are: %s",
		e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

// InvalidLengthError reports a string field exceeding its maximum length.
type InvalidLengthError struct {
	Field     string
	Length    int
	MaxLength int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %d for %s, maximum is %d",
		e.Length, e.Field, e.MaxLength)
}

// Length checks that value fits within max characters.
func Length(field, value string, max int) error {
	if n := utf8.RuneCountInString(value); n > max {
		return &InvalidLengthError{Field: field, Length: n, MaxLength: max}
	}
	return nil
}

// OneOf checks enum membership. The comparison is exact; callers that
// normalize case do so before calling.
func OneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &InvalidValueError{Field: field, Value: value, Allowed: allowed}
}

// UpperOneOf uppercases value and checks membership, returning the
// normalized value. Status, language and format fields on the wire are
// case-normalized this way.
func UpperOneOf(field, value string, allowed []string) (string, error) {
	value = strings.ToUpper(value)
	if err := OneOf(field, value, allowed); err != nil {
		return "", err
	}
	return value, nil
}

// Truncate returns value cut to max characters. Used only by the one
// field the service documents as truncating rather than rejecting.
func Truncate(value string, max int) string {
	if utf8.RuneCountInString(value) <= max {
		return value
	}
	runes := []rune(value)
	return string(runes[:max])
}
