package blueprint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/confkit/value"
)

// Errors returned by blueprint validation.
var (
	// ErrInvalidType indicates the value kind is not accepted by the blueprint.
	ErrInvalidType = errors.New("invalid value type")

	// ErrInvalidFormat indicates a string value matches none of the patterns.
	ErrInvalidFormat = errors.New("invalid value format")

	// ErrOutOfRange indicates a numeric value violates a bound.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotEncodable indicates a value has no JSON representation.
	ErrNotEncodable = errors.New("value is not JSON-encodable")
)

// TypeError describes a value whose kind is not accepted.
type TypeError struct {
	// Section and Option identify the configuration key.
	Section string
	Option  string
	// Expected is the set of accepted kinds.
	Expected value.Kind
	// Value is the offending value.
	Value value.Value
	// Locus names the collection element at fault, if any
	// (e.g. `index 1 of the collection`).
	Locus string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	msg := fmt.Sprintf("invalid value type for option %q of section %q: got %s, expected %s",
		e.Option, e.Section, e.Value.Kind(), e.Expected)
	if e.Locus != "" {
		msg += " at " + e.Locus
	}
	return msg
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrInvalidType
}

// FormatError describes a string value that matches none of the
// blueprint's patterns.
type FormatError struct {
	Section string
	Option  string
	// Value is the offending string.
	Value string
	// Patterns holds the accepted pattern expressions.
	Patterns []string
	// Locus names the collection element at fault, if any.
	Locus string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid value format for option %q of section %q: %q matches none of the patterns %q",
		e.Option, e.Section, e.Value, strings.Join(e.Patterns, ", "))
	if e.Locus != "" {
		msg += " at " + e.Locus
	}
	return msg
}

// Is implements error matching for FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// RangeError describes a numeric value that violates a bound.
type RangeError struct {
	Section string
	Option  string
	// Value is the offending number.
	Value value.Value
	// Limit is "minimum" or "maximum".
	Limit string
	// Bound is the violated limit.
	Bound float64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("value out of range for option %q of section %q: the %s is %s, but got %s",
		e.Option, e.Section, e.Limit, strconv.FormatFloat(e.Bound, 'g', -1, 64), e.Value)
}

// Is implements error matching for RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
