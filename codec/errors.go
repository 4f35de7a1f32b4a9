package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates the configuration text could not be parsed
// or failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ParseError represents an error while parsing configuration text.
type ParseError struct {
	// Path is the file the text came from, when known.
	Path string
	// StartLine and EndLine delimit the lines consumed by the failing
	// value (1-based, inclusive).
	StartLine int
	EndLine   int
	// Section and Option identify the failing assignment, when known.
	Section string
	Option  string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	where := "configuration"
	if e.Path != "" {
		where = e.Path
	}
	if e.StartLine > 0 {
		lines := fmt.Sprintf("line %d", e.StartLine)
		if e.EndLine > e.StartLine {
			lines = fmt.Sprintf("lines %d-%d", e.StartLine, e.EndLine)
		}
		return fmt.Sprintf("parse error in %s at %s: %s", where, lines, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", where, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements error matching for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidConfig
}
