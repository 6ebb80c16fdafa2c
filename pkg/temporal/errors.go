package temporal

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every failure returned by this package unwraps to
// exactly one of these, so callers can classify with errors.Is while the
// concrete error types below carry the detail.
var (
	// ErrInvalidDate reports a year/month/day component out of range.
	ErrInvalidDate = errors.New("invalid date component")

	// ErrInvalidTime reports an hour/minute/second/nanosecond component
	// out of range.
	ErrInvalidTime = errors.New("invalid time component")

	// ErrInvalidOffset reports a UTC offset outside the supported window.
	ErrInvalidOffset = errors.New("invalid utc offset")

	// ErrParse reports malformed textual input.
	ErrParse = errors.New("parse error")

	// ErrOverflow reports arithmetic that would exceed the representable
	// range.
	ErrOverflow = errors.New("arithmetic overflow")
)

// ComponentRangeError reports a single named component outside its valid
// range. Name is one of "year", "month", "day", "hour", "minute", "second",
// "nanosecond" or "offset".
type ComponentRangeError struct {
	Name  string
	Value int64
	Min   int64
	Max   int64

	kind error
}

func (e *ComponentRangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range %d..=%d", e.Name, e.Value, e.Min, e.Max)
}

func (e *ComponentRangeError) Unwrap() error { return e.kind }

func newDateError(name string, value, min, max int64) error {
	return &ComponentRangeError{Name: name, Value: value, Min: min, Max: max, kind: ErrInvalidDate}
}

func newTimeError(name string, value, min, max int64) error {
	return &ComponentRangeError{Name: name, Value: value, Min: min, Max: max, kind: ErrInvalidTime}
}

func newOffsetError(name string, value, min, max int64) error {
	return &ComponentRangeError{Name: name, Value: value, Min: min, Max: max, kind: ErrInvalidOffset}
}

// ParseError reports malformed textual input. Pos is the byte position at
// which parsing failed and Expected describes what should have been there.
// When a well-formed component carries an out-of-range value, Err holds the
// underlying ComponentRangeError.
type ParseError struct {
	Input    string
	Pos      int
	Expected string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %q at position %d: %v", e.Input, e.Pos, e.Err)
	}
	return fmt.Sprintf("parsing %q: expected %s at position %d", e.Input, e.Expected, e.Pos)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// OverflowError reports checked arithmetic that would exceed the
// representable range. Op names the failing operation.
type OverflowError struct {
	Op string
}

func (e *OverflowError) Error() string {
	return "arithmetic overflow in " + e.Op
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }
