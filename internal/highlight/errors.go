package highlight

import (
	"errors"
	"fmt"
)

// Errors returned by highlight operations.
var (
	// ErrUnknownStyle indicates a style name that is not registered.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrSpanOutOfRange indicates a capture outside the line's bounds.
	ErrSpanOutOfRange = errors.New("span out of range")
)

// UnknownStyleError is returned when selecting a style that is not
// registered. It matches ErrUnknownStyle with errors.Is.
type UnknownStyleError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("style %q not found", e.Name)
}

// Unwrap returns ErrUnknownStyle.
func (e *UnknownStyleError) Unwrap() error {
	return ErrUnknownStyle
}

// SpanApplicationFault reports that scanning a line stopped early. It never
// escapes the Engine; the spans gathered before the fault are kept.
type SpanApplicationFault struct {
	// Rule is the index of the failing rule in the compiled rule list.
	Rule int
	// Category is the failing rule's category.
	Category Category
	// Offset and Length locate the offending capture, or the search
	// position when the regex engine failed.
	Offset int
	Length int
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *SpanApplicationFault) Error() string {
	return fmt.Sprintf("rule %d (%s) at offset %d, length %d: %v", e.Rule, e.Category, e.Offset, e.Length, e.Err)
}

// Unwrap returns the underlying error.
func (e *SpanApplicationFault) Unwrap() error {
	return e.Err
}
