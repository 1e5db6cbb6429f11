package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported form type")
	ErrUnknownField    = errors.New("unknown field")
)

// FieldError reports a presence or shape violation on a single form field.
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

// LengthError reports a length-bound violation. Min and Max carry the
// declared bounds (Max == 0 means unbounded above); Actual carries the
// observed length so the UI can show both the required and the actual value.
type LengthError struct {
	Field  string
	Min    int
	Max    int
	Actual int
}

func (e *LengthError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("%s: length must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Actual)
	}
	return fmt.Sprintf("%s: length must be at least %d, got %d", e.Field, e.Min, e.Actual)
}
