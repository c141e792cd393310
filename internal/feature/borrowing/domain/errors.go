// Package domain defines domain-level validation for the borrowing feature.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDateOrder indicates that an explicitly supplied due date
// precedes the date the book was taken.
var ErrInvalidDateOrder = errors.New("due date must not be before date taken")

// MissingFieldError indicates that a required field was left empty.
// It carries the field name so callers can report which one.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsMissingField reports whether err is a MissingFieldError.
func IsMissingField(err error) bool {
	var mf *MissingFieldError
	return errors.As(err, &mf)
}
