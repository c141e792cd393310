package domain

import (
	"strings"

	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain/entity"
)

// ValidateForCreate checks a borrowing before it is first persisted.
// Every required field must be non-blank and DateTaken must be set. When a
// due date was supplied explicitly it must not precede the date taken; a
// zero due date is filled in with the default loan period.
//
// Loan-number uniqueness is deliberately not checked here: that is a
// store-level concern enforced by a unique index.
func ValidateForCreate(b *entity.Borrowing) error {
	if err := requireFields(b); err != nil {
		return err
	}
	if b.DueDate.IsZero() {
		b.DueDate = entity.ComputeDueDate(b.DateTaken)
		return nil
	}
	if b.DueDate.Before(b.DateTaken) {
		return ErrInvalidDateOrder
	}
	return nil
}

// ValidateForUpdate checks a borrowing before an in-place update. The
// required-field rules match ValidateForCreate.
func ValidateForUpdate(b *entity.Borrowing) error {
	return ValidateForCreate(b)
}

func requireFields(b *entity.Borrowing) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", b.Name},
		{"phone", b.Phone},
		{"book_name", b.BookName},
		{"gl_no", b.GLNo},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	if b.DateTaken.IsZero() {
		return &MissingFieldError{Field: "date_taken"}
	}
	return nil
}
