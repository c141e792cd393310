// Package entity defines the domain entities for the borrowing feature.
package entity

import "time"

// LoanPeriodDays is the default loan period added to the date a book is
// taken when no due date is supplied explicitly.
const LoanPeriodDays = 14

// Borrowing represents one physical loan event linking a borrower, a book
// and the taken/due dates.
type Borrowing struct {
	// ID is the store-assigned identifier. It is immutable after creation.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Name is the borrower's name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Phone is the borrower's phone number. Free-form beyond non-empty.
	Phone string `gorm:"size:50;not null" json:"phone"`

	// BookName is the borrowed book's title, typically chosen from the
	// catalog via suggestions but accepted free-form.
	BookName string `gorm:"size:255;not null" json:"book_name"`

	// GLNo is the loan number. It must be unique across all records; the
	// database enforces this through a unique index.
	GLNo string `gorm:"column:gl_no;uniqueIndex;size:100;not null" json:"gl_no"`

	// DateTaken is the calendar date the book was taken.
	DateTaken time.Time `gorm:"type:date;not null" json:"date_taken"`

	// DueDate is the calendar date the book is due back. Defaults to
	// DateTaken plus LoanPeriodDays and must never precede DateTaken.
	DueDate time.Time `gorm:"type:date;not null" json:"due_date"`

	// CreatedAt is assigned at creation and drives the default
	// newest-first listing order.
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for GORM.
func (Borrowing) TableName() string {
	return "borrowings"
}

// ComputeDueDate returns the default due date for a book taken on the given
// date. Calendar arithmetic via AddDate crosses month and year boundaries
// correctly.
func ComputeDueDate(dateTaken time.Time) time.Time {
	return dateTaken.AddDate(0, 0, LoanPeriodDays)
}

// IsOverdue reports whether a loan due on dueDate is overdue as of asOf.
// The comparison is between calendar dates, not instants, so the time of
// day on either side is ignored.
func IsOverdue(dueDate, asOf time.Time) bool {
	return truncateToDate(dueDate).Before(truncateToDate(asOf))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
