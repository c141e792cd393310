// Package usecase implements the business logic for the borrowing feature.
package usecase

import "errors"

var (
	// ErrNotFound is returned when no borrowing exists with the given ID.
	ErrNotFound = errors.New("borrowing not found")

	// ErrDuplicateLoanNumber is returned when creating or updating a
	// borrowing would leave two records with the same GL number. It maps
	// the database unique-constraint violation, so concurrent submissions
	// cannot slip past an application-level pre-check.
	ErrDuplicateLoanNumber = errors.New("gl number already exists")

	// ErrEmptyQuery is returned when a search is attempted with a blank
	// query instead of returning the full collection.
	ErrEmptyQuery = errors.New("search query must not be empty")
)
