// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user
	// with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails. It deliberately
	// does not distinguish a missing user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRole is returned when provisioning is attempted with a
	// role outside the known set.
	ErrInvalidRole = errors.New("role must be admin, librarian or user")

	// ErrProfileNotFound is returned by the profile repository when an
	// identity has no profile. Callers treat it as "no role assigned",
	// never as a fatal condition.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
