// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails, without revealing
	// whether the email was unknown or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidCurrentPassword is returned when a password rotation is
	// attempted with a current password that does not match the stored hash.
	ErrInvalidCurrentPassword = errors.New("invalid current password")

	// ErrEmptyPasswordHash is returned when attempting to persist a user
	// with an empty password hash.
	ErrEmptyPasswordHash = errors.New("password hash must not be empty")
)
