package usecase

import (
	"context"

	"identity_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user with the given email and password hash and
	// returns the stored row with its generated ID. The storage layer's
	// uniqueness constraint on email is the race-closer for concurrent
	// signups; a duplicate email yields ErrEmailAlreadyExists.
	Create(ctx context.Context, email, passwordHash string) (*entity.User, error)

	// FindByEmail retrieves a user by exact, case-sensitive email match.
	// It returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// UpdatePasswordHash overwrites the stored hash for the given user and
	// returns the updated identity fields. It returns ErrUserNotFound if the
	// ID does not exist.
	UpdatePasswordHash(ctx context.Context, id, newHash string) (*entity.User, error)
}
