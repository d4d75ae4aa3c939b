// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// The same row carries both the authentication credentials and the
// user's profile settings (favorite color/animal).
type User struct {
	// ID is the unique identifier for the user, generated server-side
	// at creation time (UUID). It is immutable and never reused.
	ID string `gorm:"primaryKey;size:36"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is immutable after creation.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the salted one-way hash of the user's password.
	// This must never store plaintext passwords and is never serialized
	// into any API response.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// FavoriteColor is an optional profile setting. A nil value means
	// the user has not set one.
	FavoriteColor *string `gorm:"size:255"`

	// FavoriteAnimal is an optional profile setting. A nil value means
	// the user has not set one.
	FavoriteAnimal *string `gorm:"size:255"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
