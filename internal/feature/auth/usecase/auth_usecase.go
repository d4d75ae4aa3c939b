package usecase

import (
	"context"
	"errors"
	"fmt"

	"identity_backend/internal/feature/auth/domain/entity"
)

// dummyHash is a bcrypt hash compared against when login targets an unknown
// email, so that the request always pays the hashing cost and response timing
// does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// PasswordHasher abstracts one-way password hashing and verification.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/password).
type PasswordHasher interface {
	// Hash produces a salted one-way digest of the plaintext. The salt is
	// generated per call and embedded in the output.
	Hash(plaintext string) (string, error)

	// Verify reports whether the plaintext matches the digest. It never
	// errors on malformed input, only returns false.
	Verify(plaintext, digest string) bool
}

// TokenIssuer mints signed session tokens for authenticated users.
type TokenIssuer interface {
	// Issue creates a signed, time-limited session token for the given user.
	Issue(userID string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup registers a new user with a hashed password and issues a session
// token for the fresh account. Input shape (email format, password length)
// is validated at the transport layer.
func (u *authUsecase) Signup(ctx context.Context, email, password string) (*entity.User, string, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.users.Create(ctx, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns a session token on success.
// An unknown email and a wrong password both collapse to
// ErrInvalidCredentials so responses cannot be used for account enumeration.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	// Always run a hash comparison, against a dummy digest when the user
	// does not exist, to keep timing independent of account existence.
	hash := dummyHash
	if findErr == nil {
		hash = user.PasswordHash
	}
	match := u.hasher.Verify(password, hash)

	if findErr != nil || !match {
		if findErr != nil && !errors.Is(findErr, ErrUserNotFound) {
			return nil, "", findErr
		}
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// CurrentUser looks up the account behind an authenticated session. The
// token can outlive the account within its TTL window, so existence is
// re-checked here rather than in the middleware.
func (u *authUsecase) CurrentUser(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// UpdatePassword rotates a user's password hash after re-verifying the
// current password. Re-proving knowledge of the current secret guards
// against a stolen-but-unexpired token silently taking over the account.
func (u *authUsecase) UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !u.hasher.Verify(currentPassword, user.PasswordHash) {
		return nil, ErrInvalidCurrentPassword
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.UpdatePasswordHash(ctx, id, hash)
}
