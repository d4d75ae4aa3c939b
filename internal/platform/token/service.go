// Package token issues and validates the signed session tokens carried in
// the auth cookie.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for every validation failure. Structural,
// signature and expiry problems all collapse into this one error so callers
// cannot distinguish "expired" from "forged".
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the validated contents of a session token.
type Claims struct {
	// UserID is the token subject.
	UserID string
	// TokenID is the unique token identifier (jti), used to key revocation.
	TokenID string
	// ExpiresAt is the token's expiry instant.
	ExpiresAt time.Time
}

// Service issues and validates HS256-signed session tokens. The signing
// secret and TTL are injected at construction, never read from the
// environment at request time, so tests can run with distinct secrets.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token Service with the provided secret and TTL.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed session token for the given user with standard
// sub/iat/exp claims and a random jti.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry of a session token and returns
// its claims. Every failure mode maps to ErrInvalidToken.
func (s *Service) Validate(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is treated as forged.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:    claims.Subject,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
