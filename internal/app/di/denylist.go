// Package di provides constructor helpers for optional dependencies.
package di

import (
	"github.com/redis/go-redis/v9"

	authhandler "identity_backend/internal/feature/auth/transport/handler"
	"identity_backend/internal/platform/session"
	"identity_backend/internal/platform/token"
)

// NewDenylist builds the token denylist when Redis is available. Without
// Redis both returns are nil and logout degrades to client-side cookie
// deletion only: a previously issued token stays valid until it expires.
func NewDenylist(rdb *redis.Client) (authhandler.SessionRevoker, token.Revoker) {
	if rdb == nil {
		return nil, nil
	}
	d := session.NewDenylist(rdb, "revoked")
	return d, d
}
