// Package session provides the Redis-backed token denylist used for
// server-side logout revocation.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist records revoked token IDs in Redis. Entries live only as long as
// the token they revoke, so the set never grows beyond the tokens that are
// still within their TTL window.
type Denylist struct {
	client *redis.Client
	prefix string
}

// NewDenylist creates a Denylist using the given Redis client and key prefix.
func NewDenylist(client *redis.Client, prefix string) *Denylist {
	return &Denylist{
		client: client,
		prefix: prefix,
	}
}

// key returns the Redis key for a token ID.
func (d *Denylist) key(tokenID string) string {
	return fmt.Sprintf("%s:%s", d.prefix, tokenID)
}

// Revoke marks the token as revoked for the remainder of its lifetime.
// Tokens that have already expired need no entry.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, d.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token ID has a revocation entry.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
