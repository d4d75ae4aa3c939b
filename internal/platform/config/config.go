// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// defaultTokenTTL is used when TOKEN_TTL_SECONDS is not set. Deployments
// wanting shorter sessions (e.g. one hour) override it.
const defaultTokenTTL = 24 * time.Hour

// ErrMissingJWTSecret indicates that JWT_SECRET is absent. This is a fatal
// startup condition, not a per-request error.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds all process-wide configuration, loaded once at startup and
// passed explicitly into the components that need it.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// DatabaseURL is the postgres DSN.
	DatabaseURL string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TokenTTL is the session token lifetime. The cookie max-age follows it.
	TokenTTL time.Duration

	// CookieSecure enables the Secure attribute on the session cookie.
	// Set it when serving over HTTPS.
	CookieSecure bool

	// RedisAddr is the optional Redis address for the token denylist.
	// Empty disables server-side revocation.
	RedisAddr string

	// RedisPassword authenticates the Redis connection.
	RedisPassword string
}

// Load reads configuration from the environment, with an optional .env file
// for local development. It fails when the signing secret is missing.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL_SECONDS %q", v)
		}
		ttl = time.Duration(secs) * time.Second
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     secret,
		TokenTTL:      ttl,
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}, nil
}
