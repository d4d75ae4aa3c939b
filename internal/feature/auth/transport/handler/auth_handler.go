// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"identity_backend/internal/feature/auth/domain/entity"
	"identity_backend/internal/feature/auth/transport/http/dto"
	"identity_backend/internal/feature/auth/usecase"
	"identity_backend/internal/platform/token"
)

// AuthUsecase defines the authentication operations the handlers need.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns the stored identity plus a
	// fresh session token.
	Signup(ctx context.Context, email, password string) (*entity.User, string, error)
	// Login authenticates a user and returns the identity plus a fresh
	// session token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// CurrentUser looks up the account behind an authenticated session.
	CurrentUser(ctx context.Context, id string) (*entity.User, error)
	// UpdatePassword rotates the password hash after re-verifying the
	// current password.
	UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) (*entity.User, error)
}

// TokenValidator inspects a session token so logout can revoke it.
type TokenValidator interface {
	Validate(raw string) (*token.Claims, error)
}

// SessionRevoker records a token as revoked server-side. Optional: without
// one, logout only clears the client cookie and a captured token stays
// usable until it expires.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// CookieConfig carries the attributes of the session cookie. MaxAge follows
// the token TTL; Secure is enabled when serving over HTTPS.
type CookieConfig struct {
	MaxAge int
	Secure bool
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth    AuthUsecase
	tokens  TokenValidator
	revoker SessionRevoker
	cookies CookieConfig
}

// NewAuthHandler creates a new AuthHandler. revoker may be nil when
// server-side revocation is not configured.
func NewAuthHandler(auth AuthUsecase, tokens TokenValidator, revoker SessionRevoker, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		auth:    auth,
		tokens:  tokens,
		revoker: revoker,
		cookies: cookies,
	}
}

// setSessionCookie attaches the session token to the response. The cookie is
// HTTP-only and same-site restricted so page script never sees it.
func (h *AuthHandler) setSessionCookie(c *gin.Context, tok string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(token.CookieName, tok, h.cookies.MaxAge, "/", "", h.cookies.Secure, true)
}

// clearSessionCookie expires the session cookie on the client.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(token.CookieName, "", -1, "/", "", h.cookies.Secure, true)
}

// Signup handles POST /signup.
// - 400 with one message per violated rule on malformed input
// - 409 on duplicate email
// - 201 with the new identity and a session cookie on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Errors: dto.ValidationMessages(err)})
		return
	}

	user, tok, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, dto.ErrorRes{Errors: []string{"Email already exists"}})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Errors: []string{"Internal server error"}})
		return
	}

	h.setSessionCookie(c, tok)
	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{
		Message: "User registered successfully",
		User:    dto.UserRes{ID: user.ID, Email: user.Email},
	})
}

// Login handles POST /login.
// Unknown email and wrong password return the identical 401 body so the
// endpoint cannot be used for account enumeration.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Errors: dto.ValidationMessages(err)})
		return
	}

	user, tok, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Errors: []string{"Invalid credentials"}})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Errors: []string{"Internal server error"}})
		return
	}

	h.setSessionCookie(c, tok)
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		Message: "Login successful",
		User:    dto.UserRes{ID: user.ID, Email: user.Email},
	})
}

// Logout handles POST /logout. It always succeeds, whether or not a valid
// session existed: the cookie is expired on the client and, when a denylist
// is configured, the token is revoked for the rest of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	if raw, err := c.Cookie(token.CookieName); err == nil && raw != "" && h.revoker != nil {
		if claims, err := h.tokens.Validate(raw); err == nil {
			ttl := time.Until(claims.ExpiresAt)
			if err := h.revoker.Revoke(c.Request.Context(), claims.TokenID, ttl); err != nil {
				// Best effort: the cookie is cleared regardless.
				slog.Error("token revocation failed", "error", err)
			}
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Logout successful"})
}

// Me handles GET /me. The session middleware has already validated the
// token; the account is re-checked here because a token can outlive the row
// it points at within its TTL window.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(token.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Errors: []string{"Authentication required"}})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Errors: []string{"User not found"}})
			return
		}
		slog.Error("user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Errors: []string{"Internal server error"}})
		return
	}

	c.JSON(http.StatusOK, dto.UserRes{ID: user.ID, Email: user.Email})
}

// UpdatePassword handles PATCH /update-password.
// The current password is re-verified before the hash is rotated, so a
// stolen-but-unexpired token alone cannot change the password.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID := c.GetString(token.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Errors: []string{"Authentication required"}})
		return
	}

	var req dto.PasswordUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Errors: dto.ValidationMessages(err)})
		return
	}

	user, err := h.auth.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCurrentPassword):
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Errors: []string{"Invalid current password"}})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Errors: []string{"User not found"}})
		default:
			slog.Error("password update failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Errors: []string{"Internal server error"}})
		}
		return
	}

	slog.Info("password updated", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.AuthRes{
		Message: "Password updated successfully",
		User:    dto.UserRes{ID: user.ID, Email: user.Email},
	})
}
