package token

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the cookie carrying the session token.
	CookieName = "authToken"

	// ContextUserID is the gin context key under which the middleware
	// exposes the authenticated user's ID.
	ContextUserID = "userID"
)

// Revoker checks whether a token has been revoked server-side. It is
// optional: without one, token validity is determined by signature and
// expiry alone.
type Revoker interface {
	// IsRevoked reports whether the token with the given jti was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthRequired returns a gin middleware that gates protected routes on a
// valid session cookie. Missing, malformed, expired and revoked tokens all
// abort with the same 401 body. The middleware never touches the user
// store; account existence is re-checked by handlers that need user data.
func AuthRequired(svc *Service, revoker Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": []string{"Authentication required"}})
			return
		}

		claims, err := svc.Validate(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": []string{"Authentication required"}})
			return
		}

		if revoker != nil && claims.TokenID != "" {
			revoked, err := revoker.IsRevoked(c.Request.Context(), claims.TokenID)
			if err != nil {
				// Denylist unavailability fails open: the token is still
				// signed and unexpired, which is the primary validity check.
				slog.Error("revocation check failed", "error", err)
			} else if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": []string{"Authentication required"}})
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
