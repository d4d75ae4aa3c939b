// Package router wires the HTTP routes for the identity backend.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "identity_backend/internal/feature/auth/transport/handler"
	settingshandler "identity_backend/internal/feature/settings/transport/handler"
	"identity_backend/internal/platform/http/handler"
	"identity_backend/internal/platform/token"
)

// New builds the gin engine. Signup, login and logout stay outside the
// session middleware; everything else requires a valid session cookie.
func New(auth *authhandler.AuthHandler, settings *settingshandler.SettingsHandler,
	tokens *token.Service, revoker token.Revoker) *gin.Engine {
	r := gin.Default()

	// Same-origin browsers never hit CORS; this covers local dev setups
	// where the client runs on a separate port.
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	// Public routes
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.Logout)

	// Routes requiring an authenticated session
	protected := r.Group("/")
	protected.Use(token.AuthRequired(tokens, revoker))
	{
		protected.GET("/me", auth.Me)
		protected.PATCH("/update-password", auth.UpdatePassword)
		protected.GET("/user-settings", settings.Get)
		protected.PUT("/user-settings", settings.Update)
	}

	return r
}
