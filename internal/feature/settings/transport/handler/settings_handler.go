// Package handler provides the HTTP handlers for the user-settings feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"identity_backend/internal/feature/auth/domain/entity"
	authdto "identity_backend/internal/feature/auth/transport/http/dto"
	authusecase "identity_backend/internal/feature/auth/usecase"
	"identity_backend/internal/feature/settings/transport/http/dto"
	"identity_backend/internal/platform/token"
)

// SettingsUsecase defines the user-settings operations the handlers need.
type SettingsUsecase interface {
	// Favorites retrieves the stored favorite fields for a user.
	Favorites(ctx context.Context, id string) (*entity.User, error)
	// UpdateFavorites overwrites the favorite fields; nil means absent.
	UpdateFavorites(ctx context.Context, id string, color, animal *string) (*entity.User, error)
}

// SettingsHandler handles HTTP requests for user settings.
type SettingsHandler struct {
	settings SettingsUsecase
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /user-settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := c.GetString(token.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, authdto.ErrorRes{Errors: []string{"Authentication required"}})
		return
	}

	user, err := h.settings.Favorites(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, authdto.ErrorRes{Errors: []string{"User not found"}})
			return
		}
		slog.Error("favorites lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Errors: []string{"Internal server error"}})
		return
	}

	c.JSON(http.StatusOK, dto.UserSettingsRes{
		ID:             user.ID,
		FavoriteColor:  user.FavoriteColor,
		FavoriteAnimal: user.FavoriteAnimal,
	})
}

// Update handles PUT /user-settings. Fields omitted from the request are
// stored as absent.
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := c.GetString(token.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, authdto.ErrorRes{Errors: []string{"Authentication required"}})
		return
	}

	var req dto.UserSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authdto.ErrorRes{Errors: []string{"Invalid request body"}})
		return
	}

	user, err := h.settings.UpdateFavorites(c.Request.Context(), userID, req.FavoriteColor, req.FavoriteAnimal)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, authdto.ErrorRes{Errors: []string{"User not found"}})
			return
		}
		slog.Error("favorites update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Errors: []string{"Internal server error"}})
		return
	}

	c.JSON(http.StatusOK, dto.UserSettingsRes{
		ID:             user.ID,
		FavoriteColor:  user.FavoriteColor,
		FavoriteAnimal: user.FavoriteAnimal,
	})
}
