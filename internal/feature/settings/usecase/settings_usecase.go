// Package usecase implements the business logic for the user-settings feature.
package usecase

import (
	"context"

	"identity_backend/internal/feature/auth/domain/entity"
)

// FavoritesRepository abstracts persistence of the favorite fields. The
// settings feature reuses the users row owned by the auth feature, so the
// interface is satisfied by the same adapter.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type FavoritesRepository interface {
	// Favorites retrieves the user row carrying the favorite fields.
	Favorites(ctx context.Context, id string) (*entity.User, error)

	// UpdateFavorites overwrites both favorite fields. A nil value is stored
	// as absent, not left unchanged.
	UpdateFavorites(ctx context.Context, id string, color, animal *string) (*entity.User, error)
}

// settingsUsecase implements the user-settings business logic.
type settingsUsecase struct {
	favorites FavoritesRepository
}

// NewSettingsUsecase creates a new instance of settingsUsecase.
func NewSettingsUsecase(favorites FavoritesRepository) *settingsUsecase {
	return &settingsUsecase{favorites: favorites}
}

// Favorites returns the stored favorite fields for the given user.
func (u *settingsUsecase) Favorites(ctx context.Context, id string) (*entity.User, error) {
	return u.favorites.Favorites(ctx, id)
}

// UpdateFavorites overwrites the favorite fields and returns the resulting
// stored values.
func (u *settingsUsecase) UpdateFavorites(ctx context.Context, id string, color, animal *string) (*entity.User, error) {
	return u.favorites.UpdateFavorites(ctx, id, color, animal)
}
