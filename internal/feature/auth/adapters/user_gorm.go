// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"identity_backend/internal/feature/auth/domain/entity"
	"identity_backend/internal/feature/auth/usecase"
	settingsusecase "identity_backend/internal/feature/settings/usecase"
)

// userGorm implements the user repository interfaces on top of GORM.
// It is shared by the auth and settings usecases, which both operate on the
// same users row.
type userGorm struct {
	db *gorm.DB
}

// Compile-time checks that userGorm satisfies its consumers' interfaces.
var (
	_ usecase.UserRepository              = (*userGorm)(nil)
	_ settingsusecase.FavoritesRepository = (*userGorm)(nil)
)

// NewUserGorm creates a new userGorm instance with the given gorm.DB handle.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// isUniqueViolation reports whether err came from the email unique index.
// GORM's error translation covers sqlite (tests); the pgconn check covers
// postgres drivers where translation is not enabled.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Create inserts a new user row with a server-generated UUID.
// The unique index on email is the sole race-closer for concurrent signups
// with the same address; a duplicate yields usecase.ErrEmailAlreadyExists.
func (r *userGorm) Create(ctx context.Context, email, passwordHash string) (*entity.User, error) {
	if passwordHash == "" {
		return nil, usecase.ErrEmptyPasswordHash
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, usecase.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

// FindByEmail retrieves a user by exact, case-sensitive email match.
// It returns usecase.ErrUserNotFound if no such user exists.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound if no such user exists.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdatePasswordHash overwrites the stored hash in a single UPDATE statement
// and returns the updated identity fields. It returns usecase.ErrUserNotFound
// if the ID does not exist.
func (r *userGorm) UpdatePasswordHash(ctx context.Context, id, newHash string) (*entity.User, error) {
	if newHash == "" {
		return nil, usecase.ErrEmptyPasswordHash
	}

	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).
		Update("password_hash", newHash)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// Favorites retrieves the favorite fields for a user.
// It returns usecase.ErrUserNotFound if no such user exists.
func (r *userGorm) Favorites(ctx context.Context, id string) (*entity.User, error) {
	return r.FindByID(ctx, id)
}

// UpdateFavorites overwrites both favorite fields in a single UPDATE.
// A nil value is stored as NULL, not left unchanged: the operation has
// overwrite semantics, not patch semantics.
func (r *userGorm) UpdateFavorites(ctx context.Context, id string, color, animal *string) (*entity.User, error) {
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"favorite_color":  color,
			"favorite_animal": animal,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}
