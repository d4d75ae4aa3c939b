// Package dto defines data transfer objects for the user-settings HTTP transport layer.
package dto

// UserSettingsReq represents the request body for PUT /user-settings.
// Both fields are optional; an omitted field is stored as absent, not left
// unchanged (overwrite semantics, not patch semantics).
type UserSettingsReq struct {
	FavoriteColor  *string `json:"favorite_color"`
	FavoriteAnimal *string `json:"favorite_animal"`
}

// UserSettingsRes carries the stored favorite fields for a user.
type UserSettingsRes struct {
	ID             string  `json:"id"`
	FavoriteColor  *string `json:"favorite_color"`
	FavoriteAnimal *string `json:"favorite_animal"`
}
