package dto

// PasswordUpdateReq represents the request body for the /update-password
// endpoint. Both passwords must meet the minimum length.
type PasswordUpdateReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=10"`
	NewPassword     string `json:"newPassword" binding:"required,min=10"`
}
