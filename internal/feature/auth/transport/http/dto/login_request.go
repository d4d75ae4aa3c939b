package dto

// LoginReq represents the request body for the /login endpoint. It carries
// the same validation rules as signup so both paths reject the same shapes.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=10"`
}
