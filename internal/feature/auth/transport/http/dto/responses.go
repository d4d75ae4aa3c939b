package dto

// UserRes carries the public identity fields of a user. The password hash is
// never part of any response.
type UserRes struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthRes is the success body for signup, login and password-update.
type AuthRes struct {
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}

// MessageRes is the success body for endpoints that return no user data.
type MessageRes struct {
	Message string `json:"message"`
}

// ErrorRes is the failure body for every endpoint: one entry per violated
// rule for validation failures, a single generic entry otherwise.
type ErrorRes struct {
	Errors []string `json:"errors"`
}
