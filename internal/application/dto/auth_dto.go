package dto

// LoginRequest credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	BaseID   *int64 `json:"base_id"`
	BaseName string `json:"base_name,omitempty"`
}

// LoginResponse carries the access token and the authenticated user.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// ChangePasswordRequest old and new passwords.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
