package dto

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"student@campus.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
	Role     string `json:"role" example:"student" enums:"student,admin"` // defaults to student when omitted
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"student@campus.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// TokenResponse is returned on successful registration or login
type TokenResponse struct {
	UserID      int64  `json:"userId" example:"1"`
	Role        string `json:"role" example:"student"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"` // seconds
}

// UserResponse represents a user profile
type UserResponse struct {
	UserID int64  `json:"userId" example:"1"`
	Email  string `json:"email" example:"student@campus.edu"`
	Role   string `json:"role" example:"student"`
}

// UpdateUserRequest represents a partial profile update. Nil fields retain
// their stored values; the password is re-hashed only when supplied.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}
