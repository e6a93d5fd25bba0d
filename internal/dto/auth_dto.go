package dto

import (
	"gymtrack/internal/models"
)

// LoginRequest form-encoded credentials. The email travels in the
// "username" field, OAuth2 password-flow style.
type LoginRequest struct {
	Email    string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginResponse issued token plus the authenticated user.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// ChangePasswordRequest requires confirmation of the current password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required,min=8"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
