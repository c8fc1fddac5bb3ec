package respond

import (
	"time"

	"ggplay-backend/model"
)

// SignupRequest request structure for account creation
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email" example:"demo@gg.play"`
	Password string `json:"password" binding:"required,min=6" example:"demo123"`
}

// LoginRequest request structure for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"demo@gg.play"`
	Password string `json:"password" binding:"required" example:"demo123"`
}

// UserResponse user information response structure
type UserResponse struct {
	ID        string    `json:"id" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
	Email     string    `json:"email" example:"demo@gg.play"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// AuthResponse token plus user response structure
type AuthResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  UserResponse `json:"user"`
}

// ToUserResponse convert model to response
func ToUserResponse(user *model.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToAuthResponse convert user and token to response
func ToAuthResponse(user *model.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  ToUserResponse(user),
	}
}
