package dto

import "github.com/SscSPs/backoffice_app/internal/core/domain"

type UserResponse struct {
	UserID   string      `json:"userID"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Email    string      `json:"email,omitempty"`
	Role     domain.Role `json:"role"`
	IsActive bool        `json:"isActive"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.GetUserID(),
		Username: user.GetUsername(),
		Name:     user.GetName(),
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
