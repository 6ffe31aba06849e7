package dto

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a back-office user.
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,min=3,max=64"`
	Password string      `json:"password" binding:"required,min=8"`
	FullName string      `json:"fullName" binding:"required"`
	Email    string      `json:"email" binding:"omitempty,email"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=admin manager viewer"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	FullName *string      `json:"fullName"`
	Email    *string      `json:"email" binding:"omitempty,email"`
	Role     *domain.Role `json:"role" binding:"omitempty,oneof=admin manager viewer"`
	IsActive *bool        `json:"isActive"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
