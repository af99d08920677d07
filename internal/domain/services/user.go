package services

import (
	"context"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// CreateUserRequest represents a request to register a user
type CreateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateUserRequest represents a request to update a user's profile.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsActive  *bool   `json:"is_active"`
}

// UserService defines business logic operations for users
type UserService interface {
	// CreateUser registers a new user
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// ListUsers retrieves users matching the filter
	ListUsers(ctx context.Context, filter repositories.UserFilter) ([]models.User, error)

	// UpdateUser applies a partial update to a user's profile
	UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*models.User, error)

	// DeleteUser removes a user
	DeleteUser(ctx context.Context, id int64) error
}
