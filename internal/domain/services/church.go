package services

import (
	"context"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// CreateChurchRequest represents a request to create a church
type CreateChurchRequest struct {
	Name            string         `json:"name"`
	Denomination    string         `json:"denomination"`
	Description     *string        `json:"description"`
	Address         models.JSONMap `json:"address"`
	Phone           *string        `json:"phone"`
	Email           *string        `json:"email"`
	Website         *string        `json:"website"`
	FoundedYear     *int           `json:"founded_year"`
	MembershipCount *int           `json:"membership_count"`
	ServiceTimes    models.JSONMap `json:"service_times"`
	SocialMedia     models.JSONMap `json:"social_media"`
	IsActive        *bool          `json:"is_active"`
	SortOrder       int            `json:"sort_order"`
}

// UpdateChurchRequest represents a request to update a church.
// Nil fields are left unchanged.
type UpdateChurchRequest struct {
	Name            *string        `json:"name"`
	Denomination    *string        `json:"denomination"`
	Description     *string        `json:"description"`
	Address         models.JSONMap `json:"address"`
	Phone           *string        `json:"phone"`
	Email           *string        `json:"email"`
	Website         *string        `json:"website"`
	FoundedYear     *int           `json:"founded_year"`
	MembershipCount *int           `json:"membership_count"`
	ServiceTimes    models.JSONMap `json:"service_times"`
	SocialMedia     models.JSONMap `json:"social_media"`
	IsActive        *bool          `json:"is_active"`
	SortOrder       *int           `json:"sort_order"`
}

// ChurchService defines business logic operations for churches
type ChurchService interface {
	// CreateChurch creates a new church
	CreateChurch(ctx context.Context, req *CreateChurchRequest) (*models.Church, error)

	// GetChurch retrieves a church by ID
	GetChurch(ctx context.Context, id int64) (*models.Church, error)

	// ListChurches retrieves churches matching the filter
	ListChurches(ctx context.Context, filter repositories.ChurchFilter) ([]models.Church, error)

	// UpdateChurch applies a partial update to a church
	UpdateChurch(ctx context.Context, id int64, req *UpdateChurchRequest) (*models.Church, error)

	// DeleteChurch removes a church
	DeleteChurch(ctx context.Context, id int64) error
}
