package services

import (
	"context"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// CreateFeaturedSermonRequest pins a sermon onto a church's featured
// shelf. ChurchID comes from the route, not the body; a body church_id
// that disagrees with the route is rejected by the handler.
type CreateFeaturedSermonRequest struct {
	ChurchID  int64 `json:"church_id"`
	SermonID  int64 `json:"sermon_id"`
	SortOrder int   `json:"sort_order"`
	IsActive  *bool `json:"is_active"`
}

// UpdateFeaturedSermonRequest represents a request to update a featured
// sermon. Nil fields are left unchanged.
type UpdateFeaturedSermonRequest struct {
	SortOrder *int  `json:"sort_order"`
	IsActive  *bool `json:"is_active"`
}

// FeaturedSermonService defines business logic for church featured shelves
type FeaturedSermonService interface {
	// Create features a sermon for a church. Clips are rejected; featuring
	// the same sermon twice for a church is a Conflict.
	Create(ctx context.Context, req *CreateFeaturedSermonRequest) (*models.FeaturedSermon, error)

	// Get retrieves a featured sermon by ID
	Get(ctx context.Context, id int64) (*models.FeaturedSermon, error)

	// List retrieves featured sermons matching the filter
	List(ctx context.Context, filter repositories.FeaturedSermonFilter) ([]models.FeaturedSermon, error)

	// Update applies a partial update to a featured sermon
	Update(ctx context.Context, id int64, req *UpdateFeaturedSermonRequest) (*models.FeaturedSermon, error)

	// Delete removes a sermon from a church's featured shelf
	Delete(ctx context.Context, id int64) error
}
