package repositories

import (
	"context"

	"pulpit/internal/domain/models"
)

// FeaturedSermonFilter narrows List results. Nil fields mean "no filter".
type FeaturedSermonFilter struct {
	ChurchID *int64
	IsActive *bool
	Skip     int
	Limit    int
}

// FeaturedSermonRepository manages church featured-sermon rows
type FeaturedSermonRepository interface {
	// Create inserts a featured row; a duplicate (church_id, sermon_id)
	// pair returns a ConflictError
	Create(ctx context.Context, featured *models.FeaturedSermon) error

	// GetByID retrieves a featured row by ID with its church and sermon
	// projections
	GetByID(ctx context.Context, id int64) (*models.FeaturedSermon, error)

	// List retrieves featured rows matching the filter, ordered by church,
	// then sort_order. Clips never appear in list reads.
	List(ctx context.Context, filter FeaturedSermonFilter) ([]models.FeaturedSermon, error)

	// Update overwrites the sort_order and is_active columns
	Update(ctx context.Context, featured *models.FeaturedSermon) error

	// Delete removes a featured row
	Delete(ctx context.Context, id int64) error
}
