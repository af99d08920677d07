package repositories

import (
	"context"

	"pulpit/internal/domain/models"
)

// ChurchFilter narrows List results. Zero values mean "no filter".
type ChurchFilter struct {
	Denomination *string
	IsActive     *bool
	// Name is matched as a case-insensitive substring
	Name  *string
	Skip  int
	Limit int
}

// ChurchRepository defines data access operations for churches
type ChurchRepository interface {
	// Create inserts a church and fills in its generated ID and timestamps
	Create(ctx context.Context, church *models.Church) error

	// GetByID retrieves a church by ID
	GetByID(ctx context.Context, id int64) (*models.Church, error)

	// List retrieves churches matching the filter, ordered by sort_order
	// then id
	List(ctx context.Context, filter ChurchFilter) ([]models.Church, error)

	// Update overwrites a church row
	Update(ctx context.Context, church *models.Church) error

	// Delete removes a church row
	Delete(ctx context.Context, id int64) error
}
