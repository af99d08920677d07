package repositories

import (
	"context"

	"pulpit/internal/domain/models"
)

// SpeakerFilter narrows List results. Nil fields mean "no filter".
type SpeakerFilter struct {
	ChurchID         *int64
	IsRecommended    *bool
	TeachingStyle    *models.TeachingStyle
	BibleApproach    *models.BibleApproach
	EnvironmentStyle *models.EnvironmentStyle
	Skip             int
	Limit            int
}

// SpeakerRepository defines data access operations for speakers
type SpeakerRepository interface {
	// Create inserts a speaker and fills in its generated ID and timestamps
	Create(ctx context.Context, speaker *models.Speaker) error

	// GetByID retrieves a speaker by ID with its church projection
	GetByID(ctx context.Context, id int64) (*models.Speaker, error)

	// List retrieves speakers matching the filter with church projections,
	// ordered by sort_order then id
	List(ctx context.Context, filter SpeakerFilter) ([]models.Speaker, error)

	// ListAll retrieves every speaker with its church projection in
	// primary-key order. The matcher and the onboarding questions both
	// read the full table through this.
	ListAll(ctx context.Context) ([]models.Speaker, error)

	// MissingIDs returns the subset of ids that do not reference an
	// existing speaker, in ascending order.
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)

	// Update overwrites a speaker row
	Update(ctx context.Context, speaker *models.Speaker) error

	// Delete removes a speaker row
	Delete(ctx context.Context, id int64) error
}
