package repositories

import (
	"context"

	"pulpit/internal/domain/models"
)

// SermonFilter narrows List results. Nil fields mean "no filter".
type SermonFilter struct {
	SpeakerID *int64
	IsClip    *bool
	Skip      int
	Limit     int
}

// SermonRepository defines data access operations for sermons
type SermonRepository interface {
	// Create inserts a sermon and fills in its generated ID and timestamps
	Create(ctx context.Context, sermon *models.Sermon) error

	// GetByID retrieves a sermon by ID with its speaker projection
	GetByID(ctx context.Context, id int64) (*models.Sermon, error)

	// List retrieves sermons matching the filter, newest first
	List(ctx context.Context, filter SermonFilter) ([]models.Sermon, error)

	// Update overwrites a sermon row
	Update(ctx context.Context, sermon *models.Sermon) error

	// Delete removes a sermon row
	Delete(ctx context.Context, id int64) error
}

// SermonPreferenceFilter narrows sermon-preference List results.
type SermonPreferenceFilter struct {
	UserID   *int64
	SermonID *int64
	Liked    *bool
	Skip     int
	Limit    int
}

// SermonPreferenceRepository manages the sermon thumbs-up/down table
type SermonPreferenceRepository interface {
	// Create inserts a preference; a duplicate (user_id, sermon_id) pair
	// returns a ConflictError
	Create(ctx context.Context, pref *models.SermonPreference) error

	// GetByID retrieves a preference by ID
	GetByID(ctx context.Context, id int64) (*models.SermonPreference, error)

	// List retrieves preferences matching the filter, ordered by id
	List(ctx context.Context, filter SermonPreferenceFilter) ([]models.SermonPreference, error)

	// Update overwrites the liked flag
	Update(ctx context.Context, pref *models.SermonPreference) error

	// Delete removes a preference row
	Delete(ctx context.Context, id int64) error
}
