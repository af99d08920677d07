package repositories

import (
	"context"

	"pulpit/internal/domain/models"
)

// FollowerFilter narrows follower List results. Nil fields mean "no filter".
type FollowerFilter struct {
	// SubjectID filters on the followed resource (speaker_id or church_id)
	SubjectID *int64
	UserID    *int64
	Skip      int
	Limit     int
}

// SpeakerFollowerRepository manages the speaker_followers link table
type SpeakerFollowerRepository interface {
	// Create inserts a follow link; a duplicate (speaker_id, user_id) pair
	// returns a ConflictError
	Create(ctx context.Context, follower *models.SpeakerFollower) error

	// GetByID retrieves a follow link by ID
	GetByID(ctx context.Context, id int64) (*models.SpeakerFollower, error)

	// List retrieves follow links matching the filter, ordered by id
	List(ctx context.Context, filter FollowerFilter) ([]models.SpeakerFollower, error)

	// Delete removes a follow link
	Delete(ctx context.Context, id int64) error
}

// ChurchFollowerRepository manages the church_followers link table
type ChurchFollowerRepository interface {
	Create(ctx context.Context, follower *models.ChurchFollower) error
	GetByID(ctx context.Context, id int64) (*models.ChurchFollower, error)
	List(ctx context.Context, filter FollowerFilter) ([]models.ChurchFollower, error)
	Delete(ctx context.Context, id int64) error
}
