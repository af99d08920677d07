package services

import (
	"context"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// CreateSermonPreferenceRequest represents a thumbs-up/down on a sermon
type CreateSermonPreferenceRequest struct {
	UserID   int64 `json:"user_id"`
	SermonID int64 `json:"sermon_id"`
	Liked    bool  `json:"liked"`
}

// UpdateSermonPreferenceRequest flips the liked flag
type UpdateSermonPreferenceRequest struct {
	Liked bool `json:"liked"`
}

// SermonPreferenceService defines business logic for sermon ratings
type SermonPreferenceService interface {
	// Create records a rating; rating the same sermon twice is a Conflict
	Create(ctx context.Context, req *CreateSermonPreferenceRequest) (*models.SermonPreference, error)

	// Get retrieves a rating by ID
	Get(ctx context.Context, id int64) (*models.SermonPreference, error)

	// List retrieves ratings matching the filter
	List(ctx context.Context, filter repositories.SermonPreferenceFilter) ([]models.SermonPreference, error)

	// Update flips a rating's liked flag
	Update(ctx context.Context, id int64, req *UpdateSermonPreferenceRequest) (*models.SermonPreference, error)

	// Delete removes a rating
	Delete(ctx context.Context, id int64) error
}
