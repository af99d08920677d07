package services

import (
	"context"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// CreateSermonRequest represents a request to create a sermon
type CreateSermonRequest struct {
	SpeakerID   int64   `json:"speaker_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	MediaURL    string  `json:"media_url"`
	IsClip      bool    `json:"is_clip"`
}

// UpdateSermonRequest represents a request to update a sermon.
// Nil fields are left unchanged.
type UpdateSermonRequest struct {
	SpeakerID   *int64  `json:"speaker_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	MediaURL    *string `json:"media_url"`
	IsClip      *bool   `json:"is_clip"`
}

// SermonService defines business logic operations for sermons
type SermonService interface {
	// CreateSermon creates a new sermon
	CreateSermon(ctx context.Context, req *CreateSermonRequest) (*models.Sermon, error)

	// GetSermon retrieves a sermon by ID
	GetSermon(ctx context.Context, id int64) (*models.Sermon, error)

	// ListSermons retrieves sermons matching the filter
	ListSermons(ctx context.Context, filter repositories.SermonFilter) ([]models.Sermon, error)

	// UpdateSermon applies a partial update to a sermon
	UpdateSermon(ctx context.Context, id int64, req *UpdateSermonRequest) (*models.Sermon, error)

	// DeleteSermon removes a sermon
	DeleteSermon(ctx context.Context, id int64) error
}
