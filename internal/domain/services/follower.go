package services

import (
	"context"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// FollowSpeakerRequest represents a request to follow a speaker
type FollowSpeakerRequest struct {
	SpeakerID int64 `json:"speaker_id"`
	UserID    int64 `json:"user_id"`
}

// FollowChurchRequest represents a request to follow a church
type FollowChurchRequest struct {
	ChurchID int64 `json:"church_id"`
	UserID   int64 `json:"user_id"`
}

// SpeakerFollowerService defines business logic for speaker follows
type SpeakerFollowerService interface {
	// Follow creates a follow link; following twice is a Conflict
	Follow(ctx context.Context, req *FollowSpeakerRequest) (*models.SpeakerFollower, error)

	// Get retrieves a follow link by ID
	Get(ctx context.Context, id int64) (*models.SpeakerFollower, error)

	// List retrieves follow links matching the filter
	List(ctx context.Context, filter repositories.FollowerFilter) ([]models.SpeakerFollower, error)

	// Unfollow removes a follow link
	Unfollow(ctx context.Context, id int64) error
}

// ChurchFollowerService defines business logic for church follows
type ChurchFollowerService interface {
	Follow(ctx context.Context, req *FollowChurchRequest) (*models.ChurchFollower, error)
	Get(ctx context.Context, id int64) (*models.ChurchFollower, error)
	List(ctx context.Context, filter repositories.FollowerFilter) ([]models.ChurchFollower, error)
	Unfollow(ctx context.Context, id int64) error
}
