package services

import (
	"context"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
)

// CreateSpeakerRequest represents a request to create a speaker
type CreateSpeakerRequest struct {
	ChurchID          *int64                   `json:"church_id"`
	Name              string                   `json:"name"`
	Title             string                   `json:"title"`
	Bio               *string                  `json:"bio"`
	Email             *string                  `json:"email"`
	Phone             *string                  `json:"phone"`
	YearsOfService    *int                     `json:"years_of_service"`
	ProfilePictureURL *string                  `json:"profile_picture_url"`
	SocialMedia       models.JSONMap           `json:"social_media"`
	SpeakingTopics    []models.SpeakingTopic   `json:"speaking_topics"`
	SortOrder         int                      `json:"sort_order"`
	TeachingStyle     *models.TeachingStyle    `json:"teaching_style"`
	BibleApproach     *models.BibleApproach    `json:"bible_approach"`
	EnvironmentStyle  *models.EnvironmentStyle `json:"environment_style"`
	IsRecommended     bool                     `json:"is_recommended"`
}

// UpdateSpeakerRequest represents a request to update a speaker.
// Nil fields are left unchanged.
type UpdateSpeakerRequest struct {
	ChurchID          *int64                   `json:"church_id"`
	Name              *string                  `json:"name"`
	Title             *string                  `json:"title"`
	Bio               *string                  `json:"bio"`
	Email             *string                  `json:"email"`
	Phone             *string                  `json:"phone"`
	YearsOfService    *int                     `json:"years_of_service"`
	ProfilePictureURL *string                  `json:"profile_picture_url"`
	SocialMedia       models.JSONMap           `json:"social_media"`
	SpeakingTopics    []models.SpeakingTopic   `json:"speaking_topics"`
	SortOrder         *int                     `json:"sort_order"`
	TeachingStyle     *models.TeachingStyle    `json:"teaching_style"`
	BibleApproach     *models.BibleApproach    `json:"bible_approach"`
	EnvironmentStyle  *models.EnvironmentStyle `json:"environment_style"`
	IsRecommended     *bool                    `json:"is_recommended"`
}

// SpeakerService defines business logic operations for speakers
type SpeakerService interface {
	// CreateSpeaker creates a new speaker
	CreateSpeaker(ctx context.Context, req *CreateSpeakerRequest) (*models.Speaker, error)

	// GetSpeaker retrieves a speaker by ID with its church projection
	GetSpeaker(ctx context.Context, id int64) (*models.Speaker, error)

	// ListSpeakers retrieves speakers matching the filter
	ListSpeakers(ctx context.Context, filter repositories.SpeakerFilter) ([]models.Speaker, error)

	// UpdateSpeaker applies a partial update to a speaker
	UpdateSpeaker(ctx context.Context, id int64, req *UpdateSpeakerRequest) (*models.Speaker, error)

	// DeleteSpeaker removes a speaker
	DeleteSpeaker(ctx context.Context, id int64) error
}
