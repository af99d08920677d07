package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
)

// speakerFollowerService implements the SpeakerFollowerService interface
type speakerFollowerService struct {
	followerRepo repositories.SpeakerFollowerRepository
	logger       *slog.Logger
}

// NewSpeakerFollowerService creates a new speaker follower service
func NewSpeakerFollowerService(followerRepo repositories.SpeakerFollowerRepository, logger *slog.Logger) services.SpeakerFollowerService {
	return &speakerFollowerService{
		followerRepo: followerRepo,
		logger:       logger,
	}
}

// Follow creates a follow link; following twice is a Conflict
func (s *speakerFollowerService) Follow(ctx context.Context, req *services.FollowSpeakerRequest) (*models.SpeakerFollower, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.SpeakerID, validation.Required),
		validation.Field(&req.UserID, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	follower := &models.SpeakerFollower{
		SpeakerID: req.SpeakerID,
		UserID:    req.UserID,
	}

	if err := s.followerRepo.Create(ctx, follower); err != nil {
		return nil, err
	}

	s.logger.Info("speaker followed",
		"id", follower.ID,
		"speaker_id", follower.SpeakerID,
		"user_id", follower.UserID,
	)

	return follower, nil
}

// Get retrieves a follow link by ID
func (s *speakerFollowerService) Get(ctx context.Context, id int64) (*models.SpeakerFollower, error) {
	return s.followerRepo.GetByID(ctx, id)
}

// List retrieves follow links matching the filter
func (s *speakerFollowerService) List(ctx context.Context, filter repositories.FollowerFilter) ([]models.SpeakerFollower, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.followerRepo.List(ctx, filter)
}

// Unfollow removes a follow link
func (s *speakerFollowerService) Unfollow(ctx context.Context, id int64) error {
	if err := s.followerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("speaker unfollowed", "id", id)
	return nil
}

// churchFollowerService implements the ChurchFollowerService interface
type churchFollowerService struct {
	followerRepo repositories.ChurchFollowerRepository
	logger       *slog.Logger
}

// NewChurchFollowerService creates a new church follower service
func NewChurchFollowerService(followerRepo repositories.ChurchFollowerRepository, logger *slog.Logger) services.ChurchFollowerService {
	return &churchFollowerService{
		followerRepo: followerRepo,
		logger:       logger,
	}
}

func (s *churchFollowerService) Follow(ctx context.Context, req *services.FollowChurchRequest) (*models.ChurchFollower, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.ChurchID, validation.Required),
		validation.Field(&req.UserID, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	follower := &models.ChurchFollower{
		ChurchID: req.ChurchID,
		UserID:   req.UserID,
	}

	if err := s.followerRepo.Create(ctx, follower); err != nil {
		return nil, err
	}

	s.logger.Info("church followed",
		"id", follower.ID,
		"church_id", follower.ChurchID,
		"user_id", follower.UserID,
	)

	return follower, nil
}

func (s *churchFollowerService) Get(ctx context.Context, id int64) (*models.ChurchFollower, error) {
	return s.followerRepo.GetByID(ctx, id)
}

func (s *churchFollowerService) List(ctx context.Context, filter repositories.FollowerFilter) ([]models.ChurchFollower, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.followerRepo.List(ctx, filter)
}

func (s *churchFollowerService) Unfollow(ctx context.Context, id int64) error {
	if err := s.followerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("church unfollowed", "id", id)
	return nil
}
