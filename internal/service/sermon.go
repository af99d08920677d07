package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"pulpit/internal/config"
	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
)

// sermonService implements the SermonService interface
type sermonService struct {
	sermonRepo repositories.SermonRepository
	logger     *slog.Logger
}

// NewSermonService creates a new sermon service
func NewSermonService(sermonRepo repositories.SermonRepository, logger *slog.Logger) services.SermonService {
	return &sermonService{
		sermonRepo: sermonRepo,
		logger:     logger,
	}
}

// CreateSermon creates a new sermon
func (s *sermonService) CreateSermon(ctx context.Context, req *services.CreateSermonRequest) (*models.Sermon, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.SpeakerID, validation.Required),
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
		),
		validation.Field(&req.MediaURL, validation.Required, is.URL),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	sermon := &models.Sermon{
		SpeakerID:   req.SpeakerID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		MediaURL:    req.MediaURL,
		IsClip:      req.IsClip,
	}

	if err := s.sermonRepo.Create(ctx, sermon); err != nil {
		return nil, err
	}

	s.logger.Info("sermon created",
		"id", sermon.ID,
		"speaker_id", sermon.SpeakerID,
		"title", sermon.Title,
	)

	return sermon, nil
}

// GetSermon retrieves a sermon by ID
func (s *sermonService) GetSermon(ctx context.Context, id int64) (*models.Sermon, error) {
	return s.sermonRepo.GetByID(ctx, id)
}

// ListSermons retrieves sermons matching the filter
func (s *sermonService) ListSermons(ctx context.Context, filter repositories.SermonFilter) ([]models.Sermon, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.sermonRepo.List(ctx, filter)
}

// UpdateSermon applies a partial update to a sermon
func (s *sermonService) UpdateSermon(ctx context.Context, id int64, req *services.UpdateSermonRequest) (*models.Sermon, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Length(1, config.MaxTitleLength)),
		validation.Field(&req.MediaURL, is.URL),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	sermon, err := s.sermonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SpeakerID != nil {
		sermon.SpeakerID = *req.SpeakerID
	}
	if req.Title != nil {
		sermon.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		sermon.Description = req.Description
	}
	if req.MediaURL != nil {
		sermon.MediaURL = *req.MediaURL
	}
	if req.IsClip != nil {
		sermon.IsClip = *req.IsClip
	}

	if err := s.sermonRepo.Update(ctx, sermon); err != nil {
		return nil, err
	}

	s.logger.Info("sermon updated", "id", sermon.ID, "title", sermon.Title)

	return sermon, nil
}

// DeleteSermon removes a sermon
func (s *sermonService) DeleteSermon(ctx context.Context, id int64) error {
	if err := s.sermonRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("sermon deleted", "id", id)
	return nil
}
