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

// speakerService implements the SpeakerService interface
type speakerService struct {
	speakerRepo repositories.SpeakerRepository
	logger      *slog.Logger
}

// NewSpeakerService creates a new speaker service
func NewSpeakerService(speakerRepo repositories.SpeakerRepository, logger *slog.Logger) services.SpeakerService {
	return &speakerService{
		speakerRepo: speakerRepo,
		logger:      logger,
	}
}

// CreateSpeaker creates a new speaker
func (s *speakerService) CreateSpeaker(ctx context.Context, req *services.CreateSpeakerRequest) (*models.Speaker, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Unset attributes default to the middle-of-the-road value, so
	// matching still has something to compare against.
	teachingStyle := models.TeachingBalanced
	if req.TeachingStyle != nil {
		teachingStyle = *req.TeachingStyle
	}
	bibleApproach := models.BibleBalanced
	if req.BibleApproach != nil {
		bibleApproach = *req.BibleApproach
	}
	environmentStyle := models.EnvironmentBlended
	if req.EnvironmentStyle != nil {
		environmentStyle = *req.EnvironmentStyle
	}

	speaker := &models.Speaker{
		ChurchID:          req.ChurchID,
		Name:              strings.TrimSpace(req.Name),
		Title:             strings.TrimSpace(req.Title),
		Bio:               req.Bio,
		Email:             req.Email,
		Phone:             req.Phone,
		YearsOfService:    req.YearsOfService,
		ProfilePictureURL: req.ProfilePictureURL,
		SocialMedia:       req.SocialMedia,
		SpeakingTopics:    req.SpeakingTopics,
		SortOrder:         req.SortOrder,
		TeachingStyle:     teachingStyle,
		BibleApproach:     bibleApproach,
		EnvironmentStyle:  environmentStyle,
		IsRecommended:     req.IsRecommended,
	}

	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return nil, err
	}

	s.logger.Info("speaker created",
		"id", speaker.ID,
		"name", speaker.Name,
		"church_id", speaker.ChurchID,
	)

	return speaker, nil
}

// GetSpeaker retrieves a speaker by ID with its church projection
func (s *speakerService) GetSpeaker(ctx context.Context, id int64) (*models.Speaker, error) {
	return s.speakerRepo.GetByID(ctx, id)
}

// ListSpeakers retrieves speakers matching the filter
func (s *speakerService) ListSpeakers(ctx context.Context, filter repositories.SpeakerFilter) ([]models.Speaker, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.speakerRepo.List(ctx, filter)
}

// UpdateSpeaker applies a partial update to a speaker
func (s *speakerService) UpdateSpeaker(ctx context.Context, id int64, req *services.UpdateSpeakerRequest) (*models.Speaker, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	speaker, err := s.speakerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ChurchID != nil {
		speaker.ChurchID = req.ChurchID
	}
	if req.Name != nil {
		speaker.Name = strings.TrimSpace(*req.Name)
	}
	if req.Title != nil {
		speaker.Title = strings.TrimSpace(*req.Title)
	}
	if req.Bio != nil {
		speaker.Bio = req.Bio
	}
	if req.Email != nil {
		speaker.Email = req.Email
	}
	if req.Phone != nil {
		speaker.Phone = req.Phone
	}
	if req.YearsOfService != nil {
		speaker.YearsOfService = req.YearsOfService
	}
	if req.ProfilePictureURL != nil {
		speaker.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.SocialMedia != nil {
		speaker.SocialMedia = req.SocialMedia
	}
	if req.SpeakingTopics != nil {
		speaker.SpeakingTopics = req.SpeakingTopics
	}
	if req.SortOrder != nil {
		speaker.SortOrder = *req.SortOrder
	}
	if req.TeachingStyle != nil {
		speaker.TeachingStyle = *req.TeachingStyle
	}
	if req.BibleApproach != nil {
		speaker.BibleApproach = *req.BibleApproach
	}
	if req.EnvironmentStyle != nil {
		speaker.EnvironmentStyle = *req.EnvironmentStyle
	}
	if req.IsRecommended != nil {
		speaker.IsRecommended = *req.IsRecommended
	}

	if err := s.speakerRepo.Update(ctx, speaker); err != nil {
		return nil, err
	}

	s.logger.Info("speaker updated", "id", speaker.ID, "name", speaker.Name)

	return speaker, nil
}

// DeleteSpeaker removes a speaker
func (s *speakerService) DeleteSpeaker(ctx context.Context, id int64) error {
	if err := s.speakerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("speaker deleted", "id", id)
	return nil
}

// validateCreateRequest validates a create speaker request
func (s *speakerService) validateCreateRequest(req *services.CreateSpeakerRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&req.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&req.Email, is.EmailFormat),
		validation.Field(&req.TeachingStyle,
			validation.In(models.TeachingAcademic, models.TeachingRelatable, models.TeachingBalanced),
		),
		validation.Field(&req.BibleApproach,
			validation.In(models.BibleMoreScripture, models.BibleMoreApplication, models.BibleBalanced),
		),
		validation.Field(&req.EnvironmentStyle,
			validation.In(models.EnvironmentTraditional, models.EnvironmentContemporary, models.EnvironmentBlended),
		),
	)
}

// validateUpdateRequest validates an update speaker request
func (s *speakerService) validateUpdateRequest(req *services.UpdateSpeakerRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&req.Email, is.EmailFormat),
		validation.Field(&req.TeachingStyle,
			validation.In(models.TeachingAcademic, models.TeachingRelatable, models.TeachingBalanced),
		),
		validation.Field(&req.BibleApproach,
			validation.In(models.BibleMoreScripture, models.BibleMoreApplication, models.BibleBalanced),
		),
		validation.Field(&req.EnvironmentStyle,
			validation.In(models.EnvironmentTraditional, models.EnvironmentContemporary, models.EnvironmentBlended),
		),
	)
}
