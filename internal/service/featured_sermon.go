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

// featuredSermonService implements the FeaturedSermonService interface
type featuredSermonService struct {
	featuredRepo repositories.FeaturedSermonRepository
	sermonRepo   repositories.SermonRepository
	logger       *slog.Logger
}

// NewFeaturedSermonService creates a new featured sermon service
func NewFeaturedSermonService(
	featuredRepo repositories.FeaturedSermonRepository,
	sermonRepo repositories.SermonRepository,
	logger *slog.Logger,
) services.FeaturedSermonService {
	return &featuredSermonService{
		featuredRepo: featuredRepo,
		sermonRepo:   sermonRepo,
		logger:       logger,
	}
}

// Create features a sermon for a church. Only full sermons qualify:
// featuring a clip is rejected before any write.
func (s *featuredSermonService) Create(ctx context.Context, req *services.CreateFeaturedSermonRequest) (*models.FeaturedSermon, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.ChurchID, validation.Required),
		validation.Field(&req.SermonID, validation.Required),
		validation.Field(&req.SortOrder, validation.Min(0)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	sermon, err := s.sermonRepo.GetByID(ctx, req.SermonID)
	if err != nil {
		return nil, err
	}
	if sermon.IsClip {
		return nil, &domain.FieldError{
			Field:   "sermon_id",
			Message: fmt.Sprintf("sermon %d is a clip; only full sermons can be featured", sermon.ID),
		}
	}

	featured := &models.FeaturedSermon{
		ChurchID:  req.ChurchID,
		SermonID:  req.SermonID,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		featured.IsActive = *req.IsActive
	}

	if err := s.featuredRepo.Create(ctx, featured); err != nil {
		return nil, err
	}

	s.logger.Info("sermon featured",
		"id", featured.ID,
		"church_id", featured.ChurchID,
		"sermon_id", featured.SermonID,
	)

	return featured, nil
}

// Get retrieves a featured sermon by ID
func (s *featuredSermonService) Get(ctx context.Context, id int64) (*models.FeaturedSermon, error) {
	return s.featuredRepo.GetByID(ctx, id)
}

// List retrieves featured sermons matching the filter
func (s *featuredSermonService) List(ctx context.Context, filter repositories.FeaturedSermonFilter) ([]models.FeaturedSermon, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.featuredRepo.List(ctx, filter)
}

// Update applies a partial update to a featured sermon
func (s *featuredSermonService) Update(ctx context.Context, id int64, req *services.UpdateFeaturedSermonRequest) (*models.FeaturedSermon, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.SortOrder, validation.Min(0)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	featured, err := s.featuredRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SortOrder != nil {
		featured.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		featured.IsActive = *req.IsActive
	}

	if err := s.featuredRepo.Update(ctx, featured); err != nil {
		return nil, err
	}

	s.logger.Info("featured sermon updated",
		"id", featured.ID,
		"sort_order", featured.SortOrder,
		"is_active", featured.IsActive,
	)

	return featured, nil
}

// Delete removes a sermon from a church's featured shelf
func (s *featuredSermonService) Delete(ctx context.Context, id int64) error {
	if err := s.featuredRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("featured sermon removed", "id", id)
	return nil
}
