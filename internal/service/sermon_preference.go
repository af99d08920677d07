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

// sermonPreferenceService implements the SermonPreferenceService interface
type sermonPreferenceService struct {
	prefRepo repositories.SermonPreferenceRepository
	logger   *slog.Logger
}

// NewSermonPreferenceService creates a new sermon preference service
func NewSermonPreferenceService(prefRepo repositories.SermonPreferenceRepository, logger *slog.Logger) services.SermonPreferenceService {
	return &sermonPreferenceService{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// Create records a rating; rating the same sermon twice is a Conflict
func (s *sermonPreferenceService) Create(ctx context.Context, req *services.CreateSermonPreferenceRequest) (*models.SermonPreference, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.SermonID, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	pref := &models.SermonPreference{
		UserID:   req.UserID,
		SermonID: req.SermonID,
		Liked:    req.Liked,
	}

	if err := s.prefRepo.Create(ctx, pref); err != nil {
		return nil, err
	}

	s.logger.Info("sermon preference recorded",
		"id", pref.ID,
		"user_id", pref.UserID,
		"sermon_id", pref.SermonID,
		"liked", pref.Liked,
	)

	return pref, nil
}

// Get retrieves a rating by ID
func (s *sermonPreferenceService) Get(ctx context.Context, id int64) (*models.SermonPreference, error) {
	return s.prefRepo.GetByID(ctx, id)
}

// List retrieves ratings matching the filter
func (s *sermonPreferenceService) List(ctx context.Context, filter repositories.SermonPreferenceFilter) ([]models.SermonPreference, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.prefRepo.List(ctx, filter)
}

// Update flips a rating's liked flag
func (s *sermonPreferenceService) Update(ctx context.Context, id int64, req *services.UpdateSermonPreferenceRequest) (*models.SermonPreference, error) {
	pref, err := s.prefRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pref.Liked = req.Liked

	if err := s.prefRepo.Update(ctx, pref); err != nil {
		return nil, err
	}

	s.logger.Info("sermon preference updated", "id", pref.ID, "liked", pref.Liked)

	return pref, nil
}

// Delete removes a rating
func (s *sermonPreferenceService) Delete(ctx context.Context, id int64) error {
	if err := s.prefRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("sermon preference deleted", "id", id)
	return nil
}
