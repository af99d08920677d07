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

// churchService implements the ChurchService interface
type churchService struct {
	churchRepo repositories.ChurchRepository
	logger     *slog.Logger
}

// NewChurchService creates a new church service
func NewChurchService(churchRepo repositories.ChurchRepository, logger *slog.Logger) services.ChurchService {
	return &churchService{
		churchRepo: churchRepo,
		logger:     logger,
	}
}

// CreateChurch creates a new church
func (s *churchService) CreateChurch(ctx context.Context, req *services.CreateChurchRequest) (*models.Church, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	church := &models.Church{
		Name:            strings.TrimSpace(req.Name),
		Denomination:    strings.TrimSpace(req.Denomination),
		Description:     req.Description,
		Address:         req.Address,
		Phone:           req.Phone,
		Email:           req.Email,
		Website:         req.Website,
		FoundedYear:     req.FoundedYear,
		MembershipCount: req.MembershipCount,
		ServiceTimes:    req.ServiceTimes,
		SocialMedia:     req.SocialMedia,
		IsActive:        isActive,
		SortOrder:       req.SortOrder,
	}

	if err := s.churchRepo.Create(ctx, church); err != nil {
		return nil, err
	}

	s.logger.Info("church created",
		"id", church.ID,
		"name", church.Name,
		"denomination", church.Denomination,
	)

	return church, nil
}

// GetChurch retrieves a church by ID
func (s *churchService) GetChurch(ctx context.Context, id int64) (*models.Church, error) {
	return s.churchRepo.GetByID(ctx, id)
}

// ListChurches retrieves churches matching the filter
func (s *churchService) ListChurches(ctx context.Context, filter repositories.ChurchFilter) ([]models.Church, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.churchRepo.List(ctx, filter)
}

// UpdateChurch applies a partial update to a church
func (s *churchService) UpdateChurch(ctx context.Context, id int64, req *services.UpdateChurchRequest) (*models.Church, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	church, err := s.churchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		church.Name = strings.TrimSpace(*req.Name)
	}
	if req.Denomination != nil {
		church.Denomination = strings.TrimSpace(*req.Denomination)
	}
	if req.Description != nil {
		church.Description = req.Description
	}
	if req.Address != nil {
		church.Address = req.Address
	}
	if req.Phone != nil {
		church.Phone = req.Phone
	}
	if req.Email != nil {
		church.Email = req.Email
	}
	if req.Website != nil {
		church.Website = req.Website
	}
	if req.FoundedYear != nil {
		church.FoundedYear = req.FoundedYear
	}
	if req.MembershipCount != nil {
		church.MembershipCount = req.MembershipCount
	}
	if req.ServiceTimes != nil {
		church.ServiceTimes = req.ServiceTimes
	}
	if req.SocialMedia != nil {
		church.SocialMedia = req.SocialMedia
	}
	if req.IsActive != nil {
		church.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		church.SortOrder = *req.SortOrder
	}

	if err := s.churchRepo.Update(ctx, church); err != nil {
		return nil, err
	}

	s.logger.Info("church updated", "id", church.ID, "name", church.Name)

	return church, nil
}

// DeleteChurch removes a church
func (s *churchService) DeleteChurch(ctx context.Context, id int64) error {
	if err := s.churchRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("church deleted", "id", id)
	return nil
}

// validateCreateRequest validates a create church request
func (s *churchService) validateCreateRequest(req *services.CreateChurchRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&req.Denomination,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&req.Email, is.EmailFormat),
		validation.Field(&req.Website, is.URL),
	)
}

// validateUpdateRequest validates an update church request
func (s *churchService) validateUpdateRequest(req *services.UpdateChurchRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Denomination, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Email, is.EmailFormat),
		validation.Field(&req.Website, is.URL),
	)
}

// clampLimit applies the default and maximum page sizes
func clampLimit(limit int) int {
	if limit <= 0 {
		return config.DefaultPageLimit
	}
	if limit > config.MaxPageLimit {
		return config.MaxPageLimit
	}
	return limit
}
