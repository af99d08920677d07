package service

import (
	"context"
	"fmt"
	"log/slog"

	"pulpit/internal/config"
	"pulpit/internal/domain"
	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
	"pulpit/internal/questions"
	"pulpit/internal/recommend"
)

// onboardingService implements the OnboardingService interface
type onboardingService struct {
	userRepo    repositories.UserRepository
	speakerRepo repositories.SpeakerRepository
	prefRepo    repositories.SpeakerPreferenceRepository
	registry    *questions.Registry
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(
	userRepo repositories.UserRepository,
	speakerRepo repositories.SpeakerRepository,
	prefRepo repositories.SpeakerPreferenceRepository,
	registry *questions.Registry,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.OnboardingService {
	return &onboardingService{
		userRepo:    userRepo,
		speakerRepo: speakerRepo,
		prefRepo:    prefRepo,
		registry:    registry,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetQuestions returns the question definitions with the speakers
// question populated from a live read of the speakers table.
func (s *onboardingService) GetQuestions(ctx context.Context) ([]models.Question, error) {
	speakers, err := s.speakerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.registry.WithSpeakerOptions(speakers), nil
}

// Submit validates and persists a user's questionnaire answers, then
// returns the updated user projection with ranked recommendations.
//
// Validation happens entirely before any write: a bad enum value or an
// unknown speaker id rejects the whole request and leaves the user's
// prior answers untouched. The writes themselves run in one transaction,
// so a mid-sequence failure cannot leave the link set half-replaced.
func (s *onboardingService) Submit(ctx context.Context, req *models.OnboardingSubmitRequest) (*models.OnboardingResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := validateAnswers(&req.Answers); err != nil {
		return nil, err
	}

	if len(req.Answers.Speakers) > 0 {
		missing, err := s.speakerRepo.MissingIDs(ctx, req.Answers.Speakers)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			return nil, &domain.FieldError{
				Field:   "speakers",
				Message: fmt.Sprintf("unknown speaker ids %v", missing),
			}
		}
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		update := repositories.PreferenceUpdate{
			BibleReadingPreference:  req.Answers.BibleReadingPreference,
			TeachingStylePreference: req.Answers.TeachingStylePreference,
			EnvironmentPreference:   req.Answers.EnvironmentPreference,
			OnboardingCompleted:     true,
		}
		if err := s.userRepo.UpdatePreferences(txCtx, req.UserID, update); err != nil {
			return err
		}
		// Full replace: the stored link set always equals the submitted
		// set, so re-submission never accumulates stale links.
		return s.prefRepo.ReplaceForUser(txCtx, req.UserID, req.Answers.Speakers)
	})
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	preferred, err := s.prefRepo.ListSpeakers(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	recommended, err := s.recommendForUser(ctx, user, req.Answers.Speakers)
	if err != nil {
		return nil, err
	}

	s.logger.Info("onboarding completed",
		"user_id", user.ID,
		"chosen_speakers", len(preferred),
		"recommendations", len(recommended),
	)

	return &models.OnboardingResponse{
		User: models.UserWithSpeakers{
			User:              *user,
			PreferredSpeakers: preferred,
		},
		RecommendedSpeakers: recommended,
	}, nil
}

// GetRecommendations re-runs the matcher against the user's stored
// preferences. Users who have not completed onboarding have no
// preferences to match against and are reported as not found.
func (s *onboardingService) GetRecommendations(ctx context.Context, userID int64) ([]models.Speaker, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.OnboardingCompleted {
		return nil, fmt.Errorf("user %d has not completed onboarding: %w", userID, domain.ErrNotFound)
	}

	chosen, err := s.prefRepo.ListSpeakerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.recommendForUser(ctx, user, chosen)
}

// recommendForUser ranks all speakers minus the user's explicit choices
func (s *onboardingService) recommendForUser(ctx context.Context, user *models.User, excludeIDs []int64) ([]models.Speaker, error) {
	candidates, err := s.speakerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	prefs := recommend.Preferences{
		BibleReading:  user.BibleReadingPreference,
		TeachingStyle: user.TeachingStylePreference,
		Environment:   user.EnvironmentPreference,
	}

	return recommend.Recommend(prefs, candidates, excludeIDs, config.RecommendationLimit), nil
}

// validateAnswers checks each provided enum against its closed set. The
// checks are by hand rather than through the validation library so empty
// strings are rejected too and the offending field is named exactly.
func validateAnswers(answers *models.OnboardingAnswers) error {
	if answers.BibleReadingPreference != nil && !answers.BibleReadingPreference.Valid() {
		return &domain.FieldError{
			Field:   "bible_reading_preference",
			Message: fmt.Sprintf("%q is not a valid bible reading preference", *answers.BibleReadingPreference),
		}
	}
	if answers.TeachingStylePreference != nil && !answers.TeachingStylePreference.Valid() {
		return &domain.FieldError{
			Field:   "teaching_style_preference",
			Message: fmt.Sprintf("%q is not a valid teaching style preference", *answers.TeachingStylePreference),
		}
	}
	if answers.EnvironmentPreference != nil && !answers.EnvironmentPreference.Valid() {
		return &domain.FieldError{
			Field:   "environment_preference",
			Message: fmt.Sprintf("%q is not a valid environment preference", *answers.EnvironmentPreference),
		}
	}
	return nil
}
