package services

import (
	"context"

	"pulpit/internal/domain/models"
)

// OnboardingService sequences the questionnaire flow: serve questions,
// validate and persist submitted answers, and produce recommendations.
type OnboardingService interface {
	// GetQuestions returns the question definitions in presentation
	// order. The speakers question's options reflect the speakers table
	// at call time.
	GetQuestions(ctx context.Context) ([]models.Question, error)

	// Submit validates the answers, persists them atomically onto the
	// user, and returns the updated user projection with ranked
	// recommendations. Re-submission overwrites the previous answers.
	Submit(ctx context.Context, req *models.OnboardingSubmitRequest) (*models.OnboardingResponse, error)

	// GetRecommendations re-runs the matcher against the user's stored
	// preferences. The user must exist and have completed onboarding.
	GetRecommendations(ctx context.Context, userID int64) ([]models.Speaker, error)
}
