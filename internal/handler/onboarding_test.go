package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulpit/internal/domain/models"
)

type stubOnboardingService struct {
	questions []models.Question
	speakers  []models.Speaker
}

func (s *stubOnboardingService) GetQuestions(ctx context.Context) ([]models.Question, error) {
	return s.questions, nil
}

func (s *stubOnboardingService) Submit(ctx context.Context, req *models.OnboardingSubmitRequest) (*models.OnboardingResponse, error) {
	return &models.OnboardingResponse{RecommendedSpeakers: s.speakers}, nil
}

func (s *stubOnboardingService) GetRecommendations(ctx context.Context, userID int64) ([]models.Speaker, error) {
	return s.speakers, nil
}

func TestGetQuestions_ReturnsBareArray(t *testing.T) {
	svc := &stubOnboardingService{
		questions: []models.Question{
			{ID: "bibleReadingPreference", Title: "How do you like the Bible taught?", Type: "single-select"},
			{ID: "speakers", Title: "Any speakers you already follow?", Type: "multi-select"},
		},
	}
	h := NewOnboardingHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	h.GetQuestions(rec, httptest.NewRequest(http.MethodGet, "/api/onboarding/questions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []models.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not a question array: %v", err)
	}
	if len(got) != 2 || got[0].ID != "bibleReadingPreference" {
		t.Errorf("questions = %+v, want the two stubbed questions in order", got)
	}
}

func TestGetRecommendations_ReturnsBareArray(t *testing.T) {
	svc := &stubOnboardingService{
		speakers: []models.Speaker{{ID: 3, Name: "Miriam Okafor"}, {ID: 1, Name: "John Tan"}},
	}
	h := NewOnboardingHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/onboarding/recommendations/{user_id}", h.GetRecommendations)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/onboarding/recommendations/7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []models.Speaker
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not a speaker array: %v", err)
	}
	if len(got) != 2 || got[0].ID != 3 {
		t.Errorf("speakers = %+v, want the stubbed ranking preserved", got)
	}
}
