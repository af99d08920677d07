package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/services"
	"pulpit/internal/httputil"
)

// OnboardingHandler handles the questionnaire flow HTTP requests
type OnboardingHandler struct {
	onboardingService services.OnboardingService
	logger            *slog.Logger
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingService services.OnboardingService, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
		logger:            logger,
	}
}

// GetQuestions returns the questionnaire definitions
// GET /api/onboarding/questions
func (h *OnboardingHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := h.onboardingService.GetQuestions(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, qs)
}

// Submit validates and persists a user's questionnaire answers
// POST /api/onboarding/submit
func (h *OnboardingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.OnboardingSubmitRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID <= 0 {
		httputil.RespondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	resp, err := h.onboardingService.Submit(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

// GetRecommendations re-runs the matcher for a user
// GET /api/onboarding/recommendations/{user_id}
func (h *OnboardingHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		httputil.RespondError(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	speakers, err := h.onboardingService.GetRecommendations(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, speakers)
}
