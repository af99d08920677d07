package handler

import (
	"log/slog"
	"net/http"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
	"pulpit/internal/httputil"
)

// SpeakerHandler handles speaker HTTP requests
type SpeakerHandler struct {
	speakerService services.SpeakerService
	logger         *slog.Logger
}

// NewSpeakerHandler creates a new speaker handler
func NewSpeakerHandler(speakerService services.SpeakerService, logger *slog.Logger) *SpeakerHandler {
	return &SpeakerHandler{
		speakerService: speakerService,
		logger:         logger,
	}
}

// ListSpeakers retrieves speakers
// GET /api/speakers
func (h *SpeakerHandler) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	filter := repositories.SpeakerFilter{}
	filter.Skip, filter.Limit = pagination(r)

	churchID, err := queryInt64(r, "church_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.ChurchID = churchID

	isRecommended, err := queryBool(r, "is_recommended")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.IsRecommended = isRecommended

	if raw := queryString(r, "teaching_style"); raw != nil {
		style := models.TeachingStyle(*raw)
		if !style.Valid() {
			httputil.RespondError(w, http.StatusBadRequest, "invalid teaching_style")
			return
		}
		filter.TeachingStyle = &style
	}
	if raw := queryString(r, "bible_approach"); raw != nil {
		approach := models.BibleApproach(*raw)
		if !approach.Valid() {
			httputil.RespondError(w, http.StatusBadRequest, "invalid bible_approach")
			return
		}
		filter.BibleApproach = &approach
	}
	if raw := queryString(r, "environment_style"); raw != nil {
		env := models.EnvironmentStyle(*raw)
		if !env.Valid() {
			httputil.RespondError(w, http.StatusBadRequest, "invalid environment_style")
			return
		}
		filter.EnvironmentStyle = &env
	}

	speakers, err := h.speakerService.ListSpeakers(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, speakers)
}

// CreateSpeaker creates a new speaker
// POST /api/speakers
func (h *SpeakerHandler) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req services.CreateSpeakerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	speaker, err := h.speakerService.CreateSpeaker(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, speaker)
}

// GetSpeaker retrieves a speaker by ID
// GET /api/speakers/{id}
func (h *SpeakerHandler) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	speaker, err := h.speakerService.GetSpeaker(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, speaker)
}

// UpdateSpeaker applies a partial update to a speaker
// PUT /api/speakers/{id}
func (h *SpeakerHandler) UpdateSpeaker(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateSpeakerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	speaker, err := h.speakerService.UpdateSpeaker(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, speaker)
}

// DeleteSpeaker removes a speaker
// DELETE /api/speakers/{id}
func (h *SpeakerHandler) DeleteSpeaker(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.speakerService.DeleteSpeaker(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
