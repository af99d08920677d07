package handler

import (
	"log/slog"
	"net/http"

	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
	"pulpit/internal/httputil"
)

// SermonPreferenceHandler handles sermon rating HTTP requests
type SermonPreferenceHandler struct {
	prefService services.SermonPreferenceService
	logger      *slog.Logger
}

// NewSermonPreferenceHandler creates a new sermon preference handler
func NewSermonPreferenceHandler(prefService services.SermonPreferenceService, logger *slog.Logger) *SermonPreferenceHandler {
	return &SermonPreferenceHandler{
		prefService: prefService,
		logger:      logger,
	}
}

// List retrieves sermon ratings
// GET /api/sermon-preferences
func (h *SermonPreferenceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.SermonPreferenceFilter{}
	filter.Skip, filter.Limit = pagination(r)

	userID, err := queryInt64(r, "user_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.UserID = userID

	sermonID, err := queryInt64(r, "sermon_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.SermonID = sermonID

	liked, err := queryBool(r, "liked")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.Liked = liked

	prefs, err := h.prefService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prefs)
}

// Create records a sermon rating
// POST /api/sermon-preferences
func (h *SermonPreferenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateSermonPreferenceRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pref, err := h.prefService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, pref)
}

// Get retrieves a sermon rating by ID
// GET /api/sermon-preferences/{id}
func (h *SermonPreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	pref, err := h.prefService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, pref)
}

// Update flips a sermon rating's liked flag
// PUT /api/sermon-preferences/{id}
func (h *SermonPreferenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateSermonPreferenceRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pref, err := h.prefService.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, pref)
}

// Delete removes a sermon rating
// DELETE /api/sermon-preferences/{id}
func (h *SermonPreferenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.prefService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
