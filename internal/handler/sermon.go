package handler

import (
	"log/slog"
	"net/http"

	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
	"pulpit/internal/httputil"
)

// SermonHandler handles sermon HTTP requests
type SermonHandler struct {
	sermonService services.SermonService
	logger        *slog.Logger
}

// NewSermonHandler creates a new sermon handler
func NewSermonHandler(sermonService services.SermonService, logger *slog.Logger) *SermonHandler {
	return &SermonHandler{
		sermonService: sermonService,
		logger:        logger,
	}
}

// ListSermons retrieves sermons, newest first
// GET /api/sermons
func (h *SermonHandler) ListSermons(w http.ResponseWriter, r *http.Request) {
	filter := repositories.SermonFilter{}
	filter.Skip, filter.Limit = pagination(r)

	speakerID, err := queryInt64(r, "speaker_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.SpeakerID = speakerID

	isClip, err := queryBool(r, "is_clip")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.IsClip = isClip

	sermons, err := h.sermonService.ListSermons(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sermons)
}

// CreateSermon creates a new sermon
// POST /api/sermons
func (h *SermonHandler) CreateSermon(w http.ResponseWriter, r *http.Request) {
	var req services.CreateSermonRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sermon, err := h.sermonService.CreateSermon(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, sermon)
}

// GetSermon retrieves a sermon by ID
// GET /api/sermons/{id}
func (h *SermonHandler) GetSermon(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sermon, err := h.sermonService.GetSermon(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sermon)
}

// UpdateSermon applies a partial update to a sermon
// PUT /api/sermons/{id}
func (h *SermonHandler) UpdateSermon(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateSermonRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sermon, err := h.sermonService.UpdateSermon(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sermon)
}

// DeleteSermon removes a sermon
// DELETE /api/sermons/{id}
func (h *SermonHandler) DeleteSermon(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.sermonService.DeleteSermon(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
