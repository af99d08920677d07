package handler

import (
	"log/slog"
	"net/http"

	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
	"pulpit/internal/httputil"
)

// ChurchHandler handles church HTTP requests
type ChurchHandler struct {
	churchService services.ChurchService
	logger        *slog.Logger
}

// NewChurchHandler creates a new church handler
func NewChurchHandler(churchService services.ChurchService, logger *slog.Logger) *ChurchHandler {
	return &ChurchHandler{
		churchService: churchService,
		logger:        logger,
	}
}

// ListChurches retrieves churches
// GET /api/churches
func (h *ChurchHandler) ListChurches(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ChurchFilter{}
	filter.Skip, filter.Limit = pagination(r)
	filter.Denomination = queryString(r, "denomination")
	filter.Name = queryString(r, "name")

	isActive, err := queryBool(r, "is_active")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.IsActive = isActive

	churches, err := h.churchService.ListChurches(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, churches)
}

// CreateChurch creates a new church
// POST /api/churches
func (h *ChurchHandler) CreateChurch(w http.ResponseWriter, r *http.Request) {
	var req services.CreateChurchRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	church, err := h.churchService.CreateChurch(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, church)
}

// GetChurch retrieves a church by ID
// GET /api/churches/{id}
func (h *ChurchHandler) GetChurch(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	church, err := h.churchService.GetChurch(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, church)
}

// UpdateChurch applies a partial update to a church
// PUT /api/churches/{id}
func (h *ChurchHandler) UpdateChurch(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateChurchRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	church, err := h.churchService.UpdateChurch(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, church)
}

// DeleteChurch removes a church
// DELETE /api/churches/{id}
func (h *ChurchHandler) DeleteChurch(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.churchService.DeleteChurch(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
