package handler

import (
	"log/slog"
	"net/http"

	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
	"pulpit/internal/httputil"
)

// FeaturedSermonHandler handles church featured-shelf HTTP requests
type FeaturedSermonHandler struct {
	featuredService services.FeaturedSermonService
	logger          *slog.Logger
}

// NewFeaturedSermonHandler creates a new featured sermon handler
func NewFeaturedSermonHandler(featuredService services.FeaturedSermonService, logger *slog.Logger) *FeaturedSermonHandler {
	return &FeaturedSermonHandler{
		featuredService: featuredService,
		logger:          logger,
	}
}

// List retrieves featured sermons across churches. Only active rows are
// returned unless is_active is given explicitly.
// GET /api/featured-sermons
func (h *FeaturedSermonHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.FeaturedSermonFilter{}
	filter.Skip, filter.Limit = pagination(r)

	churchID, err := queryInt64(r, "church_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.ChurchID = churchID

	if err := h.applyActiveFilter(r, &filter); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	featureds, err := h.featuredService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, featureds)
}

// ListForChurch retrieves one church's featured shelf
// GET /api/churches/{id}/featured-sermons
func (h *FeaturedSermonHandler) ListForChurch(w http.ResponseWriter, r *http.Request) {
	churchID, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := repositories.FeaturedSermonFilter{ChurchID: &churchID}
	filter.Skip, filter.Limit = pagination(r)

	if err := h.applyActiveFilter(r, &filter); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	featureds, err := h.featuredService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, featureds)
}

// Create features a sermon for the church in the route
// POST /api/churches/{id}/featured-sermons
func (h *FeaturedSermonHandler) Create(w http.ResponseWriter, r *http.Request) {
	churchID, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.CreateFeaturedSermonRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ChurchID != 0 && req.ChurchID != churchID {
		httputil.RespondError(w, http.StatusBadRequest, "church_id does not match the route")
		return
	}
	req.ChurchID = churchID

	featured, err := h.featuredService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, featured)
}

// Get retrieves a featured sermon by ID
// GET /api/featured-sermons/{id}
func (h *FeaturedSermonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	featured, err := h.featuredService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, featured)
}

// Update reorders or toggles a featured sermon
// PUT /api/featured-sermons/{id}
func (h *FeaturedSermonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateFeaturedSermonRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	featured, err := h.featuredService.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, featured)
}

// Delete removes a sermon from a church's featured shelf
// DELETE /api/featured-sermons/{id}
func (h *FeaturedSermonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.featuredService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// applyActiveFilter defaults is_active to true when the query string
// leaves it out. Pass is_active=false to read the hidden rows.
func (h *FeaturedSermonHandler) applyActiveFilter(r *http.Request, filter *repositories.FeaturedSermonFilter) error {
	isActive, err := queryBool(r, "is_active")
	if err != nil {
		return err
	}
	if isActive == nil {
		active := true
		isActive = &active
	}
	filter.IsActive = isActive
	return nil
}
