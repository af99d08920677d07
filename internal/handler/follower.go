package handler

import (
	"log/slog"
	"net/http"

	"pulpit/internal/domain/repositories"
	"pulpit/internal/domain/services"
	"pulpit/internal/httputil"
)

// SpeakerFollowerHandler handles speaker follow HTTP requests
type SpeakerFollowerHandler struct {
	followerService services.SpeakerFollowerService
	logger          *slog.Logger
}

// NewSpeakerFollowerHandler creates a new speaker follower handler
func NewSpeakerFollowerHandler(followerService services.SpeakerFollowerService, logger *slog.Logger) *SpeakerFollowerHandler {
	return &SpeakerFollowerHandler{
		followerService: followerService,
		logger:          logger,
	}
}

// List retrieves speaker follow links
// GET /api/speaker-followers
func (h *SpeakerFollowerHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := followerFilter(w, r, "speaker_id")
	if !ok {
		return
	}

	followers, err := h.followerService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, followers)
}

// Follow creates a speaker follow link
// POST /api/speaker-followers
func (h *SpeakerFollowerHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req services.FollowSpeakerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	follower, err := h.followerService.Follow(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, follower)
}

// Get retrieves a speaker follow link by ID
// GET /api/speaker-followers/{id}
func (h *SpeakerFollowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	follower, err := h.followerService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, follower)
}

// Unfollow removes a speaker follow link
// DELETE /api/speaker-followers/{id}
func (h *SpeakerFollowerHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.followerService.Unfollow(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChurchFollowerHandler handles church follow HTTP requests
type ChurchFollowerHandler struct {
	followerService services.ChurchFollowerService
	logger          *slog.Logger
}

// NewChurchFollowerHandler creates a new church follower handler
func NewChurchFollowerHandler(followerService services.ChurchFollowerService, logger *slog.Logger) *ChurchFollowerHandler {
	return &ChurchFollowerHandler{
		followerService: followerService,
		logger:          logger,
	}
}

// List retrieves church follow links
// GET /api/church-followers
func (h *ChurchFollowerHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := followerFilter(w, r, "church_id")
	if !ok {
		return
	}

	followers, err := h.followerService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, followers)
}

// Follow creates a church follow link
// POST /api/church-followers
func (h *ChurchFollowerHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req services.FollowChurchRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	follower, err := h.followerService.Follow(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, follower)
}

// Get retrieves a church follow link by ID
// GET /api/church-followers/{id}
func (h *ChurchFollowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	follower, err := h.followerService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, follower)
}

// Unfollow removes a church follow link
// DELETE /api/church-followers/{id}
func (h *ChurchFollowerHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.followerService.Unfollow(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// followerFilter parses the shared follower list query parameters. The
// subject key names the followed resource's query parameter.
func followerFilter(w http.ResponseWriter, r *http.Request, subjectKey string) (repositories.FollowerFilter, bool) {
	filter := repositories.FollowerFilter{}
	filter.Skip, filter.Limit = pagination(r)

	subjectID, err := queryInt64(r, subjectKey)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return filter, false
	}
	filter.SubjectID = subjectID

	userID, err := queryInt64(r, "user_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return filter, false
	}
	filter.UserID = userID

	return filter, true
}
