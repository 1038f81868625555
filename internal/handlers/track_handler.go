package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"weddingrsvp/internal/service"
	"weddingrsvp/internal/validation"
)

// TrackHandler records invite funnel events from the public site. The
// invitation page fires "opened" on load and "started" when the guest
// begins the RSVP form.
type TrackHandler struct {
	inviteService *service.InviteService
}

// NewTrackHandler creates a new tracking handler
func NewTrackHandler(inviteService *service.InviteService) *TrackHandler {
	return &TrackHandler{inviteService: inviteService}
}

type trackRequest struct {
	Token string `json:"token"`
}

// Track records an opened or started event against an invite token. The
// event name comes from the route path. Unknown tokens return 404 so the
// page can fall back to the plain (uninvited) flow; stale events succeed
// as no-ops.
func (h *TrackHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Token == "" {
		respondWithError(w, http.StatusBadRequest, "Missing invite token", "", nil)
		return
	}

	if err := h.inviteService.Track(req.Token, r.PathValue("event")); err != nil {
		var verr validation.ValidationError
		if errors.As(err, &verr) {
			respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
			return
		}
		if errors.Is(err, service.ErrInviteNotFound) {
			respondWithError(w, http.StatusNotFound, "Invite not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to record event", "Track error", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
