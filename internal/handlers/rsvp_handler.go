package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"weddingrsvp/internal/service"
	"weddingrsvp/internal/validation"
)

// RSVPHandler serves the public RSVP form endpoint and the dashboard's
// moderation endpoints
type RSVPHandler struct {
	rsvpService *service.RSVPService
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(rsvpService *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService}
}

// Submit accepts a guest form submission (public endpoint)
func (h *RSVPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub service.RSVPSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	record, err := h.rsvpService.Submit(r.Context(), sub)
	if err != nil {
		var verr validation.ValidationError
		if errors.As(err, &verr) {
			respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to save RSVP", "RSVP submit error", err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// List returns all submissions, pending-review ones first
func (h *RSVPHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.rsvpService.ListForReview()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load RSVPs", "RSVP list error", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// Stats returns the dashboard response counters
func (h *RSVPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rsvpService.Stats()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute stats", "RSVP stats error", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Approve marks a flagged submission as reviewed and approved
func (h *RSVPHandler) Approve(w http.ResponseWriter, r *http.Request) {
	record, err := h.rsvpService.Approve(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrRSVPNotFound) {
			respondWithError(w, http.StatusNotFound, "RSVP not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to approve RSVP", "RSVP approve error", err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// Update applies operator edits to a submission and approves it
func (h *RSVPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var sub service.RSVPSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	record, err := h.rsvpService.EditAndApprove(r.PathValue("id"), sub)
	if err != nil {
		if errors.Is(err, service.ErrRSVPNotFound) {
			respondWithError(w, http.StatusNotFound, "RSVP not found", "", nil)
			return
		}
		var verr validation.ValidationError
		if errors.As(err, &verr) {
			respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to update RSVP", "RSVP update error", err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// Delete removes a submission
func (h *RSVPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.rsvpService.Delete(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete RSVP", "RSVP delete error", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
