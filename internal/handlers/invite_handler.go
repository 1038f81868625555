package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"weddingrsvp/internal/models"
	"weddingrsvp/internal/service"
	"weddingrsvp/internal/sms"
	"weddingrsvp/internal/validation"
)

// Import uploads are small guest lists; anything bigger is a mistake.
const maxImportBytes = 1 << 20

// InviteHandler serves the dashboard's invite management endpoints
type InviteHandler struct {
	inviteService *service.InviteService
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteService *service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

type createInviteRequest struct {
	GuestName      string           `json:"guest_name"`
	Phone          string           `json:"phone"`
	InviteLanguage *models.Language `json:"invite_language"`
	ReservedSeats  *int             `json:"reserved_seats"`
	Notes          *string          `json:"notes"`
}

// List returns all invites, newest first
func (h *InviteHandler) List(w http.ResponseWriter, r *http.Request) {
	invites, err := h.inviteService.List()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load invites", "Invite list error", err)
		return
	}
	respondJSON(w, http.StatusOK, invites)
}

// Create adds a single invite from the dashboard form
func (h *InviteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	invite, err := h.inviteService.Create(req.GuestName, req.Phone, req.InviteLanguage, req.ReservedSeats, req.Notes)
	if err != nil {
		var verr validation.ValidationError
		if errors.As(err, &verr) {
			respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create invite", "Invite create error", err)
		return
	}
	respondJSON(w, http.StatusCreated, invite)
}

// Import accepts raw CSV text and imports it as draft invites
func (h *InviteHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read CSV body", "", err)
		return
	}

	result, err := h.inviteService.ImportCSV(string(body))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrHeaderOnly),
			errors.Is(err, service.ErrMissingRequiredColumns),
			errors.Is(err, service.ErrNoValidRows):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to import invites", "Invite import error", err)
		}
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// Stats returns the invite funnel counters
func (h *InviteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.inviteService.Stats()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute stats", "Invite stats error", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Message returns the rendered invite text for preview and clipboard copy
func (h *InviteHandler) Message(w http.ResponseWriter, r *http.Request) {
	text, err := h.inviteService.BuildMessage(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrInviteNotFound) {
			respondWithError(w, http.StatusNotFound, "Invite not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to build message", "Invite message error", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": text})
}

// Send delivers the invite message via SMS
func (h *InviteHandler) Send(w http.ResponseWriter, r *http.Request) {
	invite, err := h.inviteService.Send(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			respondWithError(w, http.StatusNotFound, "Invite not found", "", nil)
		case errors.Is(err, sms.ErrSenderDisabled):
			respondWithError(w, http.StatusBadRequest, "SMS sending is not configured", "", nil)
		default:
			respondWithError(w, http.StatusBadGateway, "Failed to send invite", "Invite send error", err)
		}
		return
	}
	respondJSON(w, http.StatusOK, invite)
}

// Delete removes one invite
func (h *InviteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inviteService.Delete(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete invite", "Invite delete error", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// DeleteAll clears the invite list
func (h *InviteHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.inviteService.DeleteAll(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete invites", "Invite delete-all error", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Export streams the invite list as a CSV download
func (h *InviteHandler) Export(w http.ResponseWriter, r *http.Request) {
	csv, err := h.inviteService.ExportCSV()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export invites", "Invite export error", err)
		return
	}
	serveCSV(w, "sms_invites_export.csv", csv)
}

// Template serves a sample CSV showing the import layout
func (h *InviteHandler) Template(w http.ResponseWriter, r *http.Request) {
	serveCSV(w, "sms_invites_template.csv", h.inviteService.TemplateCSV())
}

func serveCSV(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
