package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"weddingrsvp/internal/csvutil"
	"weddingrsvp/internal/dashboard"
	"weddingrsvp/internal/models"
	"weddingrsvp/internal/phone"
	"weddingrsvp/internal/repository"
	"weddingrsvp/internal/sms"
	"weddingrsvp/internal/validation"
)

var (
	ErrEmptyOrHeaderOnly      = errors.New("CSV must include a header and at least one row")
	ErrMissingRequiredColumns = errors.New("CSV must contain at least guest_name and phone columns")
	ErrNoValidRows            = errors.New("no valid rows found in CSV")
	ErrInviteNotFound         = errors.New("invite not found")
)

// Header aliases accepted for each logical import column. Matching is
// case-insensitive; name and phone are required, the rest have defaults.
var (
	nameAliases     = []string{"guest_name", "name", "guest", "guestname"}
	phoneAliases    = []string{"phone", "phone_number", "phonenumber", "mobile", "tel"}
	languageAliases = []string{"invite_language", "language", "lang"}
	seatsAliases    = []string{"reserved_seats", "seats", "num_seats"}
)

var seatsPattern = regexp.MustCompile(`^\d+$`)

const exportHeader = "guest_name,phone,invite_language,reserved_seats,invite_url,status,sent_at,opened_at,started_at,responded_at"

// ImportResult summarizes a completed CSV import. Rejected counts the data
// rows dropped for missing a name or phone; they are omissions, not errors.
type ImportResult struct {
	Invites  []models.SMSInvite `json:"invites"`
	Imported int                `json:"imported"`
	Rejected int                `json:"rejected"`
}

// InviteService manages the SMS invite list: CSV import/export, manual
// creation, message sending, and funnel tracking
type InviteService struct {
	inviteRepo  *repository.InviteRepository
	sender      *sms.TwilioSender
	siteBaseURL string
}

// NewInviteService creates a new invite service
func NewInviteService(inviteRepo *repository.InviteRepository, sender *sms.TwilioSender, siteBaseURL string) *InviteService {
	return &InviteService{
		inviteRepo:  inviteRepo,
		sender:      sender,
		siteBaseURL: strings.TrimRight(siteBaseURL, "/"),
	}
}

// BuildImportBatch turns raw CSV text into draft invites ready for a batch
// insert. It performs no I/O: the caller decides whether and how to persist
// the batch. Returns the drafts and the count of silently dropped rows.
func BuildImportBatch(csvText, siteBaseURL string) ([]models.SMSInvite, int, error) {
	lines := csvutil.SplitLines(csvText)
	if len(lines) < 2 {
		return nil, 0, ErrEmptyOrHeaderOnly
	}

	header := csvutil.ParseLine(lines[0])
	for i := range header {
		header[i] = strings.ToLower(header[i])
	}

	nameIdx := resolveColumn(header, nameAliases)
	phoneIdx := resolveColumn(header, phoneAliases)
	languageIdx := resolveColumn(header, languageAliases)
	seatsIdx := resolveColumn(header, seatsAliases)

	if nameIdx < 0 || phoneIdx < 0 {
		return nil, 0, ErrMissingRequiredColumns
	}

	base := strings.TrimRight(siteBaseURL, "/")
	var invites []models.SMSInvite
	rejected := 0
	for _, line := range lines[1:] {
		cells := csvutil.ParseLine(line)

		guestName := cellAt(cells, nameIdx)
		rawPhone := cellAt(cells, phoneIdx)
		if guestName == "" || rawPhone == "" {
			rejected++
			continue
		}

		language := models.ParseLanguage(cellAt(cells, languageIdx))
		seats := parseSeats(cellAt(cells, seatsIdx))
		token := uuid.New().String()

		invites = append(invites, models.SMSInvite{
			GuestName:      guestName,
			Phone:          phone.Normalize(rawPhone, language),
			InviteLanguage: &language,
			ReservedSeats:  &seats,
			InviteToken:    token,
			InviteURL:      fmt.Sprintf("%s/?invite=%s", base, token),
			Status:         models.InviteDraft,
		})
	}

	if len(invites) == 0 {
		return nil, rejected, ErrNoValidRows
	}
	return invites, rejected, nil
}

// ImportCSV builds the invite batch from CSV text and persists it in a
// single transaction
func (s *InviteService) ImportCSV(csvText string) (*ImportResult, error) {
	invites, rejected, err := BuildImportBatch(csvText, s.siteBaseURL)
	if err != nil {
		return nil, err
	}

	if err := s.inviteRepo.InsertBatch(invites); err != nil {
		return nil, fmt.Errorf("failed to save invites: %w", err)
	}

	log.Printf("Imported %d invites (%d rows skipped)", len(invites), rejected)
	return &ImportResult{Invites: invites, Imported: len(invites), Rejected: rejected}, nil
}

// Create adds a single invite from the dashboard form
func (s *InviteService) Create(guestName, rawPhone string, language *models.Language, seats *int, notes *string) (*models.SMSInvite, error) {
	if err := validation.ValidateGuestName(guestName); err != nil {
		return nil, err
	}
	rawPhone = strings.TrimSpace(rawPhone)
	if rawPhone == "" {
		return nil, validation.ValidationError{Field: "phone", Message: "phone is required"}
	}
	if seats != nil {
		if err := validation.ValidateSeats(*seats); err != nil {
			return nil, err
		}
	}

	resolved := models.ResolveLanguage(language)
	token := uuid.New().String()
	invite := &models.SMSInvite{
		GuestName:      strings.TrimSpace(guestName),
		Phone:          phone.Normalize(rawPhone, resolved),
		InviteLanguage: &resolved,
		ReservedSeats:  seats,
		InviteToken:    token,
		InviteURL:      fmt.Sprintf("%s/?invite=%s", s.siteBaseURL, token),
		Status:         models.InviteDraft,
		Notes:          trimOptional(notes),
	}

	if err := s.inviteRepo.Insert(invite); err != nil {
		return nil, fmt.Errorf("failed to save invite: %w", err)
	}
	return invite, nil
}

// List returns all invites, newest first
func (s *InviteService) List() ([]models.SMSInvite, error) {
	invites, err := s.inviteRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	return invites, nil
}

// Stats computes the invite funnel counters
func (s *InviteService) Stats() (dashboard.InviteStats, error) {
	invites, err := s.inviteRepo.List()
	if err != nil {
		return dashboard.InviteStats{}, fmt.Errorf("failed to list invites: %w", err)
	}
	return dashboard.ComputeInviteStats(invites), nil
}

// BuildMessage renders the outbound message text for an invite, for preview
// and clipboard copy. The same renderer feeds Send, so the preview matches
// the delivered text byte for byte.
func (s *InviteService) BuildMessage(id string) (string, error) {
	invite, err := s.inviteRepo.GetByID(id)
	if err != nil {
		return "", fmt.Errorf("failed to get invite: %w", err)
	}
	if invite == nil {
		return "", ErrInviteNotFound
	}
	return sms.BuildInviteText(invite), nil
}

// Send delivers the invite message via Twilio and advances the invite to
// sent. Resending an already-sent invite delivers again without moving the
// funnel backwards.
func (s *InviteService) Send(ctx context.Context, id string) (*models.SMSInvite, error) {
	invite, err := s.inviteRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}
	if invite == nil {
		return nil, ErrInviteNotFound
	}

	body := sms.BuildInviteText(invite)
	sid, err := s.sender.Send(ctx, invite.Phone, body)
	if err != nil {
		return nil, fmt.Errorf("failed to send invite to %s: %w", invite.Phone, err)
	}
	log.Printf("Invite sent: guest=%s sid=%s", invite.GuestName, sid)

	if invite.Status.CanAdvanceTo(models.InviteSent) {
		now := time.Now().UTC()
		if err := s.inviteRepo.UpdateStatus(invite.ID, models.InviteSent, "sent_at", now); err != nil {
			return nil, fmt.Errorf("failed to update invite status: %w", err)
		}
		invite.Status = models.InviteSent
		invite.SentAt = &now
	}
	return invite, nil
}

// Track records a funnel event ("opened" or "started") against an invite
// token. Stale or backwards events are ignored so a re-opened link never
// rewinds the funnel.
func (s *InviteService) Track(token, event string) error {
	var next models.InviteStatus
	var stampColumn string
	switch event {
	case "opened":
		next, stampColumn = models.InviteOpened, "opened_at"
	case "started":
		next, stampColumn = models.InviteStarted, "started_at"
	default:
		return validation.ValidationError{Field: "event", Message: "event must be opened or started"}
	}

	invite, err := s.inviteRepo.GetByToken(token)
	if err != nil {
		return fmt.Errorf("failed to get invite: %w", err)
	}
	if invite == nil {
		return ErrInviteNotFound
	}

	if !invite.Status.CanAdvanceTo(next) {
		return nil
	}
	if err := s.inviteRepo.UpdateStatus(invite.ID, next, stampColumn, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update invite status: %w", err)
	}
	return nil
}

// RecordResponse moves a tokened invite to its terminal branch when the
// guest submits the RSVP form
func (s *InviteService) RecordResponse(token string, attending bool) error {
	invite, err := s.inviteRepo.GetByToken(token)
	if err != nil {
		return fmt.Errorf("failed to get invite: %w", err)
	}
	if invite == nil {
		return ErrInviteNotFound
	}

	next := models.InviteDeclined
	if attending {
		next = models.InviteAccepted
	}
	if !invite.Status.CanAdvanceTo(next) {
		return nil
	}
	if err := s.inviteRepo.UpdateStatus(invite.ID, next, "responded_at", time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update invite status: %w", err)
	}
	return nil
}

// Delete removes one invite
func (s *InviteService) Delete(id string) error {
	if err := s.inviteRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	return nil
}

// DeleteAll clears the invite list
func (s *InviteService) DeleteAll() error {
	if err := s.inviteRepo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to delete invites: %w", err)
	}
	return nil
}

// ExportCSV renders the full invite list in the fixed export layout:
// a plain header line, then one fully quoted row per invite
func (s *InviteService) ExportCSV() (string, error) {
	invites, err := s.inviteRepo.List()
	if err != nil {
		return "", fmt.Errorf("failed to list invites: %w", err)
	}

	lines := make([]string, 0, len(invites)+1)
	lines = append(lines, exportHeader)
	for i := range invites {
		lines = append(lines, csvutil.WriteRow(exportRow(&invites[i])))
	}
	return strings.Join(lines, "\n"), nil
}

// TemplateCSV returns a small sample file showing the import layout
func (s *InviteService) TemplateCSV() string {
	lines := []string{
		"guest_name,phone,invite_language,reserved_seats",
		"Maria Lopez,5541234567,es,2",
		"John Smith,9735550102,en,1",
	}
	return strings.Join(lines, "\n")
}

func exportRow(invite *models.SMSInvite) []string {
	return []string{
		invite.GuestName,
		invite.Phone,
		string(invite.Language()),
		strconv.Itoa(invite.Seats()),
		invite.InviteURL,
		string(invite.Status),
		formatStamp(invite.SentAt),
		formatStamp(invite.OpenedAt),
		formatStamp(invite.StartedAt),
		formatStamp(invite.RespondedAt),
	}
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// resolveColumn finds the index of the first header cell matching any alias
func resolveColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, cell := range header {
			if cell == alias {
				return i
			}
		}
	}
	return -1
}

// cellAt reads a cell by index, tolerating short rows and unresolved columns
func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// parseSeats parses a seat count, defaulting to 1 when absent,
// non-numeric, or zero
func parseSeats(cell string) int {
	if !seatsPattern.MatchString(cell) {
		return 1
	}
	n, err := strconv.Atoi(cell)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
