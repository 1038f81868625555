package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
)

const inviteColumns = `id, created_at, guest_name, phone, invite_language, reserved_seats,
	invite_token, invite_url, status, sent_at, opened_at, started_at, responded_at, notes`

type InviteRepository struct {
	db *database.DB
}

func NewInviteRepository(db *database.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Insert persists a single invite, assigning its ID and timestamp
func (r *InviteRepository) Insert(invite *models.SMSInvite) error {
	prepareInvite(invite)
	_, err := r.db.Exec(insertInviteQuery(), insertInviteArgs(invite)...)
	return err
}

// InsertBatch persists a set of invites in one transaction, so a CSV import
// either lands completely or not at all
func (r *InviteRepository) InsertBatch(invites []models.SMSInvite) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := r.db.Dialect.RewriteQuery(insertInviteQuery())
	for i := range invites {
		prepareInvite(&invites[i])
		if _, err := tx.Exec(query, insertInviteArgs(&invites[i])...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert invite for %s: %w", invites[i].GuestName, err)
		}
	}

	return tx.Commit()
}

// GetByID retrieves one invite, or nil if not found
func (r *InviteRepository) GetByID(id string) (*models.SMSInvite, error) {
	row := r.db.QueryRow(`SELECT `+inviteColumns+` FROM sms_invites WHERE id = ?`, id)
	return scanInviteRow(row)
}

// GetByToken retrieves one invite by its unique token, or nil if not found
func (r *InviteRepository) GetByToken(token string) (*models.SMSInvite, error) {
	row := r.db.QueryRow(`SELECT `+inviteColumns+` FROM sms_invites WHERE invite_token = ?`, token)
	return scanInviteRow(row)
}

// List retrieves all invites, newest first
func (r *InviteRepository) List() ([]models.SMSInvite, error) {
	rows, err := r.db.Query(`SELECT ` + inviteColumns + ` FROM sms_invites ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []models.SMSInvite
	for rows.Next() {
		invite, err := scanInvite(rows.Scan)
		if err != nil {
			return nil, err
		}
		invites = append(invites, *invite)
	}
	return invites, rows.Err()
}

// UpdateStatus moves an invite to a new funnel status and stamps the
// matching timestamp column when one is given
func (r *InviteRepository) UpdateStatus(id string, status models.InviteStatus, stampColumn string, stamp time.Time) error {
	if stampColumn == "" {
		_, err := r.db.Exec(`UPDATE sms_invites SET status = ? WHERE id = ?`, string(status), id)
		return err
	}

	// stampColumn comes from a fixed internal set, never from user input
	query := fmt.Sprintf(`UPDATE sms_invites SET status = ?, %s = ? WHERE id = ?`, stampColumn)
	_, err := r.db.Exec(query, string(status), stamp, id)
	return err
}

// Delete removes one invite
func (r *InviteRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM sms_invites WHERE id = ?`, id)
	return err
}

// DeleteAll removes every invite (bulk reset from the dashboard)
func (r *InviteRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM sms_invites`)
	return err
}

func prepareInvite(invite *models.SMSInvite) {
	if invite.ID == "" {
		invite.ID = uuid.New().String()
	}
	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now().UTC()
	}
	if invite.Status == "" {
		invite.Status = models.InviteDraft
	}
}

func insertInviteQuery() string {
	return `INSERT INTO sms_invites (` + inviteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
}

func insertInviteArgs(invite *models.SMSInvite) []interface{} {
	var language *string
	if invite.InviteLanguage != nil {
		l := string(*invite.InviteLanguage)
		language = &l
	}
	return []interface{}{
		invite.ID, invite.CreatedAt, invite.GuestName, invite.Phone,
		nullString(language), nullInt(invite.ReservedSeats), invite.InviteToken,
		invite.InviteURL, string(invite.Status), nullTime(invite.SentAt),
		nullTime(invite.OpenedAt), nullTime(invite.StartedAt),
		nullTime(invite.RespondedAt), nullString(invite.Notes),
	}
}

func scanInviteRow(row *sql.Row) (*models.SMSInvite, error) {
	invite, err := scanInvite(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return invite, nil
}

func scanInvite(scan func(dest ...interface{}) error) (*models.SMSInvite, error) {
	var invite models.SMSInvite
	var status string
	var language, notes sql.NullString
	var seats sql.NullInt64
	var sentAt, openedAt, startedAt, respondedAt sql.NullTime

	err := scan(&invite.ID, &invite.CreatedAt, &invite.GuestName, &invite.Phone,
		&language, &seats, &invite.InviteToken, &invite.InviteURL, &status,
		&sentAt, &openedAt, &startedAt, &respondedAt, &notes)
	if err != nil {
		return nil, err
	}

	invite.Status = models.InviteStatus(status)
	if language.Valid {
		l := models.Language(language.String)
		invite.InviteLanguage = &l
	}
	invite.ReservedSeats = intPtr(seats)
	invite.SentAt = timePtr(sentAt)
	invite.OpenedAt = timePtr(openedAt)
	invite.StartedAt = timePtr(startedAt)
	invite.RespondedAt = timePtr(respondedAt)
	invite.Notes = stringPtr(notes)

	return &invite, nil
}
