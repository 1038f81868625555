package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
)

const rsvpColumns = `id, created_at, name, email, language, attending, guest_count,
	plus_one_name, phone, arrival_airport, hotel, allergies_notes, transport_needed,
	kids_food_required, bringing_children, children_count, invite_token,
	duplicate_flag, duplicate_reason, review_status`

type RSVPRepository struct {
	db *database.DB
}

func NewRSVPRepository(db *database.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Insert persists a new RSVP record, assigning its ID and timestamp
func (r *RSVPRepository) Insert(record *models.RSVPRecord) error {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	query := `INSERT INTO rsvps (` + rsvpColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		record.ID, record.CreatedAt, record.Name, nullString(record.Email),
		string(record.Language), record.Attending, record.GuestCount,
		nullString(record.PlusOneName), nullString(record.Phone),
		nullString(record.ArrivalAirport), nullString(record.Hotel),
		nullString(record.AllergiesNotes), nullBool(record.TransportNeeded),
		nullBool(record.KidsFoodRequired), nullBool(record.BringingChildren),
		nullInt(record.ChildrenCount), nullString(record.InviteToken),
		record.DuplicateFlag, nullString(record.DuplicateReason),
		string(record.ReviewStatus))
	return err
}

// GetByID retrieves one RSVP record, or nil if not found
func (r *RSVPRepository) GetByID(id string) (*models.RSVPRecord, error) {
	row := r.db.QueryRow(`SELECT `+rsvpColumns+` FROM rsvps WHERE id = ?`, id)
	record, err := scanRSVP(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List retrieves all RSVP records, newest first
func (r *RSVPRepository) List() ([]models.RSVPRecord, error) {
	rows, err := r.db.Query(`SELECT ` + rsvpColumns + ` FROM rsvps ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.RSVPRecord
	for rows.Next() {
		record, err := scanRSVP(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// CountMatching counts existing records sharing an email or phone, whatever
// their review status; used for duplicate detection on new submissions
func (r *RSVPRepository) CountMatching(email, phone *string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM rsvps
		WHERE (email IS NOT NULL AND email = ?) OR (phone IS NOT NULL AND phone = ?)`
	err := r.db.QueryRow(query, nullString(email), nullString(phone)).Scan(&count)
	return count, err
}

// Update rewrites the mutable fields of an RSVP record
func (r *RSVPRepository) Update(record *models.RSVPRecord) error {
	query := `UPDATE rsvps SET name = ?, email = ?, language = ?, attending = ?,
		guest_count = ?, plus_one_name = ?, phone = ?, arrival_airport = ?, hotel = ?,
		allergies_notes = ?, transport_needed = ?, kids_food_required = ?,
		bringing_children = ?, children_count = ?, duplicate_flag = ?,
		duplicate_reason = ?, review_status = ?
		WHERE id = ?`
	_, err := r.db.Exec(query,
		record.Name, nullString(record.Email), string(record.Language),
		record.Attending, record.GuestCount, nullString(record.PlusOneName),
		nullString(record.Phone), nullString(record.ArrivalAirport),
		nullString(record.Hotel), nullString(record.AllergiesNotes),
		nullBool(record.TransportNeeded), nullBool(record.KidsFoodRequired),
		nullBool(record.BringingChildren), nullInt(record.ChildrenCount),
		record.DuplicateFlag, nullString(record.DuplicateReason),
		string(record.ReviewStatus), record.ID)
	return err
}

// Delete removes one RSVP record
func (r *RSVPRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM rsvps WHERE id = ?`, id)
	return err
}

// scanRSVP reads one row using the rsvpColumns order
func scanRSVP(scan func(dest ...interface{}) error) (*models.RSVPRecord, error) {
	var record models.RSVPRecord
	var language, reviewStatus string
	var email, plusOne, phone, airport, hotel, notes, inviteToken, dupReason sql.NullString
	var transport, kidsFood, bringingChildren sql.NullBool
	var childrenCount sql.NullInt64

	err := scan(&record.ID, &record.CreatedAt, &record.Name, &email, &language,
		&record.Attending, &record.GuestCount, &plusOne, &phone, &airport, &hotel,
		&notes, &transport, &kidsFood, &bringingChildren, &childrenCount,
		&inviteToken, &record.DuplicateFlag, &dupReason, &reviewStatus)
	if err != nil {
		return nil, err
	}

	record.Language = models.Language(language)
	record.ReviewStatus = models.ReviewStatus(reviewStatus)
	record.Email = stringPtr(email)
	record.PlusOneName = stringPtr(plusOne)
	record.Phone = stringPtr(phone)
	record.ArrivalAirport = stringPtr(airport)
	record.Hotel = stringPtr(hotel)
	record.AllergiesNotes = stringPtr(notes)
	record.TransportNeeded = boolPtr(transport)
	record.KidsFoodRequired = boolPtr(kidsFood)
	record.BringingChildren = boolPtr(bringingChildren)
	record.ChildrenCount = intPtr(childrenCount)
	record.InviteToken = stringPtr(inviteToken)
	record.DuplicateReason = stringPtr(dupReason)

	return &record, nil
}
