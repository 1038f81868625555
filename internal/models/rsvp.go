package models

import (
	"strings"
	"time"
)

// Language is the guest-facing language for a record or invite
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// ParseLanguage normalizes a free-text language cell to a Language.
// Accepts "es"/"sp" (case-insensitive) as Spanish; everything else is English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "es", "sp":
		return LanguageSpanish
	default:
		return LanguageEnglish
	}
}

// ResolveLanguage returns the language for a nullable field, defaulting to English
func ResolveLanguage(l *Language) Language {
	if l == nil {
		return LanguageEnglish
	}
	return *l
}

// ReviewStatus is the moderation state of an RSVP record
type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "pending_review"
	ReviewNeedsEdit ReviewStatus = "needs_edit"
	ReviewApproved  ReviewStatus = "approved"
)

// IsPending reports whether the record still needs operator attention
func (s ReviewStatus) IsPending() bool {
	return s == ReviewPending || s == ReviewNeedsEdit
}

// RSVPRecord represents one guest party's response
type RSVPRecord struct {
	ID               string       `json:"id"`
	CreatedAt        time.Time    `json:"created_at"`
	Name             string       `json:"name"`
	Email            *string      `json:"email"`
	Language         Language     `json:"language"`
	Attending        bool         `json:"attending"`
	GuestCount       int          `json:"guest_count"`
	PlusOneName      *string      `json:"plus_one_name"`
	Phone            *string      `json:"phone"`
	ArrivalAirport   *string      `json:"arrival_airport"`
	Hotel            *string      `json:"hotel"`
	AllergiesNotes   *string      `json:"allergies_notes"`
	TransportNeeded  *bool        `json:"transport_needed"`
	KidsFoodRequired *bool        `json:"kids_food_required"`
	BringingChildren *bool        `json:"bringing_children"`
	ChildrenCount    *int         `json:"children_count"`
	InviteToken      *string      `json:"invite_token"`
	DuplicateFlag    bool         `json:"duplicate_flag"`
	DuplicateReason  *string      `json:"duplicate_reason"`
	ReviewStatus     ReviewStatus `json:"review_status"`
}
