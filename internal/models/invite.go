package models

import "time"

// InviteStatus is a stage in the invite funnel:
// draft -> sent -> opened -> started -> accepted | declined
type InviteStatus string

const (
	InviteDraft    InviteStatus = "draft"
	InviteSent     InviteStatus = "sent"
	InviteOpened   InviteStatus = "opened"
	InviteStarted  InviteStatus = "started"
	InviteAccepted InviteStatus = "accepted"
	InviteDeclined InviteStatus = "declined"
)

// funnelRank orders statuses along the funnel. Accepted and declined share a
// rank: they are alternative terminal branches, not successive stages.
var funnelRank = map[InviteStatus]int{
	InviteDraft:    0,
	InviteSent:     1,
	InviteOpened:   2,
	InviteStarted:  3,
	InviteAccepted: 4,
	InviteDeclined: 4,
}

// IsTerminal reports whether the status is a terminal funnel branch
func (s InviteStatus) IsTerminal() bool {
	return s == InviteAccepted || s == InviteDeclined
}

// WasOpened reports whether the guest has opened the invite link,
// counting every downstream stage as opened
func (s InviteStatus) WasOpened() bool {
	return funnelRank[s] >= funnelRank[InviteOpened]
}

// WasStarted reports whether the guest has started the RSVP form
func (s InviteStatus) WasStarted() bool {
	return funnelRank[s] >= funnelRank[InviteStarted]
}

// CanAdvanceTo reports whether moving from s to next is a forward funnel
// transition. Terminal statuses never change, and equal-rank moves are
// rejected so accepted cannot flip to declined.
func (s InviteStatus) CanAdvanceTo(next InviteStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return funnelRank[next] > funnelRank[s]
}

// SMSInvite represents one outbound SMS invitation and its funnel progress
type SMSInvite struct {
	ID             string       `json:"id"`
	CreatedAt      time.Time    `json:"created_at"`
	GuestName      string       `json:"guest_name"`
	Phone          string       `json:"phone"`
	InviteLanguage *Language    `json:"invite_language"`
	ReservedSeats  *int         `json:"reserved_seats"`
	InviteToken    string       `json:"invite_token"`
	InviteURL      string       `json:"invite_url"`
	Status         InviteStatus `json:"status"`
	SentAt         *time.Time   `json:"sent_at"`
	OpenedAt       *time.Time   `json:"opened_at"`
	StartedAt      *time.Time   `json:"started_at"`
	RespondedAt    *time.Time   `json:"responded_at"`
	Notes          *string      `json:"notes"`
}

// Seats returns the reserved seat count, defaulting to 1 when unset
func (i *SMSInvite) Seats() int {
	if i.ReservedSeats == nil {
		return 1
	}
	return *i.ReservedSeats
}

// Language returns the invite language, defaulting to English when unset
func (i *SMSInvite) Language() Language {
	return ResolveLanguage(i.InviteLanguage)
}
