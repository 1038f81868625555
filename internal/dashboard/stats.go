package dashboard

import "weddingrsvp/internal/models"

// RSVPStats summarizes guest responses for the dashboard header cards
type RSVPStats struct {
	Total         int `json:"total"`
	Attending     int `json:"attending"`
	NotAttending  int `json:"not_attending"`
	TotalGuests   int `json:"total_guests"`
	PendingReview int `json:"pending_review"`
}

// ComputeRSVPStats derives response counters from the full record set.
// TotalGuests sums guest counts over attending parties only.
func ComputeRSVPStats(records []models.RSVPRecord) RSVPStats {
	stats := RSVPStats{Total: len(records)}
	for _, r := range records {
		if r.Attending {
			stats.Attending++
			stats.TotalGuests += r.GuestCount
		}
		if r.ReviewStatus.IsPending() {
			stats.PendingReview++
		}
	}
	stats.NotAttending = stats.Total - stats.Attending
	return stats
}

// InviteStats summarizes invite funnel progress. Each stage count includes
// every downstream stage, so Total >= Opened >= Started >= Accepted always
// holds.
type InviteStats struct {
	Total    int `json:"total"`
	Opened   int `json:"opened"`
	Started  int `json:"started"`
	Accepted int `json:"accepted"`
	Pending  int `json:"pending"`
}

// ComputeInviteStats derives funnel counters from the full invite set
func ComputeInviteStats(invites []models.SMSInvite) InviteStats {
	stats := InviteStats{Total: len(invites)}
	for _, inv := range invites {
		if inv.Status.WasOpened() {
			stats.Opened++
		}
		if inv.Status.WasStarted() {
			stats.Started++
		}
		if inv.Status == models.InviteAccepted {
			stats.Accepted++
		}
	}
	stats.Pending = stats.Total - stats.Accepted
	return stats
}
