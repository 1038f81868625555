package dashboard

import (
	"testing"

	"weddingrsvp/internal/models"
)

func attending(count int, status models.ReviewStatus) models.RSVPRecord {
	return models.RSVPRecord{Attending: true, GuestCount: count, ReviewStatus: status}
}

func notAttending() models.RSVPRecord {
	return models.RSVPRecord{Attending: false, GuestCount: 2, ReviewStatus: models.ReviewApproved}
}

func TestComputeRSVPStats(t *testing.T) {
	records := []models.RSVPRecord{
		attending(2, models.ReviewApproved),
		attending(3, models.ReviewPending),
		attending(1, models.ReviewNeedsEdit),
		notAttending(),
		notAttending(),
	}

	stats := ComputeRSVPStats(records)

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.Attending != 3 {
		t.Errorf("Attending = %d, want 3", stats.Attending)
	}
	if stats.NotAttending != 2 {
		t.Errorf("NotAttending = %d, want 2", stats.NotAttending)
	}
	// guest counts from non-attending parties are excluded
	if stats.TotalGuests != 6 {
		t.Errorf("TotalGuests = %d, want 6", stats.TotalGuests)
	}
	if stats.PendingReview != 2 {
		t.Errorf("PendingReview = %d, want 2", stats.PendingReview)
	}
}

func TestComputeRSVPStatsEmpty(t *testing.T) {
	stats := ComputeRSVPStats(nil)
	if stats != (RSVPStats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func invitesWithStatuses(statuses ...models.InviteStatus) []models.SMSInvite {
	out := make([]models.SMSInvite, len(statuses))
	for i, s := range statuses {
		out[i] = models.SMSInvite{Status: s}
	}
	return out
}

func TestComputeInviteStats(t *testing.T) {
	invites := invitesWithStatuses(
		models.InviteDraft,
		models.InviteSent,
		models.InviteOpened,
		models.InviteStarted,
		models.InviteAccepted,
		models.InviteDeclined,
	)

	stats := ComputeInviteStats(invites)

	if stats.Total != 6 {
		t.Errorf("Total = %d, want 6", stats.Total)
	}
	if stats.Opened != 4 {
		t.Errorf("Opened = %d, want 4", stats.Opened)
	}
	if stats.Started != 3 {
		t.Errorf("Started = %d, want 3", stats.Started)
	}
	if stats.Accepted != 1 {
		t.Errorf("Accepted = %d, want 1", stats.Accepted)
	}
	if stats.Pending != 5 {
		t.Errorf("Pending = %d, want 5", stats.Pending)
	}
}

func TestComputeInviteStatsFunnelIsMonotone(t *testing.T) {
	// every combination of statuses must satisfy total >= opened >= started >= accepted
	all := []models.InviteStatus{
		models.InviteDraft, models.InviteSent, models.InviteOpened,
		models.InviteStarted, models.InviteAccepted, models.InviteDeclined,
	}

	var invites []models.SMSInvite
	for _, a := range all {
		for _, b := range all {
			invites = append(invites, models.SMSInvite{Status: a}, models.SMSInvite{Status: b})
			stats := ComputeInviteStats(invites)
			if stats.Total < stats.Opened || stats.Opened < stats.Started || stats.Started < stats.Accepted {
				t.Fatalf("funnel not monotone for %+v: %+v", invites, stats)
			}
		}
	}
}
