// Package dashboard holds the pure in-memory helpers behind the operator
// dashboard: review ordering and summary counters. Everything here works on
// caller-supplied slices and never touches the database.
package dashboard

import (
	"sort"

	"weddingrsvp/internal/models"
)

// SortForReview returns a new slice with review-pending records first.
// The sort is stable and only compares pending-vs-not, so within each
// partition the original order is preserved. The input is not mutated.
func SortForReview(records []models.RSVPRecord) []models.RSVPRecord {
	sorted := make([]models.RSVPRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReviewStatus.IsPending() && !sorted[j].ReviewStatus.IsPending()
	})

	return sorted
}
