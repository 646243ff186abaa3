package academics

import (
	"sort"

	"github.com/tatenda10/sms-sub003/app/models"
)

// RankEntry is one student's aggregated average within a cohort. The caller
// supplies exactly one entry per student; students with no results in the
// cohort are omitted, not ranked last.
type RankEntry struct {
	StudentRegNumber string
	AverageMark      float64
}

// Rank orders entries by average mark descending and assigns dense positions:
// students tied on average share a position and the next distinct average
// gets the previous position plus one. Ties are ordered by reg number so the
// output is deterministic.
func Rank(entries []RankEntry) []*models.CohortPosition {
	positions := make([]*models.CohortPosition, 0, len(entries))
	if len(entries) == 0 {
		return positions
	}

	sorted := make([]RankEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AverageMark != sorted[j].AverageMark {
			return sorted[i].AverageMark > sorted[j].AverageMark
		}
		return sorted[i].StudentRegNumber < sorted[j].StudentRegNumber
	})

	position := 0
	prev := -1.0 // averages are never negative
	for _, e := range sorted {
		if e.AverageMark != prev {
			position++
			prev = e.AverageMark
		}
		positions = append(positions, &models.CohortPosition{
			StudentRegNumber: e.StudentRegNumber,
			Position:         position,
			AverageMark:      e.AverageMark,
		})
	}

	return positions
}

// PositionFor returns the computed position for one student, or nil when the
// student has no entry in the cohort.
func PositionFor(positions []*models.CohortPosition, regNumber string) *models.CohortPosition {
	for _, p := range positions {
		if p.StudentRegNumber == regNumber {
			return p
		}
	}
	return nil
}
