package academics

import "github.com/tatenda10/sms-sub003/app/models"

// UnmatchedGrade is returned when no active criterion covers a mark.
const UnmatchedGrade = "N/A"

// ResolveGrade maps a total mark to a grade label and point value using the
// first active criterion whose inclusive range covers the mark. Admin config
// is trusted to keep active ranges non-overlapping; if nothing matches the
// mark resolves to UnmatchedGrade with 0 points rather than an error.
func ResolveGrade(totalMark float64, criteria []*models.GradingCriterion) (string, int) {
	for _, c := range criteria {
		if !c.IsActive {
			continue
		}
		if c.Matches(totalMark) {
			return c.Grade, c.Points
		}
	}
	return UnmatchedGrade, 0
}
