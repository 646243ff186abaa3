package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatenda10/sms-sub003/app/models"
)

func marks(values ...float64) []*models.PaperMark {
	out := make([]*models.PaperMark, len(values))
	for i, v := range values {
		out[i] = &models.PaperMark{PaperName: "Paper", Mark: v}
	}
	return out
}

func student(reg string) *models.Student {
	return &models.Student{RegNumber: reg, FirstName: "Test", LastName: reg}
}

func testCriteria() []*models.GradingCriterion {
	return []*models.GradingCriterion{
		{Grade: "A", MinMark: 80, MaxMark: 100, Points: 12, IsActive: true},
		{Grade: "B", MinMark: 60, MaxMark: 79, Points: 10, IsActive: true},
	}
}

func TestDeriveRecomputesFromRawMarks(t *testing.T) {
	cw := 60.0
	r := &models.SubjectResult{
		Student:        student("S100"),
		CourseworkMark: &cw,
		PaperMarks:     marks(70, 90),
		// Poisoned derived fields: Derive must overwrite them
		TotalMark: 1,
		Grade:     "Z",
		Points:    99,
	}

	Derive([]*models.SubjectResult{r}, testCriteria())

	assert.Equal(t, 80.0, r.TotalMark)
	assert.Equal(t, "A", r.Grade)
	assert.Equal(t, 12, r.Points)
}

func TestDeriveUnmatchedMark(t *testing.T) {
	r := &models.SubjectResult{Student: student("S1"), PaperMarks: marks(20)}
	Derive([]*models.SubjectResult{r}, testCriteria())

	assert.Equal(t, 20.0, r.TotalMark)
	assert.Equal(t, "N/A", r.Grade)
	assert.Equal(t, 0, r.Points)
}

func TestCohortEntriesAveragesPerStudent(t *testing.T) {
	s1 := student("S1")
	s2 := student("S2")
	cohort := []*models.SubjectResult{
		{Student: s1, PaperMarks: marks(90)},
		{Student: s1, PaperMarks: marks(70)},
		{Student: s2, PaperMarks: marks(65)},
	}
	Derive(cohort, testCriteria())

	entries := CohortEntries(cohort)
	require.Len(t, entries, 2)

	byReg := map[string]float64{}
	for _, e := range entries {
		byReg[e.StudentRegNumber] = e.AverageMark
	}
	assert.Equal(t, 80.0, byReg["S1"])
	assert.Equal(t, 65.0, byReg["S2"])
}

func TestCohortEntriesSkipsDetachedResults(t *testing.T) {
	cohort := []*models.SubjectResult{
		{PaperMarks: marks(50)}, // no student attached
		{Student: student("S1"), PaperMarks: marks(60)},
	}
	Derive(cohort, testCriteria())

	entries := CohortEntries(cohort)
	require.Len(t, entries, 1)
	assert.Equal(t, "S1", entries[0].StudentRegNumber)
}

func TestCohortEntriesEmpty(t *testing.T) {
	assert.Empty(t, CohortEntries(nil))
}
