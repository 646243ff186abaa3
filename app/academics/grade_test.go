package academics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatenda10/sms-sub003/app/models"
)

func testCriteria() []*models.GradingCriterion {
	return []*models.GradingCriterion{
		{Grade: "A", MinMark: 80, MaxMark: 100, Points: 12, IsActive: true},
		{Grade: "B", MinMark: 60, MaxMark: 79, Points: 10, IsActive: true},
		{Grade: "C", MinMark: 40, MaxMark: 59, Points: 6, IsActive: true},
	}
}

func TestResolveGrade(t *testing.T) {
	criteria := testCriteria()

	tests := []struct {
		name       string
		mark       float64
		wantGrade  string
		wantPoints int
	}{
		{"lower bound inclusive", 80, "A", 12},
		{"upper bound inclusive", 79, "B", 10},
		{"top mark", 100, "A", 12},
		{"mid band", 45.5, "C", 6},
		{"below all bands", 10, UnmatchedGrade, 0},
		{"above all bands", 150, UnmatchedGrade, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade, points := ResolveGrade(tt.mark, criteria)
			assert.Equal(t, tt.wantGrade, grade)
			assert.Equal(t, tt.wantPoints, points)
		})
	}
}

func TestResolveGradeSkipsInactive(t *testing.T) {
	criteria := []*models.GradingCriterion{
		{Grade: "A*", MinMark: 80, MaxMark: 100, Points: 14, IsActive: false},
		{Grade: "A", MinMark: 80, MaxMark: 100, Points: 12, IsActive: true},
	}

	grade, points := ResolveGrade(90, criteria)
	assert.Equal(t, "A", grade)
	assert.Equal(t, 12, points)
}

func TestResolveGradeEmptyCriteria(t *testing.T) {
	grade, points := ResolveGrade(50, nil)
	assert.Equal(t, UnmatchedGrade, grade)
	assert.Equal(t, 0, points)
}

func TestAggregateThenResolve(t *testing.T) {
	// Student with papers [70, 90] and coursework 60: total 80, grade A, 12 points.
	total := Aggregate(floatPtr(60), []float64{70, 90})
	assert.Equal(t, 80.0, total)

	grade, points := ResolveGrade(total, testCriteria())
	assert.Equal(t, "A", grade)
	assert.Equal(t, 12, points)
}
