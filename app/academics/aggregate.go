package academics

import "math"

// Aggregate computes the total mark for a subject from its paper marks.
// Only strictly positive paper marks count towards the average: a zero or
// missing paper entry means "not sat / not captured", not a failing score.
// The coursework mark is recorded and displayed alongside the total but is
// not blended into it.
func Aggregate(courseworkMark *float64, paperMarks []float64) float64 {
	_ = courseworkMark // display-only, see note above

	var sum float64
	var count int
	for _, m := range paperMarks {
		if m > 0 {
			sum += m
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return math.Round(sum/float64(count)*100) / 100
}
