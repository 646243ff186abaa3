package academics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestAggregate(t *testing.T) {
	tests := []struct {
		name       string
		coursework *float64
		papers     []float64
		want       float64
	}{
		{"two papers", floatPtr(60), []float64{70, 90}, 80},
		{"zero paper excluded", floatPtr(50), []float64{0, 80}, 80},
		{"all zero papers", nil, []float64{0, 0}, 0},
		{"no papers", nil, nil, 0},
		{"single paper", nil, []float64{73}, 73},
		{"rounded to 2dp", nil, []float64{70, 70, 71}, 70.33},
		{"coursework not blended", floatPtr(100), []float64{40, 60}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.coursework, tt.papers))
		})
	}
}

func TestAggregateIdempotent(t *testing.T) {
	papers := []float64{55.5, 0, 62.25}
	first := Aggregate(nil, papers)
	second := Aggregate(nil, papers)
	assert.Equal(t, first, second)
}
