package academics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankDenseTies(t *testing.T) {
	positions := Rank([]RankEntry{
		{StudentRegNumber: "S1", AverageMark: 90},
		{StudentRegNumber: "S2", AverageMark: 90},
		{StudentRegNumber: "S3", AverageMark: 70},
	})

	require.Len(t, positions, 3)
	assert.Equal(t, 1, positions[0].Position)
	assert.Equal(t, 1, positions[1].Position)
	assert.Equal(t, 2, positions[2].Position)
	assert.Equal(t, "S3", positions[2].StudentRegNumber)
}

func TestRankThreeWay(t *testing.T) {
	positions := Rank([]RankEntry{
		{StudentRegNumber: "S10", AverageMark: 88},
		{StudentRegNumber: "S11", AverageMark: 95},
		{StudentRegNumber: "S12", AverageMark: 95},
	})

	require.Len(t, positions, 3)
	// 95, 95, 88 -> positions 1, 1, 2
	assert.Equal(t, "S11", positions[0].StudentRegNumber)
	assert.Equal(t, 1, positions[0].Position)
	assert.Equal(t, 1, positions[1].Position)
	assert.Equal(t, "S10", positions[2].StudentRegNumber)
	assert.Equal(t, 2, positions[2].Position)
}

func TestRankEmptyCohort(t *testing.T) {
	positions := Rank(nil)
	assert.Empty(t, positions)
	assert.NotNil(t, positions)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	entries := []RankEntry{
		{StudentRegNumber: "S2", AverageMark: 50},
		{StudentRegNumber: "S1", AverageMark: 80},
	}
	Rank(entries)
	assert.Equal(t, "S2", entries[0].StudentRegNumber)
}

func TestPositionFor(t *testing.T) {
	positions := Rank([]RankEntry{
		{StudentRegNumber: "S1", AverageMark: 64},
		{StudentRegNumber: "S2", AverageMark: 82},
	})

	p := PositionFor(positions, "S1")
	require.NotNil(t, p)
	assert.Equal(t, 2, p.Position)
	assert.Equal(t, 64.0, p.AverageMark)

	assert.Nil(t, PositionFor(positions, "S99"))
}
