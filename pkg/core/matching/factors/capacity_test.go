package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carewell/provider-match/pkg/core/matching"
)

func TestCapacityFactor_Name(t *testing.T) {
	assert.Equal(t, "Capacity", NewCapacityFactor(10).Name())
}

func TestCapacityFactor_ScalesWithHeadroom(t *testing.T) {
	factor := NewCapacityFactor(10)
	req := &matching.Request{}

	points, why := factor.Score(req, &matching.Candidate{CapacityTotal: 10, CapacityFilled: 3})
	assert.Equal(t, 7, points)
	assert.Equal(t, "Current availability: 70%", why)

	points, _ = factor.Score(req, &matching.Candidate{CapacityTotal: 10, CapacityFilled: 0})
	assert.Equal(t, 10, points)
}

func TestCapacityFactor_RoundsToNearest(t *testing.T) {
	factor := NewCapacityFactor(10)
	req := &matching.Request{}

	// 1/3 filled -> headroom 0.666... -> 7 points
	points, _ := factor.Score(req, &matching.Candidate{CapacityTotal: 3, CapacityFilled: 1})
	assert.Equal(t, 7, points)
}

func TestCapacityFactor_ZeroTotalTreatedAsFree(t *testing.T) {
	factor := NewCapacityFactor(10)

	points, _ := factor.Score(&matching.Request{}, &matching.Candidate{CapacityTotal: 0})
	assert.Equal(t, 10, points)
}

func TestCapacityFactor_FullLoadAwardsNothing(t *testing.T) {
	factor := NewCapacityFactor(10)

	points, why := factor.Score(&matching.Request{}, &matching.Candidate{CapacityTotal: 10, CapacityFilled: 10})
	assert.Equal(t, 0, points)
	assert.Empty(t, why)
}
