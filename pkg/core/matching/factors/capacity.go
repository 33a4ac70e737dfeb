package factors

import (
	"fmt"
	"math"

	"github.com/carewell/provider-match/pkg/core/matching"
)

// CapacityFactor awards points proportional to the candidate's remaining
// headroom: round((1 - current_load) * maxPoints). A provider with zero
// configured capacity is treated as fully free; providers with no remaining
// capacity never reach scoring because the hard capacity filter runs first.
type CapacityFactor struct {
	maxPoints int
}

// NewCapacityFactor creates a CapacityFactor with the given maximum award
func NewCapacityFactor(maxPoints int) *CapacityFactor {
	return &CapacityFactor{maxPoints: maxPoints}
}

func (f *CapacityFactor) Name() string {
	return "Capacity"
}

func (f *CapacityFactor) Score(req *matching.Request, cand *matching.Candidate) (int, string) {
	headroom := 1 - cand.CurrentLoad()
	points := int(math.Round(headroom * float64(f.maxPoints)))
	if points == 0 {
		return 0, ""
	}
	return points, fmt.Sprintf("Current availability: %d%%", int(math.Round(headroom*100)))
}
