package factors

import (
	"fmt"

	"github.com/carewell/provider-match/pkg/core/matching"
)

// AgeRangeFactor awards full credit when the requester's grade/age falls
// inside the candidate's served range (inclusive of both bounds) and partial
// credit otherwise. Every candidate earns at least the partial points, so an
// out-of-range provider can still surface when nothing better exists.
type AgeRangeFactor struct {
	fullPoints    int
	partialPoints int
}

// NewAgeRangeFactor creates an AgeRangeFactor with full and partial awards
func NewAgeRangeFactor(fullPoints, partialPoints int) *AgeRangeFactor {
	return &AgeRangeFactor{fullPoints: fullPoints, partialPoints: partialPoints}
}

func (f *AgeRangeFactor) Name() string {
	return "AgeRange"
}

func (f *AgeRangeFactor) Score(req *matching.Request, cand *matching.Candidate) (int, string) {
	if cand.ServesAge(req.RequesterAge) {
		return f.fullPoints, fmt.Sprintf("Age-appropriate: Grade %d within range", req.RequesterAge)
	}
	return f.partialPoints, fmt.Sprintf("Partial age fit: Grade %d outside preferred range", req.RequesterAge)
}
