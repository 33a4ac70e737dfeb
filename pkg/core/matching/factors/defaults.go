package factors

import (
	"github.com/carewell/provider-match/pkg/core/matching"
)

// Weights configures the points each factor can award
type Weights struct {
	Language     int
	AgeFull      int
	AgePartial   int
	Availability int
	Capacity     int
}

// DefaultWeights returns the standard 40/30(10)/20/10 split
func DefaultWeights() Weights {
	return Weights{
		Language:     matching.DefaultLanguagePoints,
		AgeFull:      matching.DefaultAgeFullPoints,
		AgePartial:   matching.DefaultAgePartialPoints,
		Availability: matching.DefaultAvailabilityPoints,
		Capacity:     matching.DefaultCapacityPoints,
	}
}

// Set builds the factor list in rationale order from the given weights
func Set(w Weights) []matching.Factor {
	return []matching.Factor{
		NewLanguageFactor(w.Language),
		NewAgeRangeFactor(w.AgeFull, w.AgePartial),
		NewAvailabilityFactor(w.Availability),
		NewCapacityFactor(w.Capacity),
	}
}

// DefaultSet builds the factor list with the default weights
func DefaultSet() []matching.Factor {
	return Set(DefaultWeights())
}
