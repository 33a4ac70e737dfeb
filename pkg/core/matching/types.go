package matching

import (
	"strings"

	"github.com/carewell/provider-match/pkg/core/availability"
)

// Candidate is a provider being evaluated for a match. It carries the
// provider's static attributes plus its stored availability windows; the
// engine reads it as a consistent snapshot and never mutates it.
type Candidate struct {
	ID          string
	Name        string
	Languages   []string
	Specialties []string

	// AgeMin and AgeMax bound the grades/ages the provider serves, inclusive
	AgeMin int
	AgeMax int

	CapacityTotal  int
	CapacityFilled int

	Windows []*availability.Window
}

// RemainingCapacity returns how many more placements the candidate can take
func (c *Candidate) RemainingCapacity() int {
	return c.CapacityTotal - c.CapacityFilled
}

// CurrentLoad returns the filled fraction of the candidate's capacity,
// 0.0 when no capacity is configured
func (c *Candidate) CurrentLoad() float64 {
	if c.CapacityTotal == 0 {
		return 0
	}
	return float64(c.CapacityFilled) / float64(c.CapacityTotal)
}

// SpeaksLanguage reports whether the candidate supports the given language
// (case-insensitive)
func (c *Candidate) SpeaksLanguage(language string) bool {
	for _, l := range c.Languages {
		if strings.EqualFold(l, language) {
			return true
		}
	}
	return false
}

// ServesAge reports whether the given grade/age falls within the candidate's
// range, inclusive of both bounds
func (c *Candidate) ServesAge(age int) bool {
	return age >= c.AgeMin && age <= c.AgeMax
}

// Request describes the appointment being matched: the family's requested
// window plus the attributes scoring needs.
type Request struct {
	// Window is the requested availability window: date range, timezone, and
	// the day/time blocks the family asked for
	Window *availability.Window `validate:"required"`

	// TargetLanguage is the language the appointment should be held in
	// (defaults to the family's primary language upstream)
	TargetLanguage string

	// RequesterAge is the grade or age of the child the appointment is for
	RequesterAge int `validate:"min=0"`
}

// MatchResult is one ranked candidate with its score and the human-readable
// rationale for each scoring contribution, in factor order.
type MatchResult struct {
	CandidateID   string
	CandidateName string
	Score         int
	Rationale     []string
}

// Factor scores one dimension of candidate fit against a request.
// Implementations are pure: same inputs, same points.
type Factor interface {
	// Name returns a human-readable identifier for this factor
	Name() string

	// Score returns the points awarded and a rationale string for display.
	// The rationale is empty when no points are awarded.
	Score(req *Request, cand *Candidate) (int, string)
}
