package matching

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest is returned when a match request is missing required
// fields; no scoring is attempted and no partial results are returned
var ErrInvalidRequest = errors.New("invalid match request")

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Rank selects and orders the best candidates for a request:
// capacity filter, score every survivor, sort descending by score, truncate
// to limit (DefaultLimit when limit <= 0). The sort is stable, so candidates
// with equal scores keep their original relative order; given the same
// inputs the ranking is reproducible. An empty candidate pool, or one that
// yields no eligible candidates, returns an empty list, not an error.
func Rank(req *Request, candidates []*Candidate, limit int, factors []Factor) ([]MatchResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	eligible := FilterByCapacity(candidates)

	results := make([]MatchResult, 0, len(eligible))
	for _, cand := range eligible {
		total, rationale := Score(req, cand, factors)
		results = append(results, MatchResult{
			CandidateID:   cand.ID,
			CandidateName: cand.Name,
			Score:         total,
			Rationale:     rationale,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// validateRequest rejects requests missing the day/time window entirely
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !req.Window.HasBlocks() {
		return fmt.Errorf("%w: requested window has no day/time blocks", ErrInvalidRequest)
	}
	return nil
}
