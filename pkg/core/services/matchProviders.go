package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/carewell/provider-match/pkg/core/availability"
	"github.com/carewell/provider-match/pkg/core/matching"
	"github.com/carewell/provider-match/pkg/core/matching/factors"
	"github.com/carewell/provider-match/pkg/db"
)

// MatchRequest carries the caller-supplied matching inputs
type MatchRequest struct {
	// Window is the family's requested availability window
	Window *availability.Window

	// TargetLanguage is the language the appointment should be held in
	TargetLanguage string

	// RequesterGrade is the grade or age of the child
	RequesterGrade int

	// Limit caps the number of returned matches (0 uses the default)
	Limit int

	// Factors overrides the scoring factor set (nil uses the defaults)
	Factors []matching.Factor
}

// MatchProviders fetches the provider directory, builds a candidate per
// provider from its stored availability windows, and returns the ranked
// matches. Malformed stored windows are skipped with a warning rather than
// failing the whole match.
func MatchProviders(ctx context.Context, directory db.Directory, logger *zap.Logger, req MatchRequest) ([]matching.MatchResult, error) {
	logger.Debug("Matching providers",
		zap.String("target_language", req.TargetLanguage),
		zap.Int("requester_grade", req.RequesterGrade),
		zap.Int("limit", req.Limit))

	providers, err := directory.GetProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch providers: %w", err)
	}

	logger.Debug("Found providers", zap.Int("count", len(providers)))

	candidates := make([]*matching.Candidate, 0, len(providers))
	for _, p := range providers {
		records, err := directory.GetAvailabilityWindows(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch availability for provider %s: %w", p.ID, err)
		}

		windows := make([]*availability.Window, 0, len(records))
		for _, rec := range records {
			w, err := windowFromRecord(rec)
			if err != nil {
				logger.Warn("Skipping malformed availability window",
					zap.String("window_id", rec.ID),
					zap.String("provider_id", p.ID),
					zap.Error(err))
				continue
			}
			windows = append(windows, w)
		}

		candidates = append(candidates, &matching.Candidate{
			ID:             p.ID,
			Name:           p.Name,
			Languages:      p.Languages,
			Specialties:    p.Specialties,
			AgeMin:         p.AgeMin,
			AgeMax:         p.AgeMax,
			CapacityTotal:  p.CapacityTotal,
			CapacityFilled: p.CapacityFilled,
			Windows:        windows,
		})
	}

	factorSet := req.Factors
	if factorSet == nil {
		factorSet = factors.DefaultSet()
	}

	results, err := matching.Rank(&matching.Request{
		Window:         req.Window,
		TargetLanguage: req.TargetLanguage,
		RequesterAge:   req.RequesterGrade,
	}, candidates, req.Limit, factorSet)
	if err != nil {
		return nil, err
	}

	logger.Info("Ranked provider matches",
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)))

	return results, nil
}
