package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carewell/provider-match/pkg/core/availability"
	"github.com/carewell/provider-match/pkg/core/matching"
	"github.com/carewell/provider-match/pkg/core/matching/factors"
	"github.com/carewell/provider-match/pkg/core/services"
)

// MatchProvidersCmd creates the matchProviders command
func MatchProvidersCmd(app *AppContext) *cobra.Command {
	var (
		timezone string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "matchProviders <grade> <language> <window_json>",
		Short: "Rank providers against a requested availability window",
		Long: `Rank providers against a requested availability window.

window_json is the requested day/time blocks, e.g.
  '{"days":[{"day":"Monday","time_blocks":[{"start":"09:00:00","duration_minutes":60}]}]}'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			grade, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("grade must be a number: %w", err)
			}
			language := args[1]

			canonical, err := availability.Normalize(args[2])
			if err != nil {
				return err
			}

			window := &availability.Window{
				OwnerKind:    availability.OwnerFamily,
				Timezone:     timezone,
				Availability: canonical,
			}

			results, err := services.MatchProviders(app.Ctx, app.Directory, app.Logger, services.MatchRequest{
				Window:         window,
				TargetLanguage: language,
				RequesterGrade: grade,
				Limit:          matchLimit(app, limit),
				Factors:        factorSet(app),
			})
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Println("\nNo matching providers found.")
				return nil
			}

			fmt.Printf("\nTop %d matches:\n\n", len(results))
			for i, r := range results {
				fmt.Printf("%2d. %s — score %d\n", i+1, r.CandidateName, r.Score)
				for _, why := range r.Rationale {
					fmt.Printf("      - %s\n", why)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone for the requested window (defaults to config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of matches to return")

	return cmd
}

// matchLimit resolves the effective match limit: flag, then config, then the
// engine default
func matchLimit(app *AppContext, flagLimit int) int {
	if flagLimit > 0 {
		return flagLimit
	}
	return app.Cfg.MatchLimit
}

// factorSet builds the scoring factors, honoring config weight overrides
func factorSet(app *AppContext) []matching.Factor {
	if app.Cfg.Weights == nil {
		return factors.DefaultSet()
	}
	return factors.Set(factors.Weights{
		Language:     app.Cfg.Weights.Language,
		AgeFull:      app.Cfg.Weights.AgeFull,
		AgePartial:   app.Cfg.Weights.AgePartial,
		Availability: app.Cfg.Weights.Availability,
		Capacity:     app.Cfg.Weights.Capacity,
	})
}
