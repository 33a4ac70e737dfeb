package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/carewell/provider-match/pkg/core/availability"
	"github.com/carewell/provider-match/pkg/core/services"
)

// SetAvailabilityCmd creates the setAvailability command
func SetAvailabilityCmd(app *AppContext) *cobra.Command {
	var (
		rruleStr     string
		template     string
		availJSON    string
		timezone     string
		startDateStr string
		endDateStr   string
	)

	cmd := &cobra.Command{
		Use:   "setAvailability <owner_kind> <owner_id>",
		Short: "Store a new availability window for a family or provider",
		Long: `Store a new availability window for a family or provider.

owner_kind is "family" or "provider". Supply exactly one of --rrule,
--template (a named rrule from config), or --availability (day/time blocks
as JSON). Changed schedules are stored as new windows, not edits.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerKind := availability.OwnerKind(args[0])
			if ownerKind != availability.OwnerFamily && ownerKind != availability.OwnerProvider {
				return fmt.Errorf("owner_kind must be %q or %q", availability.OwnerFamily, availability.OwnerProvider)
			}
			ownerID := args[1]

			if template != "" {
				tmpl, ok := app.Cfg.RRuleTemplates[template]
				if !ok {
					return fmt.Errorf("unknown rrule template %q", template)
				}
				rruleStr = tmpl
			}

			if timezone == "" {
				timezone = app.Cfg.DefaultTimezone
			}

			input := services.SaveAvailabilityInput{
				OwnerKind: ownerKind,
				OwnerID:   ownerID,
				Timezone:  timezone,
				RRule:     rruleStr,
			}
			if availJSON != "" {
				input.Availability = availJSON
			}

			var err error
			if input.StartDate, err = parseDate(startDateStr); err != nil {
				return err
			}
			if input.EndDate, err = parseDate(endDateStr); err != nil {
				return err
			}

			record, err := services.SaveAvailability(app.Ctx, app.Directory, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Availability window saved!\n\n")
			fmt.Printf("Window ID: %s\n", record.ID)
			fmt.Printf("Owner:     %s %s\n", record.OwnerKind, record.OwnerID)
			fmt.Printf("Timezone:  %s\n\n", record.Timezone)

			return nil
		},
	}

	cmd.Flags().StringVar(&rruleStr, "rrule", "", "Recurrence rule (e.g. FREQ=WEEKLY;BYDAY=MO,WE)")
	cmd.Flags().StringVar(&template, "template", "", "Named rrule template from config")
	cmd.Flags().StringVar(&availJSON, "availability", "", "Day/time blocks as JSON")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone (defaults to config)")
	cmd.Flags().StringVar(&startDateStr, "start", "", "First active date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDateStr, "end", "", "Last active date (YYYY-MM-DD)")

	return cmd
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return &t, nil
}
