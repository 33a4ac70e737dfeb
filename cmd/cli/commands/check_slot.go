package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/carewell/provider-match/pkg/core/services"
)

// CheckSlotCmd creates the checkSlot command
func CheckSlotCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "checkSlot <provider_id> <instant>",
		Short: "Check whether a provider is free at an exact instant (RFC 3339)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerID := args[0]

			instant, err := time.Parse(time.RFC3339, args[1])
			if err != nil {
				return fmt.Errorf("instant must be RFC 3339 (e.g. 2026-09-07T09:30:00Z): %w", err)
			}

			free, err := services.CheckSlot(app.Ctx, app.Directory, app.Logger, providerID, instant)
			if err != nil {
				return err
			}

			if free {
				fmt.Printf("\n✓ Provider %s is available at %s\n\n", providerID, instant.Format(time.RFC3339))
			} else {
				fmt.Printf("\n✗ Provider %s is NOT available at %s\n\n", providerID, instant.Format(time.RFC3339))
			}

			return nil
		},
	}
}
