package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carewell/provider-match/pkg/core/availability"
	"github.com/carewell/provider-match/pkg/db"
)

// CheckSlot answers the booking-confirmation question: is this provider
// free at this exact instant. The provider is free when any of its stored
// windows covers the instant. Malformed windows are skipped with a warning;
// an unknown provider is an error, not a "no".
func CheckSlot(ctx context.Context, directory db.Directory, logger *zap.Logger, providerID string, instant time.Time) (bool, error) {
	logger.Debug("Checking slot",
		zap.String("provider_id", providerID),
		zap.Time("instant", instant))

	provider, err := directory.GetProvider(ctx, providerID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch provider %s: %w", providerID, err)
	}
	if provider == nil {
		return false, fmt.Errorf("provider %s not found", providerID)
	}

	records, err := directory.GetAvailabilityWindows(ctx, providerID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch availability for provider %s: %w", providerID, err)
	}

	for _, rec := range records {
		w, err := windowFromRecord(rec)
		if err != nil {
			logger.Warn("Skipping malformed availability window",
				zap.String("window_id", rec.ID),
				zap.Error(err))
			continue
		}

		free, err := availability.IsAvailableAt(w, instant)
		if err != nil {
			logger.Warn("Skipping window that failed evaluation",
				zap.String("window_id", rec.ID),
				zap.Error(err))
			continue
		}
		if free {
			logger.Info("Slot is available",
				zap.String("provider_id", providerID),
				zap.String("window_id", rec.ID))
			return true, nil
		}
	}

	logger.Info("Slot is not available", zap.String("provider_id", providerID))
	return false, nil
}
