package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/carewell/provider-match/pkg/core/availability"
	"github.com/carewell/provider-match/pkg/db"
)

// SaveAvailabilityInput describes a new availability window to store
type SaveAvailabilityInput struct {
	OwnerKind availability.OwnerKind
	OwnerID   string
	StartDate *time.Time
	EndDate   *time.Time
	Timezone  string

	// RRule and Availability are mutually exclusive; exactly one must be set
	RRule string

	// Availability accepts any shape Normalize accepts: a JSON string, a
	// bare day-entry list, or an already-canonical structure
	Availability any
}

// SaveAvailability canonicalizes and stores a new availability window for a
// participant. Schedule changes are superseded, not amended: callers store a
// new window with a later start date rather than editing history.
func SaveAvailability(ctx context.Context, directory db.Directory, logger *zap.Logger, input SaveAvailabilityInput) (*db.AvailabilityWindow, error) {
	logger.Debug("Saving availability window",
		zap.String("owner_kind", string(input.OwnerKind)),
		zap.String("owner_id", input.OwnerID))

	var canonical *availability.Canonical
	var canonicalJSON []byte
	if input.Availability != nil {
		var err error
		canonical, err = availability.Normalize(input.Availability)
		if err != nil {
			return nil, err
		}
		canonicalJSON, err = json.Marshal(canonical)
		if err != nil {
			return nil, fmt.Errorf("failed to encode canonical availability: %w", err)
		}
	}

	if input.RRule != "" {
		if _, err := rrule.StrToROption(input.RRule); err != nil {
			return nil, fmt.Errorf("invalid rrule %q: %w", input.RRule, err)
		}
	}

	window := &availability.Window{
		OwnerKind:    input.OwnerKind,
		OwnerID:      input.OwnerID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Timezone:     input.Timezone,
		RRule:        input.RRule,
		Availability: canonical,
	}
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("invalid availability window: %w", err)
	}

	record := &db.AvailabilityWindow{
		ID:               uuid.New().String(),
		OwnerKind:        string(input.OwnerKind),
		OwnerID:          input.OwnerID,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Timezone:         input.Timezone,
		RRule:            input.RRule,
		AvailabilityJSON: canonicalJSON,
	}

	if err := directory.InsertAvailabilityWindow(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to insert availability window: %w", err)
	}

	logger.Info("Availability window saved",
		zap.String("window_id", record.ID),
		zap.String("owner_id", input.OwnerID))

	return record, nil
}
