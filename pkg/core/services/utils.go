package services

import (
	"fmt"

	"github.com/carewell/provider-match/pkg/core/availability"
	"github.com/carewell/provider-match/pkg/db"
)

// windowFromRecord converts a stored availability window into the engine's
// window type, re-normalizing the stored JSON so pre-canonicalization rows
// still load.
func windowFromRecord(rec db.AvailabilityWindow) (*availability.Window, error) {
	w := &availability.Window{
		ID:        rec.ID,
		OwnerKind: availability.OwnerKind(rec.OwnerKind),
		OwnerID:   rec.OwnerID,
		StartDate: rec.StartDate,
		EndDate:   rec.EndDate,
		Timezone:  rec.Timezone,
		RRule:     rec.RRule,
	}

	if len(rec.AvailabilityJSON) > 0 {
		canonical, err := availability.Normalize(rec.AvailabilityJSON)
		if err != nil {
			return nil, fmt.Errorf("stored availability for window %s: %w", rec.ID, err)
		}
		w.Availability = canonical
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("stored window %s: %w", rec.ID, err)
	}
	return w, nil
}
