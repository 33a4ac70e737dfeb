package postgres

import (
	"context"
	"fmt"

	"github.com/carewell/provider-match/pkg/db"
)

// GetAvailabilityWindows retrieves all availability windows owned by the
// given participant, newest first so superseding windows come before the
// history they replaced.
func (d *DB) GetAvailabilityWindows(ctx context.Context, ownerID string) ([]db.AvailabilityWindow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, owner_kind, owner_id, start_date, end_date, timezone, rrule, availability, created_at
		FROM availability_window
		WHERE owner_id = $1
		ORDER BY start_date DESC NULLS LAST, created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability windows: %w", err)
	}
	defer rows.Close()

	var windows []db.AvailabilityWindow
	for rows.Next() {
		var w db.AvailabilityWindow
		var rrule *string
		if err := rows.Scan(&w.ID, &w.OwnerKind, &w.OwnerID, &w.StartDate, &w.EndDate,
			&w.Timezone, &rrule, &w.AvailabilityJSON, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan availability window: %w", err)
		}
		if rrule != nil {
			w.RRule = *rrule
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability windows: %w", err)
	}

	return windows, nil
}

// InsertAvailabilityWindow stores a new availability window. Windows are
// append-only; a changed schedule arrives as a new row.
func (d *DB) InsertAvailabilityWindow(ctx context.Context, window *db.AvailabilityWindow) error {
	var rrule *string
	if window.RRule != "" {
		rrule = &window.RRule
	}
	var availabilityJSON []byte
	if len(window.AvailabilityJSON) > 0 {
		availabilityJSON = window.AvailabilityJSON
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO availability_window (id, owner_kind, owner_id, start_date, end_date, timezone, rrule, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, window.ID, window.OwnerKind, window.OwnerID, window.StartDate, window.EndDate,
		window.Timezone, rrule, availabilityJSON)
	if err != nil {
		return fmt.Errorf("failed to insert availability window: %w", err)
	}

	return nil
}
