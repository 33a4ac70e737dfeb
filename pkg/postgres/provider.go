package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/carewell/provider-match/pkg/db"
)

const providerColumns = `id, name, languages, specialties, age_min, age_max, capacity_total, capacity_filled`

// GetProviders retrieves all provider records
func (d *DB) GetProviders(ctx context.Context) ([]db.Provider, error) {
	rows, err := d.pool.Query(ctx, `SELECT `+providerColumns+` FROM provider ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer rows.Close()

	var providers []db.Provider
	for rows.Next() {
		var p db.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Languages, &p.Specialties,
			&p.AgeMin, &p.AgeMax, &p.CapacityTotal, &p.CapacityFilled); err != nil {
			return nil, fmt.Errorf("failed to scan provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating providers: %w", err)
	}

	return providers, nil
}

// GetProvider retrieves one provider by ID, nil when not found
func (d *DB) GetProvider(ctx context.Context, id string) (*db.Provider, error) {
	var p db.Provider
	err := d.pool.QueryRow(ctx, `SELECT `+providerColumns+` FROM provider WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Languages, &p.Specialties,
			&p.AgeMin, &p.AgeMax, &p.CapacityTotal, &p.CapacityFilled)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query provider %s: %w", id, err)
	}
	return &p, nil
}
