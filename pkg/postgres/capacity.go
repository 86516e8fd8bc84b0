package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cedarhouse/staffadmin/pkg/db"
)

// GetCapacitySettings retrieves the singleton capacity settings row,
// creating it with defaults if it does not exist yet.
func (d *DB) GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error) {
	s, err := d.queryCapacitySettings(ctx)
	if err == nil {
		return s, nil
	}
	if !isMissingRow(err) {
		return nil, err
	}

	defaults := defaultCapacitySettings()
	if err := d.UpdateCapacitySettings(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to create default capacity settings: %w", err)
	}
	return d.queryCapacitySettings(ctx)
}

// UpdateCapacitySettings upserts the singleton capacity settings row
func (d *DB) UpdateCapacitySettings(ctx context.Context, settings *db.CapacitySettings) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO capacity_settings (id, total_children, max_capacity, infant_percent, child_percent,
			core_percent, extended_percent, full_percent, mwf_percent, tth_percent, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			total_children = EXCLUDED.total_children,
			max_capacity = EXCLUDED.max_capacity,
			infant_percent = EXCLUDED.infant_percent,
			child_percent = EXCLUDED.child_percent,
			core_percent = EXCLUDED.core_percent,
			extended_percent = EXCLUDED.extended_percent,
			full_percent = EXCLUDED.full_percent,
			mwf_percent = EXCLUDED.mwf_percent,
			tth_percent = EXCLUDED.tth_percent,
			updated_at = NOW()
	`, settings.TotalChildren, settings.MaxCapacity, settings.InfantPercent, settings.ChildPercent,
		settings.CorePercent, settings.ExtendedPercent, settings.FullPercent, settings.MWFPercent,
		settings.TThPercent)
	if err != nil {
		return fmt.Errorf("failed to upsert capacity settings: %w", err)
	}
	return nil
}

func (d *DB) queryCapacitySettings(ctx context.Context) (*db.CapacitySettings, error) {
	var s db.CapacitySettings
	err := d.pool.QueryRow(ctx, `
		SELECT total_children, max_capacity, infant_percent, child_percent, core_percent,
			extended_percent, full_percent, mwf_percent, tth_percent, updated_at
		FROM capacity_settings
		WHERE id = 1
	`).Scan(&s.TotalChildren, &s.MaxCapacity, &s.InfantPercent, &s.ChildPercent, &s.CorePercent,
		&s.ExtendedPercent, &s.FullPercent, &s.MWFPercent, &s.TThPercent, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to query capacity settings: %w", err)
	}
	return &s, nil
}

// isMissingRow reports whether err means the settings row does not exist,
// as opposed to a connection or query failure that must not trigger the
// default-seeding fallback.
func isMissingRow(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func defaultCapacitySettings() *db.CapacitySettings {
	return &db.CapacitySettings{
		TotalChildren:   60,
		MaxCapacity:     75,
		InfantPercent:   20,
		ChildPercent:    80,
		CorePercent:     50,
		ExtendedPercent: 50,
		FullPercent:     60,
		MWFPercent:      30,
		TThPercent:      10,
	}
}
