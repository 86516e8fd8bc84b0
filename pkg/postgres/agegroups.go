package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// GetAgeGroups retrieves all age group records ordered by minimum age
func (d *DB) GetAgeGroups(ctx context.Context) ([]db.AgeGroup, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, min_age_months, max_age_months, ratio, enhanced_ratios, created_at
		FROM age_groups
		ORDER BY min_age_months
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query age groups: %w", err)
	}
	defer rows.Close()

	var groups []db.AgeGroup
	for rows.Next() {
		g, err := scanAgeGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating age groups: %w", err)
	}

	return groups, nil
}

// GetAgeGroup retrieves a single age group by ID
func (d *DB) GetAgeGroup(ctx context.Context, id string) (*db.AgeGroup, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, min_age_months, max_age_months, ratio, enhanced_ratios, created_at
		FROM age_groups
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query age group: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("age group %s not found", id)
	}
	return scanAgeGroup(rows)
}

// InsertAgeGroup inserts a new age group record
func (d *DB) InsertAgeGroup(ctx context.Context, group *db.AgeGroup) error {
	ratios, err := json.Marshal(group.EnhancedRatios)
	if err != nil {
		return fmt.Errorf("failed to marshal enhanced ratios: %w", err)
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO age_groups (id, name, min_age_months, max_age_months, ratio, enhanced_ratios)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, group.ID, group.Name, group.MinAgeMonths, group.MaxAgeMonths, group.Ratio, ratios)
	if err != nil {
		return fmt.Errorf("failed to insert age group: %w", err)
	}
	return nil
}

// UpdateAgeGroup updates an existing age group record
func (d *DB) UpdateAgeGroup(ctx context.Context, group *db.AgeGroup) error {
	ratios, err := json.Marshal(group.EnhancedRatios)
	if err != nil {
		return fmt.Errorf("failed to marshal enhanced ratios: %w", err)
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE age_groups
		SET name = $2, min_age_months = $3, max_age_months = $4, ratio = $5, enhanced_ratios = $6
		WHERE id = $1
	`, group.ID, group.Name, group.MinAgeMonths, group.MaxAgeMonths, group.Ratio, ratios)
	if err != nil {
		return fmt.Errorf("failed to update age group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("age group %s not found", group.ID)
	}
	return nil
}

// DeleteAgeGroup removes an age group record
func (d *DB) DeleteAgeGroup(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM age_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete age group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("age group %s not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgeGroup(row rowScanner) (*db.AgeGroup, error) {
	var g db.AgeGroup
	var ratios []byte
	if err := row.Scan(&g.ID, &g.Name, &g.MinAgeMonths, &g.MaxAgeMonths, &g.Ratio, &ratios, &g.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan age group: %w", err)
	}
	if len(ratios) > 0 {
		if err := json.Unmarshal(ratios, &g.EnhancedRatios); err != nil {
			return nil, fmt.Errorf("failed to unmarshal enhanced ratios: %w", err)
		}
	}
	if g.EnhancedRatios == nil {
		g.EnhancedRatios = []model.EnhancedRatio{}
	}
	return &g, nil
}
