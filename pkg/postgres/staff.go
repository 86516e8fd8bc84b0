package postgres

import (
	"context"
	"fmt"

	"github.com/cedarhouse/staffadmin/pkg/db"
)

const staffColumns = `id, name, permit_level, available, hourly_rate, ece_units,
	has_infant_specialization, fully_qualified, is_director, director_counts_toward_ratio, created_at`

// GetStaffMembers retrieves all staff records ordered by name
func (d *DB) GetStaffMembers(ctx context.Context) ([]db.StaffMember, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+staffColumns+`
		FROM staff_members
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff members: %w", err)
	}
	defer rows.Close()

	var staff []db.StaffMember
	for rows.Next() {
		s, err := scanStaffMember(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff members: %w", err)
	}

	return staff, nil
}

// GetStaffMember retrieves a single staff record by ID
func (d *DB) GetStaffMember(ctx context.Context, id string) (*db.StaffMember, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+staffColumns+`
		FROM staff_members
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff member: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("staff member %s not found", id)
	}
	return scanStaffMember(rows)
}

// InsertStaffMember inserts a new staff record
func (d *DB) InsertStaffMember(ctx context.Context, staff *db.StaffMember) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO staff_members (id, name, permit_level, available, hourly_rate, ece_units,
			has_infant_specialization, fully_qualified, is_director, director_counts_toward_ratio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, staff.ID, staff.Name, staff.PermitLevel, staff.Available, staff.HourlyRate, staff.ECEUnits,
		staff.HasInfantSpecialization, staff.FullyQualified, staff.IsDirector, staff.DirectorCountsTowardRatio)
	if err != nil {
		return fmt.Errorf("failed to insert staff member: %w", err)
	}
	return nil
}

// UpdateStaffMember updates an existing staff record
func (d *DB) UpdateStaffMember(ctx context.Context, staff *db.StaffMember) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE staff_members
		SET name = $2, permit_level = $3, available = $4, hourly_rate = $5, ece_units = $6,
			has_infant_specialization = $7, fully_qualified = $8, is_director = $9,
			director_counts_toward_ratio = $10
		WHERE id = $1
	`, staff.ID, staff.Name, staff.PermitLevel, staff.Available, staff.HourlyRate, staff.ECEUnits,
		staff.HasInfantSpecialization, staff.FullyQualified, staff.IsDirector, staff.DirectorCountsTowardRatio)
	if err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("staff member %s not found", staff.ID)
	}
	return nil
}

// ToggleStaffAvailability flips the available flag and returns the updated record
func (d *DB) ToggleStaffAvailability(ctx context.Context, id string) (*db.StaffMember, error) {
	rows, err := d.pool.Query(ctx, `
		UPDATE staff_members
		SET available = NOT available
		WHERE id = $1
		RETURNING `+staffColumns+`
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle staff availability: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("staff member %s not found", id)
	}
	return scanStaffMember(rows)
}

// DeleteStaffMember removes a staff record
func (d *DB) DeleteStaffMember(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("staff member %s not found", id)
	}
	return nil
}

func scanStaffMember(row rowScanner) (*db.StaffMember, error) {
	var s db.StaffMember
	if err := row.Scan(&s.ID, &s.Name, &s.PermitLevel, &s.Available, &s.HourlyRate, &s.ECEUnits,
		&s.HasInfantSpecialization, &s.FullyQualified, &s.IsDirector, &s.DirectorCountsTowardRatio,
		&s.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan staff member: %w", err)
	}
	return &s, nil
}
