package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/core/staffing"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// StaffingStore defines the database operations needed for a staffing calculation
type StaffingStore interface {
	GetAgeGroups(ctx context.Context) ([]db.AgeGroup, error)
	GetStaffMembers(ctx context.Context) ([]db.StaffMember, error)
}

// CalculateStaffing loads the configured age groups and staff roster, pairs
// the groups with the requested enrollment counts, and runs the ratio
// calculation. Enrollment counts are keyed by age group ID; groups without
// an entry count zero children, and unknown IDs are rejected.
func CalculateStaffing(ctx context.Context, store StaffingStore, logger *zap.Logger, enrollments map[string]int) (*staffing.Result, error) {
	logger.Debug("Fetching age groups for staffing calculation")
	groups, err := store.GetAgeGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch age groups: %w", err)
	}

	logger.Debug("Fetching staff roster")
	staffRecords, err := store.GetStaffMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff members: %w", err)
	}

	known := make(map[string]bool, len(groups))
	groupEnrollments := make([]staffing.GroupEnrollment, 0, len(groups))
	for _, g := range groups {
		known[g.ID] = true
		groupEnrollments = append(groupEnrollments, staffing.GroupEnrollment{
			Group:    g.ToModel(),
			Children: enrollments[g.ID],
		})
	}
	for id := range enrollments {
		if !known[id] {
			return nil, fmt.Errorf("unknown age group %s", id)
		}
	}

	roster := make([]model.StaffMember, 0, len(staffRecords))
	for _, s := range staffRecords {
		roster = append(roster, s.ToModel())
	}

	result, err := staffing.Calculate(groupEnrollments, roster)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate staffing: %w", err)
	}

	logger.Info("Staffing calculation complete",
		zap.Int("total_staff_needed", result.TotalStaffNeeded),
		zap.Int("available_staff", result.AvailableStaff),
		zap.Bool("adequately_staffed", result.AdequatelyStaffed))

	return result, nil
}
