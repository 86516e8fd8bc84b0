package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// mockStaffingStore implements StaffingStore for testing
type mockStaffingStore struct {
	ageGroups       []db.AgeGroup
	staffMembers    []db.StaffMember
	getAgeGroupsErr error
	getStaffErr     error
}

func (m *mockStaffingStore) GetAgeGroups(ctx context.Context) ([]db.AgeGroup, error) {
	if m.getAgeGroupsErr != nil {
		return nil, m.getAgeGroupsErr
	}
	return m.ageGroups, nil
}

func (m *mockStaffingStore) GetStaffMembers(ctx context.Context) ([]db.StaffMember, error) {
	if m.getStaffErr != nil {
		return nil, m.getStaffErr
	}
	return m.staffMembers, nil
}

func TestCalculateStaffing(t *testing.T) {
	store := &mockStaffingStore{
		ageGroups: []db.AgeGroup{
			{ID: "infants", Name: "Infants (0-18 months)", MinAgeMonths: 0, MaxAgeMonths: 18, Ratio: 4},
			{ID: "preschool", Name: "Child (2-6 years)", MinAgeMonths: 24, MaxAgeMonths: 72, Ratio: 12},
		},
		staffMembers: []db.StaffMember{
			{ID: "s1", Name: "Teacher 1", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 30, HasInfantSpecialization: true, FullyQualified: true},
			{ID: "s2", Name: "Teacher 2", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 28, FullyQualified: true},
			{ID: "s3", Name: "Teacher 3", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 28, FullyQualified: true},
			{ID: "s4", Name: "On Leave", PermitLevel: string(model.LevelTeacher), Available: false,
				HourlyRate: 28, FullyQualified: true},
		},
	}

	result, err := CalculateStaffing(context.Background(), store, zap.NewNop(), map[string]int{
		"preschool": 25,
	})
	require.NoError(t, err)

	// 25 children at 1:12 needs 3 staff; the unavailable teacher is excluded.
	assert.Equal(t, 3, result.TotalStaffNeeded)
	assert.Equal(t, 3, result.AvailableStaff)
	assert.True(t, result.AdequatelyStaffed)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, "preschool", result.Groups[0].GroupID)
	assert.Equal(t, 3, result.Groups[0].StaffNeeded)
}

func TestCalculateStaffingUnknownGroup(t *testing.T) {
	store := &mockStaffingStore{
		ageGroups: []db.AgeGroup{
			{ID: "preschool", Name: "Child (2-6 years)", MinAgeMonths: 24, MaxAgeMonths: 72, Ratio: 12},
		},
	}

	_, err := CalculateStaffing(context.Background(), store, zap.NewNop(), map[string]int{
		"nonexistent": 10,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown age group")
}

func TestCalculateStaffingStoreError(t *testing.T) {
	store := &mockStaffingStore{
		getAgeGroupsErr: errors.New("connection refused"),
	}

	_, err := CalculateStaffing(context.Background(), store, zap.NewNop(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch age groups")
}
