package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// mockCapacityPlanStore implements CapacityPlanStore for testing
type mockCapacityPlanStore struct {
	settings       *db.CapacitySettings
	staffMembers   []db.StaffMember
	getSettingsErr error
	getStaffErr    error
}

func (m *mockCapacityPlanStore) GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error) {
	if m.getSettingsErr != nil {
		return nil, m.getSettingsErr
	}
	return m.settings, nil
}

func (m *mockCapacityPlanStore) GetStaffMembers(ctx context.Context) ([]db.StaffMember, error) {
	if m.getStaffErr != nil {
		return nil, m.getStaffErr
	}
	return m.staffMembers, nil
}

func testSettings() *db.CapacitySettings {
	return &db.CapacitySettings{
		TotalChildren:   100,
		MaxCapacity:     120,
		InfantPercent:   20,
		ChildPercent:    80,
		CorePercent:     50,
		ExtendedPercent: 50,
		FullPercent:     60,
		MWFPercent:      30,
		TThPercent:      10,
		UpdatedAt:       time.Now(),
	}
}

func TestPlanCapacity(t *testing.T) {
	store := &mockCapacityPlanStore{settings: testSettings()}

	result, err := PlanCapacity(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 100, result.Plan.TotalChildren)
	assert.Equal(t, 100, result.Settings.TotalChildren)

	total := 0
	for _, b := range result.Plan.Distribution {
		total += b.Children
	}
	assert.Equal(t, 100, total)

	// Monday carries both Mon-Fri and Mon/Wed/Fri enrollment, so it peaks.
	assert.Equal(t, "Monday", result.Plan.Requirements.PeakDay)
	assert.Equal(t, 18, result.Plan.Requirements.PeakInfants)
	assert.Equal(t, 72, result.Plan.Requirements.PeakChildren)
	assert.Equal(t, 11, result.Plan.Requirements.TotalTeachers)

	// Empty roster falls back to default labor rates.
	assert.Equal(t, capacity.DefaultTeacherRate, result.Plan.Labor.AverageTeacherRate)
}

func TestPlanCapacityInvalidMix(t *testing.T) {
	settings := testSettings()
	settings.InfantPercent = 50 // age mix now totals 130

	store := &mockCapacityPlanStore{settings: settings}
	_, err := PlanCapacity(context.Background(), store, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must total 100%")
}

func TestPlanCapacityStoreError(t *testing.T) {
	store := &mockCapacityPlanStore{getSettingsErr: errors.New("connection refused")}
	_, err := PlanCapacity(context.Background(), store, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch capacity settings")
}
