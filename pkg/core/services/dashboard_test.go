package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// mockDashboardStore implements DashboardStore for testing
type mockDashboardStore struct {
	settings     *db.CapacitySettings
	staffMembers []db.StaffMember
	plans        []db.CorePlan
	fixed        []db.FixedExpense
	perChild     []db.PerChildCost
}

func (m *mockDashboardStore) GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error) {
	return m.settings, nil
}

func (m *mockDashboardStore) GetStaffMembers(ctx context.Context) ([]db.StaffMember, error) {
	return m.staffMembers, nil
}

func (m *mockDashboardStore) GetCorePlans(ctx context.Context) ([]db.CorePlan, error) {
	return m.plans, nil
}

func (m *mockDashboardStore) GetFixedExpenses(ctx context.Context) ([]db.FixedExpense, error) {
	return m.fixed, nil
}

func (m *mockDashboardStore) GetPerChildCosts(ctx context.Context) ([]db.PerChildCost, error) {
	return m.perChild, nil
}

func TestBuildDashboard(t *testing.T) {
	store := &mockDashboardStore{
		settings: testSettings(),
		staffMembers: []db.StaffMember{
			{ID: "s1", Name: "Teacher 1", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 30, FullyQualified: true},
			{ID: "s2", Name: "Teacher 2", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 30, FullyQualified: true},
			{ID: "s3", Name: "Assistant 1", PermitLevel: string(model.LevelAssistant), Available: true,
				HourlyRate: 18},
			{ID: "s4", Name: "On Leave", PermitLevel: string(model.LevelTeacher), Available: false,
				HourlyRate: 28, FullyQualified: true},
		},
		plans: []db.CorePlan{
			{ID: "p1", Name: "Child Mon-Fri Core Hours", BasePrice: 1550, BillingPeriod: "monthly",
				Schedule: "core", Pattern: "full", Band: "child", IsFixedPlan: true, Active: true},
		},
		fixed: []db.FixedExpense{
			{Name: "Monthly Rent", Category: "lease", MonthlyAmount: 4500, Active: true},
		},
	}

	d, err := BuildDashboard(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 100, d.Enrollment.TotalChildren)
	assert.Equal(t, 120, d.Enrollment.MaxCapacity)
	assert.Equal(t, 20, d.Enrollment.Infants)
	assert.Equal(t, 80, d.Enrollment.Children)
	assert.InDelta(t, 83.33, d.Enrollment.UtilizationPercent, 0.001)

	assert.Equal(t, 4, d.Staffing.TotalStaff)
	assert.Equal(t, 3, d.Staffing.AvailableStaff)
	assert.Equal(t, 2, d.Staffing.Supervisors)
	assert.Equal(t, 4, d.Staffing.SupervisorCapacity)
	assert.Equal(t, 11, d.Staffing.TeachersNeeded)
	assert.False(t, d.Staffing.AdequatelyStaffed)
	assert.Equal(t, "Monday", d.PeakDay)

	// Only the core full-week child combination is priced: 24 children
	// at $1550 monthly.
	assert.InDelta(t, 37200.0, d.Financial.RevenuePotential, 0.001)
	require.NotEmpty(t, d.Financial.RevenueLines)

	assert.InDelta(t, 4500.0, d.Financial.FixedExpenses, 0.001)
	assert.Greater(t, d.Financial.LaborCost, 0.0)

	expectedMargin := d.Financial.RevenuePotential - d.Financial.LaborCost -
		d.Financial.FixedExpenses - d.Financial.PerChildCosts
	assert.InDelta(t, expectedMargin, d.Financial.ProjectedMargin, 0.01)
}
