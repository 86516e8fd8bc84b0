package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/db"
)

// memoryDatabase implements db.Database in memory for seeding tests
type memoryDatabase struct {
	ageGroups []db.AgeGroup
	staff     []db.StaffMember
	plans     []db.CorePlan
	addOns    []db.AddOn
	fees      []db.OneTimeFee
	discounts []db.Discount
	fixed     []db.FixedExpense
	perChild  []db.PerChildCost
	settings  *db.CapacitySettings
}

func (m *memoryDatabase) GetAgeGroups(ctx context.Context) ([]db.AgeGroup, error) {
	return m.ageGroups, nil
}

func (m *memoryDatabase) GetAgeGroup(ctx context.Context, id string) (*db.AgeGroup, error) {
	for _, g := range m.ageGroups {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, fmt.Errorf("age group %s not found", id)
}

func (m *memoryDatabase) InsertAgeGroup(ctx context.Context, group *db.AgeGroup) error {
	m.ageGroups = append(m.ageGroups, *group)
	return nil
}

func (m *memoryDatabase) UpdateAgeGroup(ctx context.Context, group *db.AgeGroup) error { return nil }
func (m *memoryDatabase) DeleteAgeGroup(ctx context.Context, id string) error          { return nil }

func (m *memoryDatabase) GetStaffMembers(ctx context.Context) ([]db.StaffMember, error) {
	return m.staff, nil
}

func (m *memoryDatabase) GetStaffMember(ctx context.Context, id string) (*db.StaffMember, error) {
	for _, s := range m.staff {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("staff member %s not found", id)
}

func (m *memoryDatabase) InsertStaffMember(ctx context.Context, staff *db.StaffMember) error {
	m.staff = append(m.staff, *staff)
	return nil
}

func (m *memoryDatabase) UpdateStaffMember(ctx context.Context, staff *db.StaffMember) error {
	return nil
}

func (m *memoryDatabase) ToggleStaffAvailability(ctx context.Context, id string) (*db.StaffMember, error) {
	for i := range m.staff {
		if m.staff[i].ID == id {
			m.staff[i].Available = !m.staff[i].Available
			return &m.staff[i], nil
		}
	}
	return nil, fmt.Errorf("staff member %s not found", id)
}

func (m *memoryDatabase) DeleteStaffMember(ctx context.Context, id string) error { return nil }

func (m *memoryDatabase) GetCorePlans(ctx context.Context) ([]db.CorePlan, error) {
	return m.plans, nil
}

func (m *memoryDatabase) GetCorePlan(ctx context.Context, id string) (*db.CorePlan, error) {
	for _, p := range m.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("core plan %s not found", id)
}

func (m *memoryDatabase) InsertCorePlan(ctx context.Context, plan *db.CorePlan) error {
	m.plans = append(m.plans, *plan)
	return nil
}

func (m *memoryDatabase) UpdateCorePlan(ctx context.Context, plan *db.CorePlan) error { return nil }
func (m *memoryDatabase) DeleteCorePlan(ctx context.Context, id string) error         { return nil }

func (m *memoryDatabase) GetAddOns(ctx context.Context) ([]db.AddOn, error) {
	return m.addOns, nil
}

func (m *memoryDatabase) GetAddOn(ctx context.Context, id string) (*db.AddOn, error) {
	for _, a := range m.addOns {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("add-on %s not found", id)
}

func (m *memoryDatabase) InsertAddOn(ctx context.Context, addOn *db.AddOn) error {
	m.addOns = append(m.addOns, *addOn)
	return nil
}

func (m *memoryDatabase) UpdateAddOn(ctx context.Context, addOn *db.AddOn) error { return nil }
func (m *memoryDatabase) DeleteAddOn(ctx context.Context, id string) error       { return nil }

func (m *memoryDatabase) GetOneTimeFees(ctx context.Context) ([]db.OneTimeFee, error) {
	return m.fees, nil
}

func (m *memoryDatabase) InsertOneTimeFee(ctx context.Context, fee *db.OneTimeFee) error {
	m.fees = append(m.fees, *fee)
	return nil
}

func (m *memoryDatabase) UpdateOneTimeFee(ctx context.Context, fee *db.OneTimeFee) error { return nil }
func (m *memoryDatabase) DeleteOneTimeFee(ctx context.Context, id string) error          { return nil }

func (m *memoryDatabase) GetDiscounts(ctx context.Context) ([]db.Discount, error) {
	return m.discounts, nil
}

func (m *memoryDatabase) InsertDiscount(ctx context.Context, discount *db.Discount) error {
	m.discounts = append(m.discounts, *discount)
	return nil
}

func (m *memoryDatabase) UpdateDiscount(ctx context.Context, discount *db.Discount) error {
	return nil
}

func (m *memoryDatabase) DeleteDiscount(ctx context.Context, id string) error { return nil }

func (m *memoryDatabase) GetFixedExpenses(ctx context.Context) ([]db.FixedExpense, error) {
	return m.fixed, nil
}

func (m *memoryDatabase) InsertFixedExpense(ctx context.Context, expense *db.FixedExpense) error {
	m.fixed = append(m.fixed, *expense)
	return nil
}

func (m *memoryDatabase) UpdateFixedExpense(ctx context.Context, expense *db.FixedExpense) error {
	return nil
}

func (m *memoryDatabase) DeleteFixedExpense(ctx context.Context, id string) error { return nil }

func (m *memoryDatabase) GetPerChildCosts(ctx context.Context) ([]db.PerChildCost, error) {
	return m.perChild, nil
}

func (m *memoryDatabase) InsertPerChildCost(ctx context.Context, cost *db.PerChildCost) error {
	m.perChild = append(m.perChild, *cost)
	return nil
}

func (m *memoryDatabase) UpdatePerChildCost(ctx context.Context, cost *db.PerChildCost) error {
	return nil
}

func (m *memoryDatabase) DeletePerChildCost(ctx context.Context, id string) error { return nil }

func (m *memoryDatabase) GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error) {
	if m.settings == nil {
		m.settings = &db.CapacitySettings{
			TotalChildren: 60, MaxCapacity: 75,
			InfantPercent: 20, ChildPercent: 80,
			CorePercent: 50, ExtendedPercent: 50,
			FullPercent: 60, MWFPercent: 30, TThPercent: 10,
			UpdatedAt: time.Now(),
		}
	}
	return m.settings, nil
}

func (m *memoryDatabase) UpdateCapacitySettings(ctx context.Context, settings *db.CapacitySettings) error {
	m.settings = settings
	return nil
}

func TestSeed(t *testing.T) {
	database := &memoryDatabase{}

	err := Seed(context.Background(), database, zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, database.ageGroups, 3)
	assert.Len(t, database.plans, 12)
	assert.Len(t, database.staff, 6)
	assert.Len(t, database.addOns, 1)
	assert.Len(t, database.fees, 1)
	assert.Len(t, database.discounts, 1)
	assert.Len(t, database.fixed, 7)
	assert.Len(t, database.perChild, 8)
	require.NotNil(t, database.settings)

	// Every fixed plan carries a configured price.
	for _, p := range database.plans {
		assert.True(t, p.IsFixedPlan)
		assert.Greater(t, p.BasePrice, 0.0, "plan %s", p.Name)
	}

	// The Child group carries the two enhanced ratio options.
	var childGroup *db.AgeGroup
	for i := range database.ageGroups {
		if database.ageGroups[i].Ratio == 12 {
			childGroup = &database.ageGroups[i]
		}
	}
	require.NotNil(t, childGroup)
	assert.Len(t, childGroup.EnhancedRatios, 2)
}

func TestSeedIsIdempotent(t *testing.T) {
	database := &memoryDatabase{}

	require.NoError(t, Seed(context.Background(), database, zap.NewNop()))
	require.NoError(t, Seed(context.Background(), database, zap.NewNop()))

	assert.Len(t, database.ageGroups, 3)
	assert.Len(t, database.plans, 12)
	assert.Len(t, database.staff, 6)
	assert.Len(t, database.fixed, 7)
	assert.Len(t, database.perChild, 8)
}
