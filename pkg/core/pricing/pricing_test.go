package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
)

func TestPlanMonthlyPrice(t *testing.T) {
	weekly := Plan{Name: "Core Mon-Fri", BasePrice: 300, BillingPeriod: BillWeekly}
	assert.Equal(t, 1299.0, weekly.MonthlyPrice())

	monthly := Plan{Name: "Core Mon-Fri", BasePrice: 1550, BillingPeriod: BillMonthly}
	assert.Equal(t, 1550.0, monthly.MonthlyPrice())
}

func TestAddOnMonthlyCost(t *testing.T) {
	tests := []struct {
		name    string
		addOn   AddOnCharge
		want    float64
		wantErr bool
	}{
		{
			name:  "per day, 3 days a week",
			addOn: AddOnCharge{Pricing: PerDay, Price: 10, Quantity: 3},
			want:  129.9,
		},
		{
			name:  "time based, $5 per 15 min, 30 min daily",
			addOn: AddOnCharge{Pricing: TimeBased, Price: 5, MinutesUnit: 15, Quantity: 30},
			want:  216.5, // 2 blocks * $5 * 5 days * 4.33 weeks
		},
		{
			name:  "one time contributes nothing monthly",
			addOn: AddOnCharge{Pricing: OneTime, Price: 75},
			want:  0,
		},
		{
			name:  "extended care flat",
			addOn: AddOnCharge{Pricing: ExtendedCare, Price: 250},
			want:  250,
		},
		{
			name:    "unknown type",
			addOn:   AddOnCharge{Pricing: AddOnPricing("per_hug")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.addOn.MonthlyCost()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuotePackage(t *testing.T) {
	plan := Plan{Name: "Child Mon-Fri Core", BasePrice: 1550, BillingPeriod: BillMonthly}
	addOns := []AddOnCharge{
		{Name: "Lunch", Pricing: PerDay, Price: 8, Quantity: 5},    // 173.2
		{Name: "Registration pack", Pricing: OneTime, Price: 50},   // one-time
		{Name: "Extended care", Pricing: ExtendedCare, Price: 250}, // 250
	}
	discounts := []Discount{
		{Name: "Sibling", Type: Percentage, Amount: 10, Scope: ScopeCorePlan}, // 155
	}
	fees := []Fee{{Name: "Deposit", Amount: 200, Refundable: true}}

	q, err := QuotePackage(plan, addOns, discounts, fees)
	require.NoError(t, err)

	assert.Equal(t, 1550.0, q.CorePlanMonthly)
	assert.Equal(t, 423.2, q.AddOnsMonthly)
	assert.Equal(t, 155.0, q.DiscountTotal)
	assert.Equal(t, 1818.2, q.MonthlyTuition)
	assert.Equal(t, 250.0, q.OneTimeFees) // deposit + one-time add-on
}

func TestQuotePackage_TotalScopeAndFloor(t *testing.T) {
	plan := Plan{BasePrice: 100, BillingPeriod: BillMonthly}
	discounts := []Discount{{Type: Fixed, Amount: 500, Scope: ScopeTotal}}

	q, err := QuotePackage(plan, nil, discounts, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.MonthlyTuition, "tuition never goes negative")
}

func TestProjectRevenue(t *testing.T) {
	distribution := []capacity.Bucket{
		{Schedule: capacity.ScheduleCore, Pattern: capacity.DaysFull, Band: capacity.BandChild, Children: 10, PlanName: "Child Mon-Fri Core Hours"},
		{Schedule: capacity.ScheduleCore, Pattern: capacity.DaysFull, Band: capacity.BandInfant, Children: 0},
		{Schedule: capacity.ScheduleExtended, Pattern: capacity.DaysTTh, Band: capacity.BandChild, Children: 4, PlanName: "Child Tue/Thu Extended Hours"},
	}

	pricer := func(s capacity.ScheduleType, p capacity.DayPattern, b capacity.AgeBand) (string, float64, bool) {
		if s == capacity.ScheduleCore && p == capacity.DaysFull && b == capacity.BandChild {
			return "Child Mon-Fri Core Hours", 1550, true
		}
		return "", 0, false
	}

	total, lines := ProjectRevenue(distribution, pricer)

	assert.Equal(t, 15500.0, total)
	require.Len(t, lines, 2) // zero-children bucket skipped
	assert.Equal(t, 15500.0, lines[0].Revenue)
	assert.Equal(t, 0.0, lines[1].Revenue) // unpriced combination
}
