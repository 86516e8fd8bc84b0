package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/core/pricing"
	"github.com/cedarhouse/staffadmin/pkg/core/staffing"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// DashboardStore defines the database operations needed for the dashboard
type DashboardStore interface {
	GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error)
	GetStaffMembers(ctx context.Context) ([]db.StaffMember, error)
	GetCorePlans(ctx context.Context) ([]db.CorePlan, error)
	GetFixedExpenses(ctx context.Context) ([]db.FixedExpense, error)
	GetPerChildCosts(ctx context.Context) ([]db.PerChildCost, error)
}

// EnrollmentSnapshot summarises planned enrollment against licensed capacity.
type EnrollmentSnapshot struct {
	TotalChildren      int
	MaxCapacity        int
	UtilizationPercent float64
	Infants            int
	Children           int
}

// StaffingSnapshot summarises the roster.
type StaffingSnapshot struct {
	TotalStaff         int
	AvailableStaff     int
	Supervisors        int
	SupervisorCapacity int
	TeachersNeeded     int
	AdequatelyStaffed  bool
}

// FinancialSnapshot summarises projected monthly money flows.
type FinancialSnapshot struct {
	RevenuePotential float64
	RevenueLines     []pricing.PlanRevenue
	LaborCost        float64
	FixedExpenses    float64
	PerChildCosts    float64
	ProjectedMargin  float64
}

// Dashboard is the admin overview assembled from every configured piece.
type Dashboard struct {
	Enrollment EnrollmentSnapshot
	Staffing   StaffingSnapshot
	Financial  FinancialSnapshot
	PeakDay    string
}

// BuildDashboard assembles the admin overview: planned enrollment and
// utilization, roster readiness against the peak day, and projected revenue
// against labor and operating expenses. Revenue uses the priced fixed plans
// matched to each distribution bucket; unpriced buckets contribute zero.
func BuildDashboard(ctx context.Context, store DashboardStore, logger *zap.Logger) (*Dashboard, error) {
	settings, err := store.GetCapacitySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch capacity settings: %w", err)
	}

	staffRecords, err := store.GetStaffMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff members: %w", err)
	}

	plans, err := store.GetCorePlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch core plans: %w", err)
	}

	var available []model.StaffMember
	for _, s := range staffRecords {
		m := s.ToModel()
		if m.Available {
			available = append(available, m)
		}
	}

	plan, err := capacity.BuildPlan(MixFromSettings(settings), settings.TotalChildren, capacity.RatesFromRoster(available))
	if err != nil {
		return nil, fmt.Errorf("failed to build capacity plan: %w", err)
	}

	var infants, children int
	for _, b := range plan.Distribution {
		if b.Band == capacity.BandInfant {
			infants += b.Children
		} else {
			children += b.Children
		}
	}

	d := &Dashboard{
		Enrollment: EnrollmentSnapshot{
			TotalChildren: settings.TotalChildren,
			MaxCapacity:   settings.MaxCapacity,
			Infants:       infants,
			Children:      children,
		},
		PeakDay: plan.Requirements.PeakDay,
	}
	if settings.MaxCapacity > 0 {
		d.Enrollment.UtilizationPercent = round2(float64(settings.TotalChildren) / float64(settings.MaxCapacity) * 100)
	}

	supCap := staffing.CalculateSupervisorCapacity(available)
	supervisors := 0
	for _, lc := range supCap.Breakdown {
		supervisors += lc.Count
	}
	d.Staffing = StaffingSnapshot{
		TotalStaff:         len(staffRecords),
		AvailableStaff:     len(available),
		Supervisors:        supervisors,
		SupervisorCapacity: supCap.MaxAssistants,
		TeachersNeeded:     plan.Requirements.TotalTeachers,
		AdequatelyStaffed:  len(available) >= plan.Requirements.TotalTeachers,
	}

	revenue, lines := pricing.ProjectRevenue(plan.Distribution, fixedPlanPricer(plans))

	expenses, err := SummarizeExpenses(ctx, store, logger)
	if err != nil {
		return nil, err
	}

	d.Financial = FinancialSnapshot{
		RevenuePotential: revenue,
		RevenueLines:     lines,
		LaborCost:        plan.Labor.MonthlyCost,
		FixedExpenses:    expenses.FixedTotal,
		PerChildCosts:    expenses.PerChildTotal,
		ProjectedMargin:  round2(revenue - plan.Labor.MonthlyCost - expenses.MonthlyTotal),
	}

	logger.Info("Dashboard assembled",
		zap.Int("total_children", settings.TotalChildren),
		zap.Float64("revenue_potential", revenue),
		zap.Float64("projected_margin", d.Financial.ProjectedMargin))

	return d, nil
}

// fixedPlanPricer resolves bucket plan prices from the priced fixed plans.
func fixedPlanPricer(plans []db.CorePlan) pricing.PlanPricer {
	type combo struct {
		schedule string
		pattern  string
		band     string
	}
	byCombo := make(map[combo]db.CorePlan)
	for _, p := range plans {
		if !p.IsFixedPlan || !p.Active {
			continue
		}
		byCombo[combo{p.Schedule, p.Pattern, p.Band}] = p
	}

	return func(s capacity.ScheduleType, pat capacity.DayPattern, b capacity.AgeBand) (string, float64, bool) {
		p, ok := byCombo[combo{string(s), string(pat), string(b)}]
		if !ok {
			return "", 0, false
		}
		monthly := pricing.Plan{
			Name:          p.Name,
			BasePrice:     p.BasePrice,
			BillingPeriod: pricing.BillingPeriod(p.BillingPeriod),
		}.MonthlyPrice()
		return p.Name, monthly, true
	}
}
