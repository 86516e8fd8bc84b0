package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/core/pricing"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// ProjectionsStore defines the database operations needed for financial
// projections
type ProjectionsStore interface {
	GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error)
	GetStaffMembers(ctx context.Context) ([]db.StaffMember, error)
	GetCorePlans(ctx context.Context) ([]db.CorePlan, error)
	GetFixedExpenses(ctx context.Context) ([]db.FixedExpense, error)
	GetPerChildCosts(ctx context.Context) ([]db.PerChildCost, error)
}

// ProjectionSummary is the monthly and annual profit-and-loss picture.
type ProjectionSummary struct {
	MonthlyRevenue  float64
	MonthlyExpenses float64
	MonthlyProfit   float64
	AnnualRevenue   float64
	AnnualExpenses  float64
	AnnualProfit    float64

	ProfitMarginPercent float64
	Profitable          bool
}

// ProjectionRevenue breaks projected revenue down by plan.
type ProjectionRevenue struct {
	Total    float64
	Lines    []pricing.PlanRevenue
	PerChild float64
}

// ProjectionExpenses splits projected expenses into labor, fixed and
// enrollment-variable components.
type ProjectionExpenses struct {
	Labor    float64
	Fixed    float64
	Variable float64
	Total    float64

	FixedByCategory map[string]float64
	VariableLines   []PerChildLine
	PerChild        float64
}

// ProjectionMetrics carries the derived viability figures, break-even
// enrollment included.
type ProjectionMetrics struct {
	LaborPercentOfRevenue float64
	RevenuePerChild       float64
	CostPerChild          float64

	BreakEvenChildren    int
	CurrentEnrollment    int
	MarginAboveBreakEven int
	UtilizationPercent   float64
}

// Projections is the full financial projection built from the capacity
// settings, fixed-plan prices, roster rates and expense configuration.
type Projections struct {
	Summary  ProjectionSummary
	Revenue  ProjectionRevenue
	Expenses ProjectionExpenses
	Metrics  ProjectionMetrics
}

// BuildProjections assembles the monthly and annual P&L from the planned
// enrollment: revenue from the priced fixed plans matched to the capacity
// distribution, labor from the shift model at roster rates, and fixed plus
// per-child operating expenses. Break-even treats labor and per-child costs
// as scaling with enrollment and fixed expenses as constant.
func BuildProjections(ctx context.Context, store ProjectionsStore, logger *zap.Logger) (*Projections, error) {
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

	revenue, lines := pricing.ProjectRevenue(plan.Distribution, fixedPlanPricer(plans))

	expenses, err := SummarizeExpenses(ctx, store, logger)
	if err != nil {
		return nil, err
	}

	labor := plan.Labor.MonthlyCost
	totalExpenses := round2(labor + expenses.FixedTotal + expenses.PerChildTotal)
	profit := round2(revenue - totalExpenses)

	p := &Projections{
		Summary: ProjectionSummary{
			MonthlyRevenue:  round2(revenue),
			MonthlyExpenses: totalExpenses,
			MonthlyProfit:   profit,
			AnnualRevenue:   round2(revenue * 12),
			AnnualExpenses:  round2(totalExpenses * 12),
			AnnualProfit:    round2(profit * 12),
			Profitable:      profit > 0,
		},
		Revenue: ProjectionRevenue{
			Total: round2(revenue),
			Lines: lines,
		},
		Expenses: ProjectionExpenses{
			Labor:           labor,
			Fixed:           expenses.FixedTotal,
			Variable:        expenses.PerChildTotal,
			Total:           totalExpenses,
			FixedByCategory: expenses.FixedByCategory,
			VariableLines:   expenses.PerChildLines,
		},
		Metrics: ProjectionMetrics{
			CurrentEnrollment: settings.TotalChildren,
		},
	}

	if revenue > 0 {
		p.Summary.ProfitMarginPercent = round1(profit / revenue * 100)
		p.Metrics.LaborPercentOfRevenue = round1(labor / revenue * 100)
	}

	if settings.TotalChildren > 0 {
		p.Revenue.PerChild = round2(revenue / float64(settings.TotalChildren))
		p.Expenses.PerChild = round2(totalExpenses / float64(settings.TotalChildren))
		p.Metrics.RevenuePerChild = p.Revenue.PerChild
		p.Metrics.CostPerChild = p.Expenses.PerChild

		// Labor and per-child costs scale with enrollment; fixed expenses
		// must be covered by the per-child contribution margin.
		variablePerChild := (labor + expenses.PerChildTotal) / float64(settings.TotalChildren)
		if p.Revenue.PerChild > variablePerChild {
			p.Metrics.BreakEvenChildren = int(math.Ceil(expenses.FixedTotal / (p.Revenue.PerChild - variablePerChild)))
		}
	}
	p.Metrics.MarginAboveBreakEven = settings.TotalChildren - p.Metrics.BreakEvenChildren

	maxCapacity := settings.MaxCapacity
	if maxCapacity == 0 {
		maxCapacity = 100
	}
	p.Metrics.UtilizationPercent = round1(float64(settings.TotalChildren) / float64(maxCapacity) * 100)

	logger.Info("Projections built",
		zap.Float64("monthly_revenue", p.Summary.MonthlyRevenue),
		zap.Float64("monthly_profit", p.Summary.MonthlyProfit),
		zap.Int("break_even_children", p.Metrics.BreakEvenChildren))

	return p, nil
}

// Sensitivity variables.
const (
	SensitivityEnrollment    = "enrollment"
	SensitivityPrice         = "price"
	SensitivityLabor         = "labor"
	SensitivityFixedExpenses = "fixed_expenses"
)

// sensitivityVariables in report order.
var sensitivityVariables = []string{
	SensitivityEnrollment,
	SensitivityPrice,
	SensitivityLabor,
	SensitivityFixedExpenses,
}

// sensitivityChanges are the percentage deltas each variable is swept over.
var sensitivityChanges = []float64{-20, -10, 0, 10, 20}

// SensitivityScenario is the projected outcome of one variable change.
type SensitivityScenario struct {
	Variable      string
	ChangePercent float64
	NewRevenue    float64
	NewExpenses   float64
	NewProfit     float64
	ProfitChange  float64
	Profitable    bool
}

// SensitivityGroup collects the swept scenarios for one variable.
type SensitivityGroup struct {
	Variable  string
	Scenarios []SensitivityScenario
}

// AnalyzeSensitivity sweeps each sensitivity variable over ±10/20% changes
// against the base projections.
func AnalyzeSensitivity(base *Projections) []SensitivityGroup {
	groups := make([]SensitivityGroup, 0, len(sensitivityVariables))
	for _, variable := range sensitivityVariables {
		group := SensitivityGroup{Variable: variable}
		for _, change := range sensitivityChanges {
			scenario, err := SensitivityFor(base, variable, change)
			if err != nil {
				continue
			}
			group.Scenarios = append(group.Scenarios, scenario)
		}
		groups = append(groups, group)
	}
	return groups
}

// SensitivityFor projects profit under a percentage change to one variable.
// Enrollment changes scale revenue and both enrollment-driven cost
// components; price changes touch revenue only; labor and fixed-expense
// changes touch their own cost component only.
func SensitivityFor(base *Projections, variable string, changePercent float64) (SensitivityScenario, error) {
	multiplier := 1 + changePercent/100

	var newRevenue, newExpenses float64
	switch variable {
	case SensitivityEnrollment:
		newRevenue = base.Revenue.Total * multiplier
		newExpenses = base.Expenses.Labor*multiplier + base.Expenses.Fixed + base.Expenses.Variable*multiplier
	case SensitivityPrice:
		newRevenue = base.Revenue.Total * multiplier
		newExpenses = base.Expenses.Total
	case SensitivityLabor:
		newRevenue = base.Revenue.Total
		newExpenses = base.Expenses.Labor*multiplier + base.Expenses.Fixed + base.Expenses.Variable
	case SensitivityFixedExpenses:
		newRevenue = base.Revenue.Total
		newExpenses = base.Expenses.Labor + base.Expenses.Fixed*multiplier + base.Expenses.Variable
	default:
		return SensitivityScenario{}, fmt.Errorf("unknown sensitivity variable %q", variable)
	}

	newProfit := newRevenue - newExpenses
	return SensitivityScenario{
		Variable:      variable,
		ChangePercent: changePercent,
		NewRevenue:    round2(newRevenue),
		NewExpenses:   round2(newExpenses),
		NewProfit:     round2(newProfit),
		ProfitChange:  round2(newProfit - base.Summary.MonthlyProfit),
		Profitable:    newProfit > 0,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
