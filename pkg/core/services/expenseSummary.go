package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// ExpenseSummaryStore defines the database operations needed for the
// monthly expense summary
type ExpenseSummaryStore interface {
	GetFixedExpenses(ctx context.Context) ([]db.FixedExpense, error)
	GetPerChildCosts(ctx context.Context) ([]db.PerChildCost, error)
	GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error)
}

// PerChildLine is one per-child cost applied to the enrollment it covers.
type PerChildLine struct {
	Name        string
	Band        string
	Schedule    string
	Children    int
	MonthlyRate float64
	MonthlyCost float64
}

// ExpenseSummary is the monthly operating expense picture.
type ExpenseSummary struct {
	FixedExpenses   []db.FixedExpense
	FixedByCategory map[string]float64
	FixedTotal      float64
	PerChildLines   []PerChildLine
	PerChildTotal   float64
	MonthlyTotal    float64
	TotalChildren   int
	AveragePerChild float64
}

// SummarizeExpenses totals fixed monthly expenses by category and applies
// per-child cost rates to the enrollment each rate covers. Enrollment per
// band and schedule comes from the capacity distribution, so per-child
// totals line up with the capacity plan. Inactive records are skipped.
func SummarizeExpenses(ctx context.Context, store ExpenseSummaryStore, logger *zap.Logger) (*ExpenseSummary, error) {
	logger.Debug("Fetching fixed expenses")
	fixed, err := store.GetFixedExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixed expenses: %w", err)
	}

	logger.Debug("Fetching per-child costs")
	perChild, err := store.GetPerChildCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch per-child costs: %w", err)
	}

	settings, err := store.GetCapacitySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch capacity settings: %w", err)
	}

	distribution, err := capacity.Distribute(MixFromSettings(settings), settings.TotalChildren)
	if err != nil {
		return nil, fmt.Errorf("failed to distribute enrollment: %w", err)
	}

	// Children per band+schedule combination.
	type combo struct {
		band     string
		schedule string
	}
	children := make(map[combo]int)
	for _, b := range distribution {
		children[combo{string(b.Band), string(b.Schedule)}] += b.Children
	}

	summary := &ExpenseSummary{
		FixedByCategory: make(map[string]float64),
		TotalChildren:   settings.TotalChildren,
	}

	for _, e := range fixed {
		if !e.Active {
			continue
		}
		summary.FixedExpenses = append(summary.FixedExpenses, e)
		summary.FixedByCategory[e.Category] += e.MonthlyAmount
		summary.FixedTotal += e.MonthlyAmount
	}
	summary.FixedTotal = round2(summary.FixedTotal)

	for _, c := range perChild {
		if !c.Active {
			continue
		}
		n := children[combo{c.Band, c.Schedule}]
		line := PerChildLine{
			Name:        c.Name,
			Band:        c.Band,
			Schedule:    c.Schedule,
			Children:    n,
			MonthlyRate: c.MonthlyRate,
			MonthlyCost: round2(c.MonthlyRate * float64(n)),
		}
		summary.PerChildLines = append(summary.PerChildLines, line)
		summary.PerChildTotal += line.MonthlyCost
	}
	summary.PerChildTotal = round2(summary.PerChildTotal)

	summary.MonthlyTotal = round2(summary.FixedTotal + summary.PerChildTotal)
	if settings.TotalChildren > 0 {
		summary.AveragePerChild = round2(summary.MonthlyTotal / float64(settings.TotalChildren))
	}

	logger.Info("Expense summary built",
		zap.Float64("fixed_total", summary.FixedTotal),
		zap.Float64("per_child_total", summary.PerChildTotal),
		zap.Float64("monthly_total", summary.MonthlyTotal))

	return summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
