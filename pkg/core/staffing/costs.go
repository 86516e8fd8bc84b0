package staffing

import (
	"math"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

// Standard working-hour multipliers used for cost projections.
const (
	hoursPerDay   = 8
	hoursPerWeek  = 40
	hoursPerMonth = 160
	hoursPerYear  = 2080
)

// StaffCost is one line of the roster cost breakdown.
type StaffCost struct {
	Name       string
	Level      model.PermitLevel
	HourlyRate float64
}

// CostAnalysis projects the labor cost of the available roster across
// standard working periods.
type CostAnalysis struct {
	TotalHourly       float64
	Daily             float64
	Weekly            float64
	Monthly           float64
	Annual            float64
	AverageHourlyRate float64
	Breakdown         []StaffCost
}

// AnalyzeCosts sums hourly rates across the given staff and projects them to
// daily, weekly, monthly and annual figures.
func AnalyzeCosts(available []model.StaffMember) CostAnalysis {
	var total float64
	breakdown := make([]StaffCost, 0, len(available))
	for _, s := range available {
		total += s.HourlyRate
		breakdown = append(breakdown, StaffCost{Name: s.Name, Level: s.PermitLevel, HourlyRate: s.HourlyRate})
	}

	ca := CostAnalysis{
		TotalHourly: round2(total),
		Daily:       round2(total * hoursPerDay),
		Weekly:      round2(total * hoursPerWeek),
		Monthly:     round2(total * hoursPerMonth),
		Annual:      round2(total * hoursPerYear),
		Breakdown:   breakdown,
	}
	if len(available) > 0 {
		ca.AverageHourlyRate = round2(total / float64(len(available)))
	}
	return ca
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
