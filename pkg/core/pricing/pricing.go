// Package pricing holds the tuition math for plans, add-ons, discounts and
// fees, and the revenue projection over a capacity distribution.
package pricing

import (
	"fmt"
	"math"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
)

// WeeksPerMonth converts weekly prices to monthly ones.
const WeeksPerMonth = 4.33

// BillingPeriod is how a core plan is billed.
type BillingPeriod string

const (
	BillWeekly  BillingPeriod = "weekly"
	BillMonthly BillingPeriod = "monthly"
)

// AddOnPricing is how an add-on is charged.
type AddOnPricing string

const (
	PerDay       AddOnPricing = "per_day"       // price per attended day
	TimeBased    AddOnPricing = "time_based"    // price per block of minutes
	OneTime      AddOnPricing = "one_time"      // charged once, not monthly
	ExtendedCare AddOnPricing = "extended_care" // flat monthly extended-care charge
)

// DiscountType is how a discount is expressed.
type DiscountType string

const (
	Percentage DiscountType = "percentage"
	Fixed      DiscountType = "fixed"
)

// DiscountScope is what part of the bill a discount applies to.
type DiscountScope string

const (
	ScopeCorePlan DiscountScope = "core_plan"
	ScopeAddOns   DiscountScope = "add_ons"
	ScopeTotal    DiscountScope = "total"
	ScopeFees     DiscountScope = "fees"
)

// Plan is the priced part of a core plan.
type Plan struct {
	Name          string
	BasePrice     float64
	BillingPeriod BillingPeriod
}

// MonthlyPrice normalises the plan price to a monthly figure.
func (p Plan) MonthlyPrice() float64 {
	if p.BillingPeriod == BillWeekly {
		return round2(p.BasePrice * WeeksPerMonth)
	}
	return p.BasePrice
}

// AddOnCharge is an add-on with the quantity it is taken at: days per week
// for per-day add-ons, minutes for time-based ones.
type AddOnCharge struct {
	Name        string
	Pricing     AddOnPricing
	Price       float64 // base price, or rate per MinutesUnit
	MinutesUnit int     // for time_based: price per this many minutes
	Quantity    int
}

// MonthlyCost is the monthly cost of the add-on at its quantity. One-time
// add-ons contribute nothing monthly.
func (a AddOnCharge) MonthlyCost() (float64, error) {
	switch a.Pricing {
	case PerDay:
		return round2(a.Price * float64(a.Quantity) * WeeksPerMonth), nil
	case TimeBased:
		unit := a.MinutesUnit
		if unit <= 0 {
			unit = 1
		}
		blocks := math.Ceil(float64(a.Quantity) / float64(unit))
		// Time-based add-ons are billed per attended day across the month.
		return round2(a.Price * blocks * 5 * WeeksPerMonth), nil
	case OneTime:
		return 0, nil
	case ExtendedCare:
		return a.Price, nil
	default:
		return 0, fmt.Errorf("unknown add-on pricing type %q", a.Pricing)
	}
}

// Discount reduces part of the bill.
type Discount struct {
	Name   string
	Type   DiscountType
	Amount float64 // percentage points or dollars
	Scope  DiscountScope
}

func (d Discount) applyTo(amount float64) float64 {
	switch d.Type {
	case Percentage:
		return amount * d.Amount / 100
	case Fixed:
		return d.Amount
	}
	return 0
}

// Fee is a one-time charge reported alongside, not inside, monthly tuition.
type Fee struct {
	Name       string
	Amount     float64
	Refundable bool
}

// Quote is the priced-out result for an enrollment package.
type Quote struct {
	CorePlanMonthly float64
	AddOnsMonthly   float64
	DiscountTotal   float64
	MonthlyTuition  float64
	OneTimeFees     float64
}

// QuotePackage prices a package: normalised core plan + add-ons − discounts,
// with one-time fees totalled separately.
func QuotePackage(plan Plan, addOns []AddOnCharge, discounts []Discount, fees []Fee) (*Quote, error) {
	q := &Quote{CorePlanMonthly: plan.MonthlyPrice()}

	for _, a := range addOns {
		cost, err := a.MonthlyCost()
		if err != nil {
			return nil, fmt.Errorf("add-on %q: %w", a.Name, err)
		}
		q.AddOnsMonthly += cost
		if a.Pricing == OneTime {
			q.OneTimeFees += a.Price
		}
	}
	q.AddOnsMonthly = round2(q.AddOnsMonthly)

	for _, f := range fees {
		q.OneTimeFees += f.Amount
	}
	q.OneTimeFees = round2(q.OneTimeFees)

	subtotal := q.CorePlanMonthly + q.AddOnsMonthly
	for _, d := range discounts {
		switch d.Scope {
		case ScopeCorePlan:
			q.DiscountTotal += d.applyTo(q.CorePlanMonthly)
		case ScopeAddOns:
			q.DiscountTotal += d.applyTo(q.AddOnsMonthly)
		case ScopeTotal:
			q.DiscountTotal += d.applyTo(subtotal)
		case ScopeFees:
			q.OneTimeFees = round2(math.Max(0, q.OneTimeFees-d.applyTo(q.OneTimeFees)))
		}
	}
	q.DiscountTotal = round2(q.DiscountTotal)

	q.MonthlyTuition = round2(math.Max(0, subtotal-q.DiscountTotal))
	return q, nil
}

// PlanRevenue is one line of a revenue projection.
type PlanRevenue struct {
	PlanName string
	Children int
	Price    float64
	Revenue  float64
}

// PlanPricer resolves the monthly price of a fixed plan combination.
// Combinations without a configured plan price at zero.
type PlanPricer func(s capacity.ScheduleType, p capacity.DayPattern, b capacity.AgeBand) (name string, price float64, ok bool)

// ProjectRevenue estimates monthly revenue from a capacity distribution and
// the configured fixed-plan prices.
func ProjectRevenue(distribution []capacity.Bucket, price PlanPricer) (float64, []PlanRevenue) {
	var total float64
	var lines []PlanRevenue

	for _, b := range distribution {
		if b.Children == 0 {
			continue
		}
		name, p, ok := price(b.Schedule, b.Pattern, b.Band)
		if !ok {
			name, p = b.PlanName, 0
		}
		line := PlanRevenue{
			PlanName: name,
			Children: b.Children,
			Price:    p,
			Revenue:  round2(float64(b.Children) * p),
		}
		total += line.Revenue
		lines = append(lines, line)
	}

	return round2(total), lines
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
