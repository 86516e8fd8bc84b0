package db

import (
	"time"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

// AgeGroup represents a database age-group record
type AgeGroup struct {
	ID             string
	Name           string
	MinAgeMonths   int
	MaxAgeMonths   int
	Ratio          int // children per one staff member
	EnhancedRatios []model.EnhancedRatio
	CreatedAt      time.Time
}

// ToModel converts the record to a domain age group.
func (g AgeGroup) ToModel() model.AgeGroup {
	return model.AgeGroup{
		ID:             g.ID,
		Name:           g.Name,
		MinAgeMonths:   g.MinAgeMonths,
		MaxAgeMonths:   g.MaxAgeMonths,
		Ratio:          g.Ratio,
		EnhancedRatios: g.EnhancedRatios,
	}
}

// StaffMember represents a database staff record
type StaffMember struct {
	ID                        string
	Name                      string
	PermitLevel               string
	Available                 bool
	HourlyRate                float64
	ECEUnits                  int
	HasInfantSpecialization   bool
	FullyQualified            bool
	IsDirector                bool
	DirectorCountsTowardRatio bool
	CreatedAt                 time.Time
}

// ToModel converts the record to a domain staff member.
func (s StaffMember) ToModel() model.StaffMember {
	return model.StaffMember{
		ID:                        s.ID,
		Name:                      s.Name,
		PermitLevel:               model.PermitLevel(s.PermitLevel),
		Available:                 s.Available,
		HourlyRate:                s.HourlyRate,
		ECEUnits:                  s.ECEUnits,
		HasInfantSpecialization:   s.HasInfantSpecialization,
		FullyQualified:            s.FullyQualified,
		IsDirector:                s.IsDirector,
		DirectorCountsTowardRatio: s.DirectorCountsTowardRatio,
	}
}

// CorePlan represents a database core-plan record. Fixed plans carry the
// schedule/pattern/band combination they belong to.
type CorePlan struct {
	ID            string
	Name          string
	Description   string
	BasePrice     float64
	BillingPeriod string // weekly or monthly
	Schedule      string // core or extended, empty for custom plans
	Pattern       string // full, mwf or tth, empty for custom plans
	Band          string // infant or child, empty for custom plans
	IsFixedPlan   bool
	StartTime     string
	EndTime       string
	Active        bool
	CreatedAt     time.Time
}

// AddOn represents a database add-on record
type AddOn struct {
	ID          string
	Name        string
	Description string
	Pricing     string // per_day, time_based, one_time, extended_care
	Price       float64
	MinutesUnit int
	Active      bool
	CreatedAt   time.Time
}

// OneTimeFee represents a database one-time fee record
type OneTimeFee struct {
	ID          string
	Name        string
	Description string
	Amount      float64
	FeeType     string // registration, materials, deposit, other
	Refundable  bool
	Active      bool
	CreatedAt   time.Time
}

// Discount represents a database discount record
type Discount struct {
	ID          string
	Name        string
	Description string
	Type        string // percentage or fixed
	Amount      float64
	AppliesTo   string // core_plan, add_ons, total, fees
	Conditions  string
	Active      bool
	CreatedAt   time.Time
}

// FixedExpense represents a database fixed monthly expense record
type FixedExpense struct {
	ID            string
	Name          string
	Category      string // utility, lease, professional, contract
	MonthlyAmount float64
	Description   string
	Active        bool
	CreatedAt     time.Time
}

// PerChildCost represents a database per-child variable cost record
type PerChildCost struct {
	ID          string
	Name        string
	Band        string // infant or child
	Schedule    string // core or extended
	MonthlyRate float64
	Description string
	Active      bool
	CreatedAt   time.Time
}

// CapacitySettings is the singleton capacity-planner settings record: the
// source of truth for enrollment distribution.
type CapacitySettings struct {
	TotalChildren int
	MaxCapacity   int // licensed capacity

	InfantPercent float64
	ChildPercent  float64

	CorePercent     float64
	ExtendedPercent float64

	FullPercent float64
	MWFPercent  float64
	TThPercent  float64

	UpdatedAt time.Time
}
