package capacity

import (
	"math"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

// Shift hours include a 30-minute buffer before and after program time.
// Extended days run two shifts so nobody crosses the 8-hour overtime line.
const (
	CoreShiftHours  = 7.0 // 8:30am - 3:30pm, single shift
	ExtendedAMHours = 6.0 // 7:00am - 1:00pm
	ExtendedPMHours = 5.5 // 12:30pm - 6:00pm, 30-min overlap for handoff
)

// Default rates used when the roster has no staff of the relevant kind.
const (
	DefaultTeacherRate = 25.00
	DefaultAideRate    = 18.00
)

const weeksPerMonth = 4.33

// StaffRates carries the average hourly rates used for labor costing.
type StaffRates struct {
	TeacherRate  float64
	AideRate     float64
	TeacherCount int
	AideCount    int
}

// RatesFromRoster derives average teacher and aide rates from the available
// roster. Teacher level and above counts as a teacher; everyone else is an
// aide. Falls back to default rates when a kind is absent.
func RatesFromRoster(available []model.StaffMember) StaffRates {
	var teacherTotal, aideTotal float64
	rates := StaffRates{}
	for _, s := range available {
		if s.PermitLevel.AtLeast(model.LevelTeacher) {
			rates.TeacherCount++
			teacherTotal += s.HourlyRate
		} else {
			rates.AideCount++
			aideTotal += s.HourlyRate
		}
	}

	rates.TeacherRate = DefaultTeacherRate
	if rates.TeacherCount > 0 {
		rates.TeacherRate = round2(teacherTotal / float64(rates.TeacherCount))
	}
	rates.AideRate = DefaultAideRate
	if rates.AideCount > 0 {
		rates.AideRate = round2(aideTotal / float64(rates.AideCount))
	}
	return rates
}

// ShiftPlan describes one staffed shift in the labor model.
type ShiftPlan struct {
	Name        string
	Hours       float64
	Schedule    string
	StaffNeeded int
}

// LaborCosts is the projected labor cost of covering a distribution.
type LaborCosts struct {
	Shifts [3]ShiftPlan

	CorePositions     int
	ExtendedPositions int // AM + PM combined
	TotalPositions    int

	DailyHours  float64
	WeeklyHours float64

	DailyCost           float64
	WeeklyCost          float64
	MonthlyCost         float64
	MonthlyCostPerChild float64
	AverageTeacherRate  float64
	AverageAideRate     float64
}

// laborForDistribution costs out the staffing implied by a distribution.
// Core programs run one shift; extended programs need AM and PM coverage.
func laborForDistribution(distribution []Bucket, rates StaffRates, totalChildren int) LaborCosts {
	var coreInfants, coreChildren, extInfants, extChildren int
	for _, b := range distribution {
		switch {
		case b.Schedule == ScheduleCore && b.Band == BandInfant:
			coreInfants += b.Children
		case b.Schedule == ScheduleCore:
			coreChildren += b.Children
		case b.Band == BandInfant:
			extInfants += b.Children
		default:
			extChildren += b.Children
		}
	}
	day := DailyLabor(coreInfants, coreChildren, extInfants, extChildren, rates)

	lc := LaborCosts{
		Shifts: [3]ShiftPlan{
			{Name: "core", Hours: CoreShiftHours, Schedule: "8:30am - 3:30pm", StaffNeeded: day.CorePositions},
			{Name: "extended_am", Hours: ExtendedAMHours, Schedule: "7:00am - 1:00pm", StaffNeeded: day.ExtendedPositionsPerShift},
			{Name: "extended_pm", Hours: ExtendedPMHours, Schedule: "12:30pm - 6:00pm", StaffNeeded: day.ExtendedPositionsPerShift},
		},
		CorePositions:      day.CorePositions,
		ExtendedPositions:  day.ExtendedPositionsPerShift * 2,
		TotalPositions:     day.TotalPositions,
		DailyHours:         round1(day.TotalHours),
		WeeklyHours:        round1(day.TotalHours * 5),
		DailyCost:          day.Cost,
		WeeklyCost:         round2(day.Cost * 5),
		MonthlyCost:        round2(day.Cost * 5 * weeksPerMonth),
		AverageTeacherRate: rates.TeacherRate,
		AverageAideRate:    rates.AideRate,
	}
	if totalChildren > 0 {
		lc.MonthlyCostPerChild = round2(lc.MonthlyCost / float64(totalChildren))
	}
	return lc
}

// DayLabor is the labor requirement for a single operating day.
type DayLabor struct {
	CorePositions             int
	ExtendedPositionsPerShift int
	TotalPositions            int

	CoreHours       float64
	ExtendedAMHours float64
	ExtendedPMHours float64
	TotalHours      float64

	Cost float64
	Rate float64
}

// DailyLabor calculates positions, hours and cost for one day from actual
// enrollment counts per schedule type and age band.
func DailyLabor(coreInfants, coreChildren, extInfants, extChildren int, rates StaffRates) DayLabor {
	corePositions := ceilDiv(coreInfants, InfantRatio) + ceilDiv(coreChildren, ChildRatio)
	extPositions := ceilDiv(extInfants, InfantRatio) + ceilDiv(extChildren, ChildRatio)

	d := DayLabor{
		CorePositions:             corePositions,
		ExtendedPositionsPerShift: extPositions,
		TotalPositions:            corePositions + extPositions*2,
		CoreHours:                 float64(corePositions) * CoreShiftHours,
		ExtendedAMHours:           float64(extPositions) * ExtendedAMHours,
		ExtendedPMHours:           float64(extPositions) * ExtendedPMHours,
		Rate:                      rates.TeacherRate,
	}
	d.TotalHours = d.CoreHours + d.ExtendedAMHours + d.ExtendedPMHours
	d.Cost = round2(d.TotalHours * rates.TeacherRate)
	return d
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
