// Package capacity simulates enrollment distribution and the staffing it
// implies. A capacity plan spreads a total child count across the twelve
// schedule x day-pattern x age-band plan combinations according to
// percentage mixes, then derives daily attendance, the peak day, and the
// staff required to cover it.
package capacity

import (
	"fmt"
	"sort"
)

// ScheduleType identifies the operating-hours program.
type ScheduleType string

// DayPattern identifies which weekdays a plan covers.
type DayPattern string

// AgeBand splits enrollment into licensing age bands.
type AgeBand string

const (
	ScheduleCore     ScheduleType = "core"     // 9:00 AM - 3:00 PM
	ScheduleExtended ScheduleType = "extended" // 7:30 AM - 5:30 PM

	DaysFull DayPattern = "full" // Mon-Fri
	DaysMWF  DayPattern = "mwf"  // Mon/Wed/Fri
	DaysTTh  DayPattern = "tth"  // Tue/Thu

	BandInfant AgeBand = "infant" // 4 months - 2 years
	BandChild  AgeBand = "child"  // 2+ years
)

// Licensing ratios used for capacity planning.
const (
	InfantRatio = 4  // 1 teacher per 4 infants
	ChildRatio  = 12 // 1 teacher per 12 children, basic
)

var scheduleNames = map[ScheduleType]string{
	ScheduleCore:     "Core Hours",
	ScheduleExtended: "Extended Hours",
}

var patternNames = map[DayPattern]string{
	DaysFull: "Mon-Fri",
	DaysMWF:  "Mon/Wed/Fri",
	DaysTTh:  "Tue/Thu",
}

var patternDayCounts = map[DayPattern]int{
	DaysFull: 5,
	DaysMWF:  3,
	DaysTTh:  2,
}

var bandNames = map[AgeBand]string{
	BandInfant: "Infant",
	BandChild:  "Child",
}

// Weekdays the facility operates, in order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// patternOnDay reports whether a day pattern includes the given weekday.
func patternOnDay(p DayPattern, weekday string) bool {
	switch p {
	case DaysFull:
		return true
	case DaysMWF:
		return weekday == "Monday" || weekday == "Wednesday" || weekday == "Friday"
	case DaysTTh:
		return weekday == "Tuesday" || weekday == "Thursday"
	}
	return false
}

// Mix holds the percentage splits that drive the distribution. Each trio of
// percentages must total 100.
type Mix struct {
	InfantPercent float64
	ChildPercent  float64

	CorePercent     float64
	ExtendedPercent float64

	FullPercent float64
	MWFPercent  float64
	TThPercent  float64
}

// Validate checks that each mix totals 100 percent, within a small tolerance
// for form input rounding.
func (m Mix) Validate() error {
	const tolerance = 0.01
	checks := []struct {
		name  string
		total float64
	}{
		{"age mix", m.InfantPercent + m.ChildPercent},
		{"schedule mix", m.CorePercent + m.ExtendedPercent},
		{"days mix", m.FullPercent + m.MWFPercent + m.TThPercent},
	}
	for _, c := range checks {
		if diff := c.total - 100; diff > tolerance || diff < -tolerance {
			return fmt.Errorf("%s must total 100%%, got %.1f%%", c.name, c.total)
		}
	}
	return nil
}

func (m Mix) bandShare(b AgeBand) float64 {
	if b == BandInfant {
		return m.InfantPercent / 100
	}
	return m.ChildPercent / 100
}

func (m Mix) scheduleShare(s ScheduleType) float64 {
	if s == ScheduleCore {
		return m.CorePercent / 100
	}
	return m.ExtendedPercent / 100
}

func (m Mix) patternShare(p DayPattern) float64 {
	switch p {
	case DaysFull:
		return m.FullPercent / 100
	case DaysMWF:
		return m.MWFPercent / 100
	default:
		return m.TThPercent / 100
	}
}

// Bucket is one plan combination with the children assigned to it.
type Bucket struct {
	Schedule     ScheduleType
	ScheduleName string
	Pattern      DayPattern
	PatternName  string
	DaysCount    int
	Band         AgeBand
	BandName     string
	Children     int
	PlanName     string
}

// DayAttendance is expected attendance for one weekday.
type DayAttendance struct {
	Infants  int
	Children int
	Total    int
}

// EnhancedStaffOption is an alternative child-band staffing arrangement.
type EnhancedStaffOption struct {
	Ratio            string
	Description      string
	TeachersNeeded   int
	AidesNeeded      int
	AideRequirements string
	TotalStaff       int
}

// StaffRequirements is the staffing needed to cover the peak day.
type StaffRequirements struct {
	PeakDay         string
	PeakInfants     int
	PeakChildren    int
	PeakTotal       int
	InfantTeachers  int
	ChildTeachers   int
	TotalTeachers   int
	EnhancedOptions []EnhancedStaffOption
}

// Plan is the full capacity planning result.
type Plan struct {
	TotalChildren   int
	Distribution    []Bucket
	DailyAttendance map[string]DayAttendance
	Requirements    StaffRequirements
	Labor           LaborCosts
}

// PlanCombinations returns the twelve plan combinations in a stable order,
// with zero children assigned.
func PlanCombinations() []Bucket {
	return combinations()
}

// combinations returns the twelve plan combinations in a stable order.
func combinations() []Bucket {
	var out []Bucket
	for _, s := range []ScheduleType{ScheduleCore, ScheduleExtended} {
		for _, p := range []DayPattern{DaysFull, DaysMWF, DaysTTh} {
			for _, b := range []AgeBand{BandInfant, BandChild} {
				out = append(out, Bucket{
					Schedule:     s,
					ScheduleName: scheduleNames[s],
					Pattern:      p,
					PatternName:  patternNames[p],
					DaysCount:    patternDayCounts[p],
					Band:         b,
					BandName:     bandNames[b],
					PlanName:     fmt.Sprintf("%s %s %s", bandNames[b], patternNames[p], scheduleNames[s]),
				})
			}
		}
	}
	return out
}

// Distribute splits totalChildren across the twelve plan combinations
// according to the mix. Counts are floored and the remainder is handed out
// to the buckets with the largest fractional parts, so the distribution
// always sums exactly to totalChildren.
func Distribute(mix Mix, totalChildren int) ([]Bucket, error) {
	if totalChildren < 0 {
		return nil, fmt.Errorf("total children must not be negative, got %d", totalChildren)
	}
	if err := mix.Validate(); err != nil {
		return nil, err
	}

	buckets := combinations()
	fractions := make([]float64, len(buckets))
	assigned := 0
	for i := range buckets {
		raw := float64(totalChildren) *
			mix.bandShare(buckets[i].Band) *
			mix.scheduleShare(buckets[i].Schedule) *
			mix.patternShare(buckets[i].Pattern)
		buckets[i].Children = int(raw)
		fractions[i] = raw - float64(buckets[i].Children)
		assigned += buckets[i].Children
	}

	// Hand out the remainder, largest fractional part first.
	order := make([]int, len(buckets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fractions[order[a]] > fractions[order[b]]
	})
	for i := 0; i < totalChildren-assigned; i++ {
		buckets[order[i%len(order)]].Children++
	}

	return buckets, nil
}

// Attendance computes expected attendance per weekday from a distribution.
func Attendance(distribution []Bucket) map[string]DayAttendance {
	out := make(map[string]DayAttendance, len(Weekdays))
	for _, day := range Weekdays {
		var a DayAttendance
		for _, b := range distribution {
			if !patternOnDay(b.Pattern, day) {
				continue
			}
			if b.Band == BandInfant {
				a.Infants += b.Children
			} else {
				a.Children += b.Children
			}
		}
		a.Total = a.Infants + a.Children
		out[day] = a
	}
	return out
}

// peakDay returns the weekday with the highest total attendance. Ties go to
// the earliest weekday.
func peakDay(attendance map[string]DayAttendance) (string, DayAttendance) {
	best := Weekdays[0]
	for _, day := range Weekdays[1:] {
		if attendance[day].Total > attendance[best].Total {
			best = day
		}
	}
	return best, attendance[best]
}

// BuildPlan runs the full capacity simulation: distribution, attendance,
// peak-day staff requirements, and labor costs at the given rates.
func BuildPlan(mix Mix, totalChildren int, rates StaffRates) (*Plan, error) {
	distribution, err := Distribute(mix, totalChildren)
	if err != nil {
		return nil, err
	}

	attendance := Attendance(distribution)
	peak, peakAtt := peakDay(attendance)

	infantTeachers := ceilDiv(peakAtt.Infants, InfantRatio)
	childTeachers := ceilDiv(peakAtt.Children, ChildRatio)

	req := StaffRequirements{
		PeakDay:        peak,
		PeakInfants:    peakAtt.Infants,
		PeakChildren:   peakAtt.Children,
		PeakTotal:      peakAtt.Total,
		InfantTeachers: infantTeachers,
		ChildTeachers:  childTeachers,
		TotalTeachers:  infantTeachers + childTeachers,
	}

	if peakAtt.Children > 0 {
		at15 := ceilDiv(peakAtt.Children, 15)
		at18 := ceilDiv(peakAtt.Children, 18)
		req.EnhancedOptions = []EnhancedStaffOption{
			{
				Ratio:          "1:15",
				Description:    "1 teacher + 1 aide per group",
				TeachersNeeded: at15,
				AidesNeeded:    at15,
				TotalStaff:     at15 * 2,
			},
			{
				Ratio:            "1:18",
				Description:      "1 teacher + 1 aide (6+ ECE units) per group",
				TeachersNeeded:   at18,
				AidesNeeded:      at18,
				AideRequirements: "6+ ECE units",
				TotalStaff:       at18 * 2,
			},
		}
	}

	plan := &Plan{
		TotalChildren:   totalChildren,
		Distribution:    distribution,
		DailyAttendance: attendance,
		Requirements:    req,
		Labor:           laborForDistribution(distribution, rates, totalChildren),
	}
	return plan, nil
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
