package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMix() Mix {
	return Mix{
		InfantPercent:   20,
		ChildPercent:    80,
		CorePercent:     50,
		ExtendedPercent: 50,
		FullPercent:     60,
		MWFPercent:      30,
		TThPercent:      10,
	}
}

func TestMixValidate(t *testing.T) {
	require.NoError(t, defaultMix().Validate())

	bad := defaultMix()
	bad.InfantPercent = 30
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age mix")

	badDays := defaultMix()
	badDays.TThPercent = 25
	err = badDays.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "days mix")
}

func TestDistribute_SumsToTotal(t *testing.T) {
	for _, total := range []int{0, 1, 7, 50, 99, 100, 137} {
		buckets, err := Distribute(defaultMix(), total)
		require.NoError(t, err)
		require.Len(t, buckets, 12)

		sum := 0
		for _, b := range buckets {
			sum += b.Children
			assert.GreaterOrEqual(t, b.Children, 0)
		}
		assert.Equal(t, total, sum, "distribution must sum to %d", total)
	}
}

func TestDistribute_FollowsMixProportions(t *testing.T) {
	buckets, err := Distribute(defaultMix(), 100)
	require.NoError(t, err)

	infants := 0
	core := 0
	for _, b := range buckets {
		if b.Band == BandInfant {
			infants += b.Children
		}
		if b.Schedule == ScheduleCore {
			core += b.Children
		}
	}

	// 20% infants, 50% core, give or take remainder assignment
	assert.InDelta(t, 20, infants, 2)
	assert.InDelta(t, 50, core, 2)
}

func TestDistribute_RejectsNegativeTotal(t *testing.T) {
	_, err := Distribute(defaultMix(), -1)
	require.Error(t, err)
}

func TestAttendance(t *testing.T) {
	buckets := []Bucket{
		{Pattern: DaysFull, Band: BandInfant, Children: 4},
		{Pattern: DaysMWF, Band: BandChild, Children: 9},
		{Pattern: DaysTTh, Band: BandChild, Children: 6},
	}

	att := Attendance(buckets)

	assert.Equal(t, DayAttendance{Infants: 4, Children: 9, Total: 13}, att["Monday"])
	assert.Equal(t, DayAttendance{Infants: 4, Children: 6, Total: 10}, att["Tuesday"])
	assert.Equal(t, DayAttendance{Infants: 4, Children: 9, Total: 13}, att["Wednesday"])
	assert.Equal(t, DayAttendance{Infants: 4, Children: 6, Total: 10}, att["Thursday"])
	assert.Equal(t, DayAttendance{Infants: 4, Children: 9, Total: 13}, att["Friday"])
}

func TestBuildPlan(t *testing.T) {
	rates := StaffRates{TeacherRate: 25, AideRate: 18}

	plan, err := BuildPlan(defaultMix(), 50, rates)
	require.NoError(t, err)

	assert.Equal(t, 50, plan.TotalChildren)
	assert.Len(t, plan.Distribution, 12)
	assert.Len(t, plan.DailyAttendance, 5)

	req := plan.Requirements
	assert.Contains(t, Weekdays, req.PeakDay)
	assert.Equal(t, req.PeakInfants+req.PeakChildren, req.PeakTotal)
	assert.Equal(t, ceilDiv(req.PeakInfants, InfantRatio), req.InfantTeachers)
	assert.Equal(t, ceilDiv(req.PeakChildren, ChildRatio), req.ChildTeachers)
	assert.Equal(t, req.InfantTeachers+req.ChildTeachers, req.TotalTeachers)

	// Enhanced options exist whenever children attend on the peak day.
	require.Len(t, req.EnhancedOptions, 2)
	assert.Equal(t, "1:15", req.EnhancedOptions[0].Ratio)
	assert.Equal(t, "1:18", req.EnhancedOptions[1].Ratio)
	assert.Equal(t, req.EnhancedOptions[0].TeachersNeeded*2, req.EnhancedOptions[0].TotalStaff)

	assert.Positive(t, plan.Labor.TotalPositions)
	assert.Positive(t, plan.Labor.MonthlyCost)
}

func TestBuildPlan_ZeroChildren(t *testing.T) {
	plan, err := BuildPlan(defaultMix(), 0, StaffRates{TeacherRate: 25, AideRate: 18})
	require.NoError(t, err)

	assert.Equal(t, 0, plan.Requirements.TotalTeachers)
	assert.Empty(t, plan.Requirements.EnhancedOptions)
	assert.Equal(t, 0, plan.Labor.TotalPositions)
	assert.Equal(t, 0.0, plan.Labor.MonthlyCostPerChild)
}
