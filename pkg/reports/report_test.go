package reports

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/core/services"
	"github.com/cedarhouse/staffadmin/pkg/core/staffing"
)

func testData(t *testing.T) Data {
	t.Helper()

	mix := capacity.Mix{
		InfantPercent: 20, ChildPercent: 80,
		CorePercent: 50, ExtendedPercent: 50,
		FullPercent: 60, MWFPercent: 30, TThPercent: 10,
	}
	plan, err := capacity.BuildPlan(mix, 100, capacity.StaffRates{
		TeacherRate: 30, AideRate: 20, TeacherCount: 2, AideCount: 1,
	})
	require.NoError(t, err)

	return Data{
		Roster: []model.StaffMember{
			{Name: "Maria Lopez", PermitLevel: model.LevelTeacher, Available: true, HourlyRate: 30, ECEUnits: 24},
			{Name: "Dana Reed", PermitLevel: model.LevelAssistant, Available: false, HourlyRate: 18, ECEUnits: 6},
		},
		Capacity: plan,
		Expenses: &services.ExpenseSummary{
			FixedTotal:   5725,
			MonthlyTotal: 5725,
		},
	}
}

func TestBuildWorkbookSheets(t *testing.T) {
	f, err := BuildWorkbook(testData(t))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Roster", "Capacity Plan", "Expenses"}, f.GetSheetList())
}

func TestBuildWorkbookRoster(t *testing.T) {
	f, err := BuildWorkbook(testData(t))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Roster")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Maria Lopez", rows[1][0])
	assert.Equal(t, "Teacher", rows[1][1])
	assert.Equal(t, "Dana Reed", rows[2][0])
}

func TestBuildWorkbookIncludesStaffingSheet(t *testing.T) {
	data := testData(t)
	data.Staffing = &staffing.Result{
		Groups: []staffing.GroupResult{
			{GroupName: "Toddlers", Children: 12, Ratio: 6, StaffNeeded: 2},
		},
		TotalStaffNeeded:  2,
		AvailableStaff:    3,
		AdequatelyStaffed: true,
	}

	f, err := BuildWorkbook(data)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Staffing")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "Toddlers", rows[1][0])
	assert.Equal(t, "1:6", rows[1][2])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facility.xlsx")

	err := WriteFile(path, testData(t))
	require.NoError(t, err)

	assert.FileExists(t, path)
}
