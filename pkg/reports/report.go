// Package reports renders facility data into spreadsheet workbooks for
// sharing with boards and licensing reviewers.
package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/core/services"
	"github.com/cedarhouse/staffadmin/pkg/core/staffing"
)

// Data carries everything the facility report renders. Staffing is optional;
// when nil the staffing sheet is omitted.
type Data struct {
	Roster   []model.StaffMember
	Capacity *capacity.Plan
	Expenses *services.ExpenseSummary
	Staffing *staffing.Result
}

// WriteFile builds the facility report workbook and saves it to path.
func WriteFile(path string, data Data) error {
	f, err := BuildWorkbook(data)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// BuildWorkbook assembles the report workbook in memory. The caller owns the
// returned file and must close it.
func BuildWorkbook(data Data) (*excelize.File, error) {
	f := excelize.NewFile()

	// The default sheet becomes the roster.
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, "Roster"); err != nil {
		return nil, fmt.Errorf("failed to rename roster sheet: %w", err)
	}
	if err := writeRoster(f, data.Roster); err != nil {
		return nil, err
	}

	if data.Capacity != nil {
		if err := writeCapacity(f, data.Capacity); err != nil {
			return nil, err
		}
	}
	if data.Expenses != nil {
		if err := writeExpenses(f, data.Expenses); err != nil {
			return nil, err
		}
	}
	if data.Staffing != nil {
		if err := writeStaffing(f, data.Staffing); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRoster(f *excelize.File, roster []model.StaffMember) error {
	rows := [][]interface{}{
		{"Name", "Permit Level", "Available", "Hourly Rate", "ECE Units", "Infant Specialization", "Fully Qualified", "Director"},
	}
	for _, s := range roster {
		rows = append(rows, []interface{}{
			s.Name,
			string(s.PermitLevel),
			s.Available,
			s.HourlyRate,
			s.ECEUnits,
			s.HasInfantSpecialization,
			s.FullyQualified,
			s.IsDirector,
		})
	}
	return writeRows(f, "Roster", rows)
}

func writeCapacity(f *excelize.File, plan *capacity.Plan) error {
	if _, err := f.NewSheet("Capacity Plan"); err != nil {
		return fmt.Errorf("failed to create capacity sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Plan", "Schedule", "Days", "Age Band", "Children"},
	}
	for _, b := range plan.Distribution {
		rows = append(rows, []interface{}{
			b.PlanName, b.ScheduleName, b.PatternName, b.BandName, b.Children,
		})
	}

	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Day", "Infants", "Children", "Total"},
	)
	for _, day := range capacity.Weekdays {
		att := plan.DailyAttendance[day]
		rows = append(rows, []interface{}{day, att.Infants, att.Children, att.Total})
	}

	req := plan.Requirements
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Peak Day", req.PeakDay},
		[]interface{}{"Peak Attendance", req.PeakTotal},
		[]interface{}{"Infant Teachers", req.InfantTeachers},
		[]interface{}{"Child Teachers", req.ChildTeachers},
		[]interface{}{"Total Teachers", req.TotalTeachers},
		[]interface{}{"Monthly Labor Cost", plan.Labor.MonthlyCost},
		[]interface{}{"Labor Cost Per Child", plan.Labor.MonthlyCostPerChild},
	)

	return writeRows(f, "Capacity Plan", rows)
}

func writeExpenses(f *excelize.File, summary *services.ExpenseSummary) error {
	if _, err := f.NewSheet("Expenses"); err != nil {
		return fmt.Errorf("failed to create expenses sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Fixed Expense", "Category", "Monthly Amount"},
	}
	for _, e := range summary.FixedExpenses {
		rows = append(rows, []interface{}{e.Name, e.Category, e.MonthlyAmount})
	}
	rows = append(rows, []interface{}{"Fixed Total", "", summary.FixedTotal})

	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Per-Child Cost", "Band", "Schedule", "Children", "Monthly Rate", "Monthly Cost"},
	)
	for _, line := range summary.PerChildLines {
		rows = append(rows, []interface{}{
			line.Name, line.Band, line.Schedule, line.Children, line.MonthlyRate, line.MonthlyCost,
		})
	}

	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Per-Child Total", "", "", "", "", summary.PerChildTotal},
		[]interface{}{"Monthly Total", "", "", "", "", summary.MonthlyTotal},
		[]interface{}{"Average Per Child", "", "", "", "", summary.AveragePerChild},
	)

	return writeRows(f, "Expenses", rows)
}

func writeStaffing(f *excelize.File, result *staffing.Result) error {
	if _, err := f.NewSheet("Staffing"); err != nil {
		return fmt.Errorf("failed to create staffing sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Age Group", "Children", "Ratio", "Staff Needed", "Enhanced Ratio Used"},
	}
	for _, g := range result.Groups {
		rows = append(rows, []interface{}{
			g.GroupName, g.Children, fmt.Sprintf("1:%d", g.Ratio), g.StaffNeeded, g.EnhancedUsed,
		})
	}

	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Total Staff Needed", result.TotalStaffNeeded},
		[]interface{}{"Available Staff", result.AvailableStaff},
		[]interface{}{"Adequately Staffed", result.AdequatelyStaffed},
		[]interface{}{"Available Supervisors", result.AvailableSupervisors},
		[]interface{}{"Max Assistants Supervised", result.SupervisorCapacity.MaxAssistants},
	)
	for _, w := range result.Warnings {
		rows = append(rows, []interface{}{"Warning", w})
	}

	return writeRows(f, "Staffing", rows)
}

// writeRows writes rows top to bottom starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
