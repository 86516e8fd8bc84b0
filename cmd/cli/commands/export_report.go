package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/core/services"
	"github.com/cedarhouse/staffadmin/pkg/reports"
)

// ExportReportCmd creates the exportReport command
func ExportReportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exportReport <path>",
		Short: "Export the facility report workbook (roster, capacity plan, expenses)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			staff, err := app.DB.GetStaffMembers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch staff: %w", err)
			}
			roster := make([]model.StaffMember, 0, len(staff))
			for _, s := range staff {
				roster = append(roster, s.ToModel())
			}

			capacityPlan, err := services.PlanCapacity(app.Ctx, app.DB, app.Logger)
			if err != nil {
				return err
			}

			expenses, err := services.SummarizeExpenses(app.Ctx, app.DB, app.Logger)
			if err != nil {
				return err
			}

			data := reports.Data{
				Roster:   roster,
				Capacity: capacityPlan.Plan,
				Expenses: expenses,
			}
			if err := reports.WriteFile(path, data); err != nil {
				return err
			}

			app.Logger.Info("Report exported", zap.String("path", path))

			fmt.Printf("\n✓ Report exported!\n\n")
			fmt.Printf("Path:      %s\n", path)
			fmt.Printf("Staff:     %d\n", len(roster))
			fmt.Printf("Children:  %d\n", capacityPlan.Plan.TotalChildren)
			fmt.Printf("Expenses:  $%.2f/month\n\n", expenses.MonthlyTotal)

			return nil
		},
	}
}
