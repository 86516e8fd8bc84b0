package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List all staff members on the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := app.DB.GetStaffMembers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			app.Logger.Info("Staff fetched successfully", zap.Int("count", len(staff)))

			fmt.Printf("\nFound %d staff members:\n\n", len(staff))
			for _, s := range staff {
				status := "available"
				if !s.Available {
					status = "unavailable"
				}
				extra := ""
				if s.IsDirector {
					extra = " [Director]"
				}
				fmt.Printf("- %s (%s) - %s - $%.2f/hr - %d ECE units%s\n",
					s.Name,
					s.PermitLevel,
					status,
					s.HourlyRate,
					s.ECEUnits,
					extra,
				)
			}

			return nil
		},
	}
}
