package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cedarhouse/staffadmin/pkg/core/services"
)

// CalculateCmd creates the calculate command
func CalculateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate <group_id=count> [group_id=count ...]",
		Short: "Calculate staffing requirements for the given enrollments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enrollments := make(map[string]int, len(args))
			for _, arg := range args {
				groupID, countStr, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("enrollment must be group_id=count, got %q", arg)
				}
				count, err := strconv.Atoi(countStr)
				if err != nil {
					return fmt.Errorf("count for group %q must be a number: %w", groupID, err)
				}
				enrollments[groupID] = count
			}

			result, err := services.CalculateStaffing(app.Ctx, app.DB, app.Logger, enrollments)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Staffing calculated!\n\n")
			for _, g := range result.Groups {
				marker := ""
				if g.EnhancedUsed {
					marker = " (enhanced ratio)"
				}
				fmt.Printf("%-20s %3d children at 1:%-2d -> %d staff%s\n",
					g.GroupName, g.Children, g.Ratio, g.StaffNeeded, marker)
				for _, w := range g.Warnings {
					fmt.Printf("  ⚠️  %s\n", w)
				}
			}

			fmt.Printf("\nTotal Staff Needed: %d\n", result.TotalStaffNeeded)
			fmt.Printf("Available Staff:    %d\n", result.AvailableStaff)
			if result.AdequatelyStaffed {
				fmt.Println("Status:             adequately staffed")
			} else {
				fmt.Println("Status:             UNDERSTAFFED")
			}

			if result.Director != nil {
				fmt.Printf("Director:           %s (%s)\n", result.Director.Name, result.Director.Level)
			}

			for _, w := range result.Warnings {
				fmt.Printf("⚠️  %s\n", w)
			}
			fmt.Println()

			return nil
		},
	}
}
