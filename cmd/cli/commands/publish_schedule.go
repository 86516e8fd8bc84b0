package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/core/schedule"
	"github.com/cedarhouse/staffadmin/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule [week_start]",
		Short: "Publish the weekly attendance schedule to Google Sheets",
		Long: `Publish the expected weekly attendance schedule to the configured
Google Sheets tab. week_start must be a Monday in YYYY-MM-DD format and
defaults to next Monday.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := resolveWeekStart(args)
			if err != nil {
				return err
			}

			settings, err := app.DB.GetCapacitySettings(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch capacity settings: %w", err)
			}

			distribution, err := capacity.Distribute(services.MixFromSettings(settings), settings.TotalChildren)
			if err != nil {
				return fmt.Errorf("failed to distribute enrollment: %w", err)
			}

			days, err := schedule.BuildWeek(weekStart, distribution)
			if err != nil {
				return fmt.Errorf("failed to build weekly schedule: %w", err)
			}

			client, err := app.Sheets()
			if err != nil {
				return err
			}

			app.Logger.Info("Publishing schedule",
				zap.String("week_start", weekStart.Format("2006-01-02")),
				zap.String("spreadsheet_id", app.Cfg.ScheduleSpreadsheetID),
				zap.String("tab", app.Cfg.ScheduleTab))

			if err := client.PublishSchedule(app.Cfg, days); err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule published!\n\n")
			fmt.Printf("Week of %s:\n", weekStart.Format("2006-01-02"))
			for _, day := range days {
				fmt.Printf("  %-9s %3d children (%d infants, %d 2+)\n",
					day.Weekday, day.Total, day.Infants, day.Children)
			}
			fmt.Println()

			return nil
		},
	}
}

// resolveWeekStart parses the optional week_start argument, defaulting to
// the next Monday. A supplied date must itself be a Monday.
func resolveWeekStart(args []string) (time.Time, error) {
	if len(args) == 0 {
		return nextMonday(time.Now()), nil
	}

	weekStart, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("week_start must be YYYY-MM-DD: %w", err)
	}
	if weekStart.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("week_start must be a Monday, %s is a %s", args[0], weekStart.Weekday())
	}
	return weekStart, nil
}

// nextMonday returns the Monday strictly after t, at midnight UTC.
func nextMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	daysAhead := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return t.AddDate(0, 0, daysAhead)
}
