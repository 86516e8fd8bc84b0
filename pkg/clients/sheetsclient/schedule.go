package sheetsclient

import (
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/cedarhouse/staffadmin/internal/config"
	"github.com/cedarhouse/staffadmin/pkg/core/schedule"
)

// PublishSchedule writes the weekly attendance schedule to the configured
// spreadsheet tab, replacing whatever the tab held before. The tab is
// created if it does not exist yet.
func (c *Client) PublishSchedule(cfg *config.Config, days []schedule.Day) error {
	if cfg.ScheduleSpreadsheetID == "" {
		return fmt.Errorf("scheduleSpreadsheetID is not configured")
	}

	if err := c.ensureSheet(cfg.ScheduleSpreadsheetID, cfg.ScheduleTab); err != nil {
		return err
	}

	if err := c.clearSheet(cfg.ScheduleSpreadsheetID, cfg.ScheduleTab); err != nil {
		return err
	}

	values := [][]interface{}{
		{"Date", "Day", "Session", "Hours", "Infants", "Children", "Total"},
	}
	for _, day := range days {
		if len(day.Sessions) == 0 {
			values = append(values, []interface{}{
				day.Date.Format("2006-01-02"), day.Weekday, "Closed", "", 0, 0, 0,
			})
			continue
		}
		for _, session := range day.Sessions {
			values = append(values, []interface{}{
				day.Date.Format("2006-01-02"),
				day.Weekday,
				string(session.Schedule),
				fmt.Sprintf("%s - %s", session.Start, session.End),
				session.Infants,
				session.Children,
				session.Infants + session.Children,
			})
		}
	}

	valueRange := &sheets.ValueRange{Values: values}
	_, err := c.service.Spreadsheets.Values.
		Update(cfg.ScheduleSpreadsheetID, cfg.ScheduleTab+"!A1", valueRange).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}

	return nil
}

// ensureSheet creates the tab if the spreadsheet does not have it yet
func (c *Client) ensureSheet(spreadsheetID, title string) error {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == title {
			return nil
		}
	}

	if _, err := c.CreateSheet(spreadsheetID, title); err != nil {
		return err
	}
	return nil
}

// clearSheet clears all values from the tab
func (c *Client) clearSheet(spreadsheetID, title string) error {
	_, err := c.service.Spreadsheets.Values.
		Clear(spreadsheetID, title, &sheets.ClearValuesRequest{}).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear schedule tab: %w", err)
	}
	return nil
}
