// Package schedule expands day patterns into concrete operating dates and
// builds the weekly attendance view shown on the schedule page.
package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
)

// Program hours per schedule type.
const (
	CoreStart     = "9:00 AM"
	CoreEnd       = "3:00 PM"
	ExtendedStart = "7:30 AM"
	ExtendedEnd   = "5:30 PM"
)

// patternRules maps each day pattern to its weekly recurrence rule.
var patternRules = map[capacity.DayPattern]string{
	capacity.DaysFull: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
	capacity.DaysMWF:  "FREQ=WEEKLY;BYDAY=MO,WE,FR",
	capacity.DaysTTh:  "FREQ=WEEKLY;BYDAY=TU,TH",
}

// PatternDates expands a day pattern into the concrete dates it covers
// between from and to, inclusive.
func PatternDates(pattern capacity.DayPattern, from, to time.Time) ([]time.Time, error) {
	ruleStr, ok := patternRules[pattern]
	if !ok {
		return nil, fmt.Errorf("unknown day pattern %q", pattern)
	}

	rule, err := rrule.StrToRRule(ruleStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule for pattern %q: %w", pattern, err)
	}
	rule.DTStart(from)

	return rule.Between(from, to, true), nil
}

// Session is one program block on a given day.
type Session struct {
	Schedule capacity.ScheduleType
	Start    string
	End      string
	Infants  int
	Children int
}

// Day is one operating day in the weekly schedule.
type Day struct {
	Date     time.Time
	Weekday  string
	Sessions []Session
	Infants  int
	Children int
	Total    int
}

// BuildWeek builds the operating schedule for the week starting at weekStart
// (expected to be a Monday) from a capacity distribution. Each operating day
// lists the core and extended sessions with their expected attendance.
func BuildWeek(weekStart time.Time, distribution []capacity.Bucket) ([]Day, error) {
	weekEnd := weekStart.AddDate(0, 0, 4) // Monday through Friday

	// Which dates does each pattern cover this week?
	patternDates := make(map[capacity.DayPattern]map[string]bool)
	for pattern := range patternRules {
		dates, err := PatternDates(pattern, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
		set := make(map[string]bool, len(dates))
		for _, d := range dates {
			set[d.Format("2006-01-02")] = true
		}
		patternDates[pattern] = set
	}

	var days []Day
	for i := 0; i < 5; i++ {
		date := weekStart.AddDate(0, 0, i)
		key := date.Format("2006-01-02")
		day := Day{Date: date, Weekday: date.Weekday().String()}

		for _, sched := range []capacity.ScheduleType{capacity.ScheduleCore, capacity.ScheduleExtended} {
			session := Session{Schedule: sched, Start: CoreStart, End: CoreEnd}
			if sched == capacity.ScheduleExtended {
				session.Start, session.End = ExtendedStart, ExtendedEnd
			}

			for _, b := range distribution {
				if b.Schedule != sched || !patternDates[b.Pattern][key] {
					continue
				}
				if b.Band == capacity.BandInfant {
					session.Infants += b.Children
				} else {
					session.Children += b.Children
				}
			}

			if session.Infants+session.Children > 0 {
				day.Sessions = append(day.Sessions, session)
				day.Infants += session.Infants
				day.Children += session.Children
			}
		}

		day.Total = day.Infants + day.Children
		days = append(days, day)
	}

	return days, nil
}
