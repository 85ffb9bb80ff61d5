// Package cli holds the Kong command context shared by every subcommand
// and the small formatting/parsing helpers they have in common.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rowanvale/dayforge/internal/storage"
)

// Context is threaded into every Kong command's Run method.
type Context struct {
	Store storage.Provider
	Now   func() time.Time
}

// ParseWeekdays parses a comma-separated list of weekday names or numbers
// (0=Sunday..6=Saturday) into a sorted-free slice of time.Weekday.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, time.Weekday(n))
	}
	return weekdays, nil
}

// FormatTask renders a one-line summary of a task for list output.
func FormatTask(title string, start, end *time.Time) string {
	if start == nil || end == nil {
		return fmt.Sprintf("%-40s (unscheduled)", title)
	}
	return fmt.Sprintf("%-40s %s - %s", title, start.Format("Mon Jan 2 15:04"), end.Format("15:04"))
}
