// Package availability implements the Availability Engine: turning a task
// list, the current moment, and Settings into the ordered list of free
// scheduling windows the Rhythm and Placement Engines consume.
package availability

import (
	"sort"
	"time"

	"github.com/rowanvale/dayforge/internal/constants"
	"github.com/rowanvale/dayforge/internal/grid"
	"github.com/rowanvale/dayforge/internal/models"
)

// Compute enumerates free windows over the scheduling horizon, subtracting
// every fixed (immovable) event from each active day's work interval.
// Each event's trailing edge is extended by settings.PlanningBufferMinutes
// before subtraction, so a task never gets placed flush against one.
func Compute(tasks []models.Task, now time.Time, settings models.Settings) []models.Slot {
	fixedByDay := indexFixedEvents(tasks)
	buffer := time.Duration(settings.PlanningBufferMinutes) * time.Minute

	var windows []models.Slot
	horizonStart := models.StartOfDay(now)

	for offset := 0; offset <= constants.HorizonDays; offset++ {
		day := horizonStart.AddDate(0, 0, offset)
		if !settings.IsActiveDay(day.Weekday()) {
			continue
		}

		dayWindow, ok := dayInterval(day, now, offset == 0, settings)
		if !ok {
			continue
		}

		dayWindows := []models.Slot{dayWindow}
		for _, event := range fixedByDay[dateKey(day)] {
			bufferedEnd := event.ScheduledEnd.Add(buffer)
			if !grid.Overlaps(dayWindow.Start, dayWindow.End, *event.ScheduledStart, bufferedEnd) {
				continue
			}
			dayWindows = subtract(dayWindows, *event.ScheduledStart, bufferedEnd)
		}

		for _, w := range dayWindows {
			snapped := models.Slot{Start: grid.Ceil15(w.Start), End: grid.Floor15(w.End)}
			if snapped.Minutes() < constants.GridMinutes {
				continue
			}
			windows = append(windows, snapped)
		}
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].Start.Before(windows[j].Start) })
	return windows
}

// dayInterval computes a calendar day's raw work interval, clamped to now
// when it is today. The second return value is false when the day should
// be skipped entirely (today's interval has already elapsed).
func dayInterval(day, now time.Time, isToday bool, settings models.Settings) (models.Slot, bool) {
	start := grid.Ceil15(time.Date(day.Year(), day.Month(), day.Day(), settings.WorkStartHour, 0, 0, 0, day.Location()))
	end := grid.Floor15(time.Date(day.Year(), day.Month(), day.Day(), settings.WorkEndHour, 0, 0, 0, day.Location()))

	if isToday && now.After(start) && now.Before(end) {
		start = grid.Ceil15(now)
	}
	if isToday && !now.Before(end) {
		return models.Slot{}, false
	}
	if !start.Before(end) {
		return models.Slot{}, false
	}
	return models.Slot{Start: start, End: end}, true
}

// subtract removes [evStart, evEnd) from every window in windows, splitting
// a window that straddles the event into up to two remaining pieces.
func subtract(windows []models.Slot, evStart, evEnd time.Time) []models.Slot {
	result := make([]models.Slot, 0, len(windows)+1)
	for _, w := range windows {
		if !grid.Overlaps(w.Start, w.End, evStart, evEnd) {
			result = append(result, w)
			continue
		}
		if evStart.After(w.Start) {
			result = append(result, models.Slot{Start: w.Start, End: evStart})
		}
		if evEnd.Before(w.End) {
			result = append(result, models.Slot{Start: evEnd, End: w.End})
		}
	}
	return result
}

// indexFixedEvents groups immovable, incomplete, fully-scheduled tasks by
// the calendar day their scheduled start falls on.
func indexFixedEvents(tasks []models.Task) map[string][]models.Task {
	byDay := make(map[string][]models.Task)
	for _, t := range tasks {
		if !t.IsFixed || t.Status == models.StatusDone {
			continue
		}
		if t.ScheduledStart == nil || t.ScheduledEnd == nil {
			continue
		}
		key := dateKey(*t.ScheduledStart)
		byDay[key] = append(byDay[key], t)
	}
	return byDay
}

func dateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}
