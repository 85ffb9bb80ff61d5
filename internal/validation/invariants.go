// Package validation checks Planning Core inputs for the invariant
// violations spec §7 says must reject the pass outright, and separately
// detects advisory conflicts (duplicate names, overlapping fixed tasks,
// dependency cycles) the way the teacher's validator flagged scheduling
// conflicts before placement.
package validation

import (
	"fmt"
	"strings"

	"github.com/rowanvale/dayforge/internal/models"
)

// InputError reports one or more invariant violations that make a
// Planning Core pass impossible. Per spec §7, the scheduler never returns
// a partial plan when this occurs.
type InputError struct {
	Violations []string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid scheduling input: %s", strings.Join(e.Violations, "; "))
}

// ValidateInput checks the three invariant violations spec §7 names:
// a non-positive-or-unaligned duration, a scheduled start at or after its
// end, and settings whose work end hour does not exceed the start hour.
// It also rejects a task whose earliest start is after its latest end.
// It returns nil when the input is well-formed.
func ValidateInput(tasks []models.Task, settings models.Settings) error {
	var violations []string

	if settings.WorkEndHour <= settings.WorkStartHour {
		violations = append(violations, fmt.Sprintf(
			"settings: work_end_hour (%d) must exceed work_start_hour (%d)",
			settings.WorkEndHour, settings.WorkStartHour))
	}

	for _, task := range tasks {
		if task.Status == models.StatusDone {
			continue // a Done task is never mutated or re-validated
		}
		if err := models.ValidateDuration(task.DurationMin); err != nil {
			violations = append(violations, fmt.Sprintf("task %q: %v", task.ID, err))
		}
		if task.ScheduledStart != nil && task.ScheduledEnd != nil &&
			!task.ScheduledStart.Before(*task.ScheduledEnd) {
			violations = append(violations, fmt.Sprintf(
				"task %q: scheduled start %v is not before scheduled end %v",
				task.ID, task.ScheduledStart, task.ScheduledEnd))
		}
		if task.EarliestStart != nil && task.LatestEnd != nil &&
			task.EarliestStart.After(*task.LatestEnd) {
			violations = append(violations, fmt.Sprintf(
				"task %q: earliest_start %v is after latest_end %v",
				task.ID, task.EarliestStart, task.LatestEnd))
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &InputError{Violations: violations}
}
