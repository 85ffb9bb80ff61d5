package models

import (
	"fmt"
	"time"

	"github.com/rowanvale/dayforge/internal/constants"
)

// Task is the scheduling unit the Planning Core places on the time axis.
//
// A Done task is never mutated by the scheduler. A task with IsFixed set
// is treated as immovable (an appointment, a break, or a task a cascade
// move or conflict resolution has anchored).
type Task struct {
	ID          string
	Title       string
	DurationMin int
	Priority    Priority
	Status      Status
	ProjectID   *string

	// Deadline is a calendar date; callers interpret it as end-of-day via
	// EndOfDay before comparing it to a scheduled moment.
	Deadline *time.Time

	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	IsFixed        bool

	Dependencies []string

	Energy *EnergyBand

	EarliestStart *time.Time
	LatestEnd     *time.Time

	IsTodoList bool

	// Split-part lineage, set by the Placement Engine when a task did not
	// fit in a single slot.
	OriginalTaskID *string
	PartIndex      int
	TotalParts     int

	Reason string
}

// IsBreak reports whether this task is a synthetic break emitted by the
// Rhythm Engine.
func (t Task) IsBreak() bool {
	return t.ProjectID != nil && *t.ProjectID == constants.BreakProjectID
}

// IsSplit reports whether the Placement Engine split this task into
// multiple parts.
func (t Task) IsSplit() bool {
	return t.TotalParts > 1
}

// EndOfDay returns the moment at 23:59:59.999999999 of the calendar day t
// falls on, in t's location. Used to resolve a Task.Deadline (a date) into
// a concrete latest-end moment.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
}

// StartOfDay returns midnight of the calendar day t falls on, in t's
// location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ValidateDuration reports whether minutes is a positive multiple of the
// scheduling grid, per the Task invariant in spec §3.
func ValidateDuration(minutes int) error {
	if minutes <= 0 || minutes%constants.GridMinutes != 0 {
		return fmt.Errorf("duration %dm must be a positive multiple of %dm", minutes, constants.GridMinutes)
	}
	return nil
}

// SplitTitle returns the display title for a split part: "Title (k)" when
// the task was split, the bare title otherwise.
func SplitTitle(title string, partIndex, totalParts int) string {
	if totalParts <= 1 {
		return title
	}
	return fmt.Sprintf("%s (%d)", title, partIndex)
}

// SplitID derives a split-part's identifier from the original task's ID,
// per spec §3: "{id}-part-{k}".
func SplitID(originalID string, partIndex int) string {
	return fmt.Sprintf("%s-part-%d", originalID, partIndex)
}
