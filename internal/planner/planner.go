// Package planner is the Planning Core's facade: it wires the
// Availability, Rhythm, Ranker, and Placement engines into the four
// external entry points a host calls (plan, cascade move, conflict
// resolution, drift).
package planner

import (
	"sort"
	"time"

	"github.com/rowanvale/dayforge/internal/availability"
	"github.com/rowanvale/dayforge/internal/cascade"
	"github.com/rowanvale/dayforge/internal/conflict"
	"github.com/rowanvale/dayforge/internal/drift"
	"github.com/rowanvale/dayforge/internal/models"
	"github.com/rowanvale/dayforge/internal/placement"
	"github.com/rowanvale/dayforge/internal/rhythm"
	"github.com/rowanvale/dayforge/internal/validation"
)

// Result is the full placement pass's output: every scheduled task
// (fixed or Done tasks that carry both scheduled times, plus newly placed
// ones), the synthetic breaks the
// Rhythm Engine carved out, anything that could not be scheduled, and any
// advisory warnings.
type Result struct {
	Scheduled   []models.Task
	Breaks      []models.Task
	Unscheduled []models.Task
	Warnings    []string
}

// Plan runs the full placement pass: Availability enumerates free
// windows, Rhythm carves them into focus slots and breaks, and Placement
// walks the Task Ranker's picks onto those slots. It rejects the pass
// outright on an invariant violation in the input — no partial plan is
// ever returned in that case.
func Plan(tasks []models.Task, now time.Time, settings models.Settings) (Result, error) {
	if err := validation.ValidateInput(tasks, settings); err != nil {
		return Result{}, err
	}

	windows := availability.Compute(tasks, now, settings)
	rhythmResult := rhythm.Compute(windows, settings)

	combined := make([]models.Task, 0, len(tasks)+len(rhythmResult.Breaks))
	combined = append(combined, tasks...)
	combined = append(combined, rhythmResult.Breaks...)

	placed := placement.Plan(combined, rhythmResult.WorkSlots, now, settings)

	scheduled := make([]models.Task, 0, len(placed.Placed))
	for _, t := range tasks {
		if (t.IsFixed || t.Status == models.StatusDone) && t.ScheduledStart != nil && t.ScheduledEnd != nil {
			scheduled = append(scheduled, t)
		}
	}
	scheduled = append(scheduled, placed.Placed...)
	sortByStartThenPart(scheduled)

	return Result{
		Scheduled:   scheduled,
		Breaks:      rhythmResult.Breaks,
		Unscheduled: placed.Unscheduled,
		Warnings:    placed.Warnings,
	}, nil
}

// CascadeMove relocates targetID to newStart and propagates the change
// through its dependency graph.
func CascadeMove(tasks []models.Task, targetID string, newStart time.Time, now time.Time) []models.Task {
	return cascade.Move(tasks, targetID, newStart, now)
}

// ResolveConflicts removes overlaps introduced after a plan was produced
// with a single forward right-shift pass.
func ResolveConflicts(tasks []models.Task) []models.Task {
	return conflict.Resolve(tasks)
}

// Drift reports the maximum overrun, in minutes, across incomplete
// scheduled tasks.
func Drift(tasks []models.Task, now time.Time) int {
	return drift.Compute(tasks, now)
}

// sortByStartThenPart orders tasks by scheduled start and, among tasks
// sharing a start, by split part index, per spec §5's ordering guarantee.
func sortByStartThenPart(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.ScheduledStart == nil || b.ScheduledStart == nil {
			return false
		}
		if !a.ScheduledStart.Equal(*b.ScheduledStart) {
			return a.ScheduledStart.Before(*b.ScheduledStart)
		}
		return a.PartIndex < b.PartIndex
	})
}
