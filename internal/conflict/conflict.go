// Package conflict implements the Conflict Resolver: a single forward
// pass that removes overlaps introduced by edits made after a plan was
// produced (a cascade move, a manual edit, a clock skip).
package conflict

import (
	"sort"
	"time"

	"github.com/rowanvale/dayforge/internal/models"
)

const resolvedReason = "Auto-resolved conflict"

// Resolve returns a freshly allocated task list in which no two incomplete
// scheduled tasks overlap. Tasks are sorted by scheduled start; whenever a
// task's end runs into the next task's start, the next task is shifted to
// begin exactly when the current one ends, preserving its duration, and
// marked fixed. The shift propagates forward: each comparison sees the
// already-shifted value of its predecessor.
func Resolve(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)

	var indices []int
	for i, t := range out {
		if t.Status == models.StatusDone || t.ScheduledStart == nil || t.ScheduledEnd == nil {
			continue
		}
		indices = append(indices, i)
	}
	sort.Slice(indices, func(i, j int) bool {
		return out[indices[i]].ScheduledStart.Before(*out[indices[j]].ScheduledStart)
	})

	for i := 0; i+1 < len(indices); i++ {
		current := out[indices[i]]
		next := &out[indices[i+1]]
		if current.ScheduledEnd.After(*next.ScheduledStart) {
			newStart := *current.ScheduledEnd
			newEnd := newStart.Add(time.Duration(next.DurationMin) * time.Minute)
			next.ScheduledStart = &newStart
			next.ScheduledEnd = &newEnd
			next.IsFixed = true
			next.Reason = resolvedReason
		}
	}

	return out
}
