// Package cascade implements the Cascade Mover: propagating a manual move
// of one task through its dependency graph.
package cascade

import (
	"time"

	"github.com/rowanvale/dayforge/internal/models"
)

// movedReason is the scheduling reason attached to every task the cascade
// touches, including the target itself.
const movedReason = "Manually moved by user"

// Move relocates the task identified by targetID to newStart and cascades
// the change through its dependency graph: successors are pushed forward
// when the move now overlaps them, and predecessors are pulled backward
// when the move now starts before they finish. now bounds how far back a
// pulled predecessor may be dragged — a predecessor is never scheduled
// before the current moment, even to make room for a move into the past.
func Move(tasks []models.Task, targetID string, newStart time.Time, now time.Time) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)

	byID := make(map[string]int, len(out))
	for i, t := range out {
		byID[t.ID] = i
	}

	visited := make(map[string]bool, len(out))

	var visit func(id string, start time.Time)
	visit = func(id string, start time.Time) {
		if visited[id] {
			return
		}
		visited[id] = true

		idx, ok := byID[id]
		if !ok {
			return
		}
		node := &out[idx]

		end := start.Add(time.Duration(node.DurationMin) * time.Minute)
		node.ScheduledStart = &start
		node.ScheduledEnd = &end
		node.IsFixed = true
		node.Reason = movedReason

		for i := range out {
			successor := out[i]
			if !dependsOn(successor, id) {
				continue
			}
			if successor.ScheduledStart != nil && successor.ScheduledStart.Before(end) {
				visit(successor.ID, end)
			}
		}

		for _, depID := range node.Dependencies {
			depIdx, ok := byID[depID]
			if !ok {
				continue
			}
			dep := out[depIdx]
			if dep.ScheduledEnd == nil || !dep.ScheduledEnd.After(start) {
				continue
			}
			pullStart := start.Add(-time.Duration(dep.DurationMin) * time.Minute)
			if pullStart.Before(now) {
				pullStart = now
			}
			visit(depID, pullStart)
		}
	}

	visit(targetID, newStart)
	return out
}

func dependsOn(task models.Task, id string) bool {
	for _, dep := range task.Dependencies {
		if dep == id {
			return true
		}
	}
	return false
}
