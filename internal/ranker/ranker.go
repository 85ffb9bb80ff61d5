// Package ranker implements the Task Ranker: selecting, on each Placement
// Engine iteration, which ready task to place next.
package ranker

import (
	"errors"
	"sort"

	"github.com/rowanvale/dayforge/internal/models"
)

// ErrBlocked is returned by Next when pending tasks remain but none of them
// are ready, meaning a dependency cycle or tasks waiting on one (dangling
// dependencies never block, see readySet).
var ErrBlocked = errors.New("ranker: no ready task among remaining pending tasks (dependency cycle or blockage)")

// Ranker selects the next task to place from a pending pool, alternating
// between todo-list and project tasks across calls.
type Ranker struct {
	todoTurn bool
}

// New creates a Ranker starting its alternation on the todo-list side.
func New() *Ranker {
	return &Ranker{todoTurn: true}
}

// Next returns the next task to place from pending, given the set of task
// IDs already completed (placed or marked done). It does not mutate
// pending; the caller removes the chosen task once it has been handled.
func (r *Ranker) Next(pending []models.Task, completed map[string]bool) (*models.Task, error) {
	ready := readySet(pending, completed)
	if len(ready) == 0 {
		if len(pending) == 0 {
			return nil, nil
		}
		return nil, ErrBlocked
	}

	var todoQueue, projectQueue []models.Task
	for _, t := range ready {
		if t.IsTodoList {
			todoQueue = append(todoQueue, t)
		} else {
			projectQueue = append(projectQueue, t)
		}
	}
	sortQueue(todoQueue)
	sortQueue(projectQueue)

	for _, t := range todoQueue {
		if t.Deadline != nil {
			task := t
			return &task, nil
		}
	}

	pick := func() *models.Task {
		if r.todoTurn {
			if len(todoQueue) > 0 {
				return &todoQueue[0]
			}
			if len(projectQueue) > 0 {
				return &projectQueue[0]
			}
			return nil
		}
		if len(projectQueue) > 0 {
			return &projectQueue[0]
		}
		if len(todoQueue) > 0 {
			return &todoQueue[0]
		}
		return nil
	}

	chosen := pick()
	r.todoTurn = !r.todoTurn
	if chosen == nil {
		return nil, ErrBlocked
	}
	task := *chosen
	return &task, nil
}

// readySet returns the subset of pending whose every dependency is either
// completed or absent from the pending pool (a dangling dependency is
// treated as satisfied).
func readySet(pending []models.Task, completed map[string]bool) []models.Task {
	pendingByID := make(map[string]bool, len(pending))
	for _, t := range pending {
		pendingByID[t.ID] = true
	}

	var ready []models.Task
	for _, t := range pending {
		allSatisfied := true
		for _, dep := range t.Dependencies {
			if completed[dep] {
				continue
			}
			if !pendingByID[dep] {
				continue // dangling dependency, treated as satisfied
			}
			allSatisfied = false
			break
		}
		if allSatisfied {
			ready = append(ready, t)
		}
	}
	return ready
}

// score implements spec §4.D's formula: priority_weight*100, plus 50 when
// the task has a deadline, plus 60 when it has a latest-end constraint.
func score(t models.Task) int {
	s := t.Priority.Weight() * 100
	if t.Deadline != nil {
		s += 50
	}
	if t.LatestEnd != nil {
		s += 60
	}
	return s
}

// sortQueue orders tasks by descending score, then ascending deadline when
// both have one, then descending duration.
func sortQueue(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if sa, sb := score(a), score(b); sa != sb {
			return sa > sb
		}
		if a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline) {
			return a.Deadline.Before(*b.Deadline)
		}
		return a.DurationMin > b.DurationMin
	})
}
