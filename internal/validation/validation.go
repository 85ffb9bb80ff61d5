package validation

import (
	"fmt"
	"sort"

	"github.com/rowanvale/dayforge/internal/grid"
	"github.com/rowanvale/dayforge/internal/models"
)

// ConflictType represents the kind of advisory conflict detected.
type ConflictType string

const (
	ConflictOverlappingFixedTasks ConflictType = "overlapping_fixed_tasks"
	ConflictDuplicateTaskName     ConflictType = "duplicate_task_name"
	ConflictDependencyCycle       ConflictType = "dependency_cycle"
)

// Conflict is a single detected issue in a task set.
type Conflict struct {
	Type        ConflictType
	Description string
	TaskIDs     []string
}

// Result collects every conflict found by Validator.ValidateTasks.
type Result struct {
	Conflicts []Conflict
}

// HasConflicts reports whether any conflicts were detected.
func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport renders a human-readable summary, the way the teacher's
// validator reported conflicts to the CLI.
func (r Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}
	report := "Conflicts detected:\n"
	for _, c := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", c.Description)
	}
	return report
}

// Validator detects advisory conflicts among tasks, independent of the
// hard invariant gate in ValidateInput.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// ValidateTasks checks tasks for duplicate names, overlapping fixed
// (immovable) tasks, and dependency cycles.
func (v *Validator) ValidateTasks(tasks []models.Task) Result {
	result := Result{}

	nameCount := make(map[string][]string)
	for _, t := range tasks {
		if t.Title == "" {
			continue
		}
		nameCount[t.Title] = append(nameCount[t.Title], t.ID)
	}
	for name, ids := range nameCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTaskName,
				Description: fmt.Sprintf("duplicate task title %q (IDs: %v)", name, ids),
				TaskIDs:     ids,
			})
		}
	}

	var fixed []models.Task
	for _, t := range tasks {
		if t.IsFixed && t.ScheduledStart != nil && t.ScheduledEnd != nil {
			fixed = append(fixed, t)
		}
	}
	sort.Slice(fixed, func(i, j int) bool {
		return fixed[i].ScheduledStart.Before(*fixed[j].ScheduledStart)
	})
	for i := 0; i < len(fixed); i++ {
		for j := i + 1; j < len(fixed); j++ {
			a, b := fixed[i], fixed[j]
			if grid.Overlaps(*a.ScheduledStart, *a.ScheduledEnd, *b.ScheduledStart, *b.ScheduledEnd) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type: ConflictOverlappingFixedTasks,
					Description: fmt.Sprintf("fixed tasks overlap: %q and %q",
						a.Title, b.Title),
					TaskIDs: []string{a.ID, b.ID},
				})
			}
		}
	}

	if cyclic := detectCycles(tasks); len(cyclic) > 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDependencyCycle,
			Description: fmt.Sprintf("dependency cycle involves tasks: %v", cyclic),
			TaskIDs:     cyclic,
		})
	}

	return result
}

// detectCycles runs a DFS with a recursion-stack marker over the
// dependency graph and returns the IDs of any task found on a cycle.
func detectCycles(tasks []models.Task) []string {
	byID := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(tasks))
	var cyclic []string

	var visit func(id string) bool
	visit = func(id string) bool {
		task, ok := byID[id]
		if !ok {
			return false // dangling dependency, not part of this task set
		}
		switch state[id] {
		case visiting:
			cyclic = append(cyclic, id)
			return true
		case done:
			return false
		}
		state[id] = visiting
		onCycle := false
		for _, dep := range task.Dependencies {
			if visit(dep) {
				onCycle = true
			}
		}
		state[id] = done
		if onCycle {
			cyclic = append(cyclic, id)
		}
		return onCycle
	}

	for _, t := range tasks {
		if state[t.ID] == unvisited {
			visit(t.ID)
		}
	}
	return cyclic
}
