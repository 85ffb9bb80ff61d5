// Package placement implements the Placement Engine: the central
// algorithm that walks the Task Ranker's picks onto the Rhythm Engine's
// work slots, splitting tasks across slots when one slot isn't enough.
package placement

import (
	"fmt"
	"strings"
	"time"

	"github.com/rowanvale/dayforge/internal/grid"
	"github.com/rowanvale/dayforge/internal/models"
	"github.com/rowanvale/dayforge/internal/ranker"
)

// Result is everything the Placement Engine produces for one pass:
// placed tasks (possibly split into multiple parts), tasks that could not
// be scheduled at all, and advisory warnings.
type Result struct {
	Placed      []models.Task
	Unscheduled []models.Task
	Warnings    []string

	// RemainingSlots is the work-slot list left after every commit, for a
	// caller that places more work without recomputing Availability and
	// Rhythm from scratch.
	RemainingSlots []models.Slot
}

// Plan walks every non-fixed, non-Done task in tasks onto workSlots in
// Task Ranker order, producing Result. tasks whose IsFixed or Status is
// Done are treated as already-placed and seed completion times; they are
// never re-emitted. settings.PlanningBufferMinutes extends the trailing
// edge of every part this pass places, so the next task's usable start
// never lands immediately against a just-consumed interval.
func Plan(tasks []models.Task, workSlots []models.Slot, now time.Time, settings models.Settings) Result {
	slots := cloneSlots(workSlots)
	buffer := time.Duration(settings.PlanningBufferMinutes) * time.Minute

	completionTimes := make(map[string]time.Time)
	completed := make(map[string]bool)
	for _, t := range tasks {
		if (t.IsFixed || t.Status == models.StatusDone) && t.ScheduledEnd != nil {
			completionTimes[t.ID] = *t.ScheduledEnd
			completed[t.ID] = true
		}
	}

	var pending []models.Task
	for _, t := range tasks {
		if t.IsFixed || t.Status == models.StatusDone {
			continue
		}
		pending = append(pending, t)
	}

	var placed, unscheduled []models.Task
	highTodoScheduled := false
	rnk := ranker.New()

	for len(pending) > 0 {
		next, err := rnk.Next(pending, completed)
		if err == ranker.ErrBlocked {
			for _, t := range pending {
				t.Reason = "Insufficient availability: blocked by an unresolved dependency"
				unscheduled = append(unscheduled, t)
			}
			break
		}
		if next == nil {
			break
		}
		task := *next
		pending = removeByID(pending, task.ID)

		floor := earliestStartFloor(task, completionTimes, now)
		ceiling, hasCeiling := latestEndCeiling(task)

		working := cloneSlots(slots)
		startIdx := selectStartIndex(working, task.Energy, floor, ceiling, hasCeiling)
		if startIdx < 0 {
			startIdx = len(working)
		}

		remaining := task.DurationMin
		idx := startIdx
		var parts []models.Task
		partIndex := 0

		for remaining > 0 && idx < len(working) {
			slot := working[idx]
			usableStart := laterOf(slot.Start, grid.Ceil15(floor))
			usableEnd := slot.End
			if hasCeiling && ceiling.Before(usableEnd) {
				usableEnd = ceiling
			}
			if slot.Minutes() < 15 || !usableStart.Before(usableEnd) {
				idx++
				continue
			}
			availableMin := grid.Minutes(usableStart, usableEnd)
			if availableMin < 15 {
				idx++
				continue
			}

			fit := remaining
			if availableMin < fit {
				fit = availableMin
			}
			consumedStart := usableStart
			consumedEnd := consumedStart.Add(time.Duration(fit) * time.Minute)

			partIndex++
			part := task
			start, end := consumedStart, consumedEnd
			part.ScheduledStart = &start
			part.ScheduledEnd = &end
			part.PartIndex = partIndex
			parts = append(parts, part)
			remaining -= fit

			var replacement []models.Slot
			leftPrefix := slot.Start.Before(consumedStart)
			if leftPrefix {
				replacement = append(replacement, models.Slot{Start: slot.Start, End: consumedStart})
			}
			bufferedEnd := consumedEnd.Add(buffer)
			if bufferedEnd.Before(slot.End) {
				replacement = append(replacement, models.Slot{Start: bufferedEnd, End: slot.End})
			}
			working = spliceReplace(working, idx, replacement)
			if leftPrefix {
				idx++
			}
		}

		if remaining <= 0 {
			slots = working
			totalParts := len(parts)
			lastEnd := *parts[totalParts-1].ScheduledEnd
			completionTimes[task.ID] = lastEnd
			completed[task.ID] = true

			for i := range parts {
				parts[i].TotalParts = totalParts
				if totalParts > 1 {
					oid := task.ID
					parts[i].OriginalTaskID = &oid
					parts[i].ID = models.SplitID(task.ID, parts[i].PartIndex)
					parts[i].Title = models.SplitTitle(task.Title, parts[i].PartIndex, totalParts)
				}
				parts[i].Status = models.StatusTodo
				parts[i].Reason = composeReason(task, parts[i], hasCeiling)
				placed = append(placed, parts[i])
			}
			if task.IsTodoList && task.Priority == models.PriorityHigh {
				highTodoScheduled = true
			}
		} else {
			reason := "Insufficient availability"
			if hasCeiling {
				reason = fmt.Sprintf("No slot before deadline/window (%s)", ceiling.Format(time.RFC3339))
			}
			t := task
			t.Reason = reason
			unscheduled = append(unscheduled, t)
		}
	}

	var warnings []string
	if highTodoScheduled {
		if n := projectTasksPastDeadline(placed); n > 0 {
			warnings = append(warnings, fmt.Sprintf(
				"High-priority to-dos pushed %d project task(s) past deadlines.", n))
		}
	}

	return Result{Placed: placed, Unscheduled: unscheduled, Warnings: warnings, RemainingSlots: slots}
}

// earliestStartFloor is the latest of now, every dependency's completion
// time, and the task's own EarliestStart constraint.
func earliestStartFloor(task models.Task, completionTimes map[string]time.Time, now time.Time) time.Time {
	floor := now
	for _, dep := range task.Dependencies {
		if ct, ok := completionTimes[dep]; ok && ct.After(floor) {
			floor = ct
		}
	}
	if task.EarliestStart != nil && task.EarliestStart.After(floor) {
		floor = *task.EarliestStart
	}
	return floor
}

// latestEndCeiling is the earlier of end_of_day(deadline) and LatestEnd,
// whichever are present. hasCeiling is false when neither constrains the
// task.
func latestEndCeiling(task models.Task) (time.Time, bool) {
	var ceiling time.Time
	has := false
	if task.Deadline != nil {
		ceiling = models.EndOfDay(*task.Deadline)
		has = true
	}
	if task.LatestEnd != nil && (!has || task.LatestEnd.Before(ceiling)) {
		ceiling = *task.LatestEnd
		has = true
	}
	return ceiling, has
}

// selectStartIndex picks the slot to begin the fitting walk from. A task
// with no energy tag always starts at index 0; otherwise the slot whose
// usable start maximizes the energy score wins, ties broken by the
// earliest usable start.
func selectStartIndex(slots []models.Slot, energy *models.EnergyBand, floor, ceiling time.Time, hasCeiling bool) int {
	if energy == nil {
		return 0
	}

	best := -1
	bestScore := -1
	var bestStart time.Time
	for i, slot := range slots {
		usableStart := laterOf(slot.Start, grid.Ceil15(floor))
		usableEnd := slot.End
		if hasCeiling && ceiling.Before(usableEnd) {
			usableEnd = ceiling
		}
		if !usableStart.Before(usableEnd) || grid.Minutes(usableStart, usableEnd) < 15 {
			continue
		}
		sc := energyScore(*energy, usableStart.Hour())
		if sc > bestScore || (sc == bestScore && (best == -1 || usableStart.Before(bestStart))) {
			best, bestScore, bestStart = i, sc, usableStart
		}
	}
	return best
}

// energyScore scores an hour-of-day against an energy band: each band
// favors a different part of the day, with a flat baseline elsewhere.
func energyScore(energy models.EnergyBand, hour int) int {
	switch energy {
	case models.EnergyHigh:
		switch {
		case hour < 11:
			return 3
		case hour < 15:
			return 2
		default:
			return 1
		}
	case models.EnergyMedium:
		switch {
		case hour >= 10 && hour < 16:
			return 3
		case hour >= 8 && hour < 18:
			return 2
		default:
			return 1
		}
	case models.EnergyLow:
		switch {
		case hour >= 15:
			return 3
		case hour >= 12:
			return 2
		default:
			return 1
		}
	default:
		return 0
	}
}

// composeReason builds the human-readable scheduling rationale attached
// to every placed part.
func composeReason(task models.Task, part models.Task, hasCeiling bool) string {
	notes := []string{fmt.Sprintf("Priority: %s.", task.Priority)}
	if part.TotalParts > 1 {
		notes = append(notes, fmt.Sprintf("Chunk %d of %d.", part.PartIndex, part.TotalParts))
	}
	if task.Energy != nil {
		notes = append(notes, fmt.Sprintf("Placed for %s-energy window.", *task.Energy))
	}
	if task.EarliestStart != nil || hasCeiling {
		notes = append(notes, "Constrained by an explicit scheduling window.")
	}
	return strings.Join(notes, " ")
}

// projectTasksPastDeadline counts distinct non-todo-list original tasks
// whose last placed part ends after their deadline.
func projectTasksPastDeadline(placed []models.Task) int {
	ends := make(map[string]time.Time)
	deadlines := make(map[string]time.Time)
	isTodo := make(map[string]bool)

	for _, p := range placed {
		id := p.ID
		if p.OriginalTaskID != nil {
			id = *p.OriginalTaskID
		}
		if p.ScheduledEnd != nil {
			if existing, ok := ends[id]; !ok || p.ScheduledEnd.After(existing) {
				ends[id] = *p.ScheduledEnd
			}
		}
		if p.Deadline != nil {
			deadlines[id] = models.EndOfDay(*p.Deadline)
		}
		isTodo[id] = isTodo[id] || p.IsTodoList
	}

	count := 0
	for id, end := range ends {
		if isTodo[id] {
			continue
		}
		if dl, ok := deadlines[id]; ok && end.After(dl) {
			count++
		}
	}
	return count
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func cloneSlots(slots []models.Slot) []models.Slot {
	out := make([]models.Slot, len(slots))
	copy(out, slots)
	return out
}

// spliceReplace replaces the element at idx with replacement (0, 1, or 2
// elements), preserving order.
func spliceReplace(slots []models.Slot, idx int, replacement []models.Slot) []models.Slot {
	out := make([]models.Slot, 0, len(slots)-1+len(replacement))
	out = append(out, slots[:idx]...)
	out = append(out, replacement...)
	out = append(out, slots[idx+1:]...)
	return out
}

func removeByID(tasks []models.Task, id string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
