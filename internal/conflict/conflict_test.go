package conflict

import (
	"testing"
	"time"

	"github.com/rowanvale/dayforge/internal/models"
)

func mustTime(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolve_ShiftsOverlappingNext(t *testing.T) {
	aStart := mustTime("2026-01-05T09:00:00")
	aEnd := mustTime("2026-01-05T10:00:00")
	bStart := mustTime("2026-01-05T09:30:00") // overlaps a
	bEnd := mustTime("2026-01-05T10:00:00")
	tasks := []models.Task{
		{ID: "a", DurationMin: 60, ScheduledStart: &aStart, ScheduledEnd: &aEnd},
		{ID: "b", DurationMin: 30, ScheduledStart: &bStart, ScheduledEnd: &bEnd},
	}

	out := Resolve(tasks)
	var b models.Task
	for _, t := range out {
		if t.ID == "b" {
			b = t
		}
	}
	if !b.ScheduledStart.Equal(aEnd) {
		t.Errorf("expected b shifted to %v, got %v", aEnd, b.ScheduledStart)
	}
	if b.ScheduledEnd.Sub(*b.ScheduledStart) != 30*time.Minute {
		t.Errorf("expected b's duration preserved at 30m, got %v", b.ScheduledEnd.Sub(*b.ScheduledStart))
	}
	if !b.IsFixed || b.Reason != resolvedReason {
		t.Errorf("expected b marked fixed with reason %q, got fixed=%v reason=%q", resolvedReason, b.IsFixed, b.Reason)
	}
}

func TestResolve_PropagatesShiftForward(t *testing.T) {
	aStart := mustTime("2026-01-05T09:00:00")
	aEnd := mustTime("2026-01-05T10:00:00")
	bStart := mustTime("2026-01-05T09:30:00")
	bEnd := mustTime("2026-01-05T10:00:00")
	cStart := mustTime("2026-01-05T10:00:00") // doesn't overlap b's original slot, but will overlap b's shifted end
	cEnd := mustTime("2026-01-05T10:15:00")
	tasks := []models.Task{
		{ID: "a", DurationMin: 60, ScheduledStart: &aStart, ScheduledEnd: &aEnd},
		{ID: "b", DurationMin: 30, ScheduledStart: &bStart, ScheduledEnd: &bEnd},
		{ID: "c", DurationMin: 15, ScheduledStart: &cStart, ScheduledEnd: &cEnd},
	}

	out := Resolve(tasks)
	var b, c models.Task
	for _, t := range out {
		switch t.ID {
		case "b":
			b = t
		case "c":
			c = t
		}
	}
	if !c.ScheduledStart.Equal(*b.ScheduledEnd) {
		t.Errorf("expected c shifted to b's new end %v, got %v", b.ScheduledEnd, c.ScheduledStart)
	}
}

func TestResolve_IgnoresDoneTasks(t *testing.T) {
	aStart := mustTime("2026-01-05T09:00:00")
	aEnd := mustTime("2026-01-05T10:00:00")
	bStart := mustTime("2026-01-05T09:30:00")
	bEnd := mustTime("2026-01-05T10:00:00")
	tasks := []models.Task{
		{ID: "a", DurationMin: 60, Status: models.StatusDone, ScheduledStart: &aStart, ScheduledEnd: &aEnd},
		{ID: "b", DurationMin: 30, ScheduledStart: &bStart, ScheduledEnd: &bEnd},
	}
	out := Resolve(tasks)
	for _, task := range out {
		if task.ID == "b" && !task.ScheduledStart.Equal(bStart) {
			t.Errorf("a Done task must not participate in conflict resolution, but b moved to %v", task.ScheduledStart)
		}
	}
}

func TestResolve_NoOverlapLeavesTasksUnchanged(t *testing.T) {
	aStart := mustTime("2026-01-05T09:00:00")
	aEnd := mustTime("2026-01-05T09:30:00")
	bStart := mustTime("2026-01-05T10:00:00")
	bEnd := mustTime("2026-01-05T10:30:00")
	tasks := []models.Task{
		{ID: "a", DurationMin: 30, ScheduledStart: &aStart, ScheduledEnd: &aEnd},
		{ID: "b", DurationMin: 30, ScheduledStart: &bStart, ScheduledEnd: &bEnd},
	}
	out := Resolve(tasks)
	for _, task := range out {
		if task.IsFixed {
			t.Errorf("no task should be touched when nothing overlaps, but %s was marked fixed", task.ID)
		}
	}
}
