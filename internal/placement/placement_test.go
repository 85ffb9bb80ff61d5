package placement

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

func TestPlan_PlacesSingleTaskInFirstSlot(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	slots := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T17:00:00")}}
	tasks := []models.Task{{ID: "a", Title: "Write report", DurationMin: 60, Priority: models.PriorityMedium}}

	result := Plan(tasks, slots, now, models.Settings{})
	if len(result.Placed) != 1 {
		t.Fatalf("expected 1 placed part, got %d: %v", len(result.Placed), result.Placed)
	}
	p := result.Placed[0]
	want := mustTime("2026-01-05T09:00:00")
	if !p.ScheduledStart.Equal(want) {
		t.Errorf("start = %v, want %v", p.ScheduledStart, want)
	}
	if len(result.Unscheduled) != 0 {
		t.Errorf("expected no unscheduled tasks, got %v", result.Unscheduled)
	}
}

func TestPlan_SplitsTaskAcrossTwoSlots(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	slots := []models.Slot{
		{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T09:30:00")}, // 30m
		{Start: mustTime("2026-01-05T13:00:00"), End: mustTime("2026-01-05T14:00:00")}, // 60m
	}
	tasks := []models.Task{{ID: "a", Title: "Big task", DurationMin: 60, Priority: models.PriorityMedium}}

	result := Plan(tasks, slots, now, models.Settings{})
	if len(result.Placed) != 2 {
		t.Fatalf("expected task to split into 2 parts, got %d", len(result.Placed))
	}
	if result.Placed[0].TotalParts != 2 || result.Placed[1].TotalParts != 2 {
		t.Errorf("expected TotalParts=2 on both parts, got %v", result.Placed)
	}
	if result.Placed[0].ID != "a-part-1" || result.Placed[1].ID != "a-part-2" {
		t.Errorf("unexpected split IDs: %s, %s", result.Placed[0].ID, result.Placed[1].ID)
	}
	if *result.Placed[0].OriginalTaskID != "a" {
		t.Errorf("expected OriginalTaskID=a, got %v", result.Placed[0].OriginalTaskID)
	}
}

func TestPlan_UnscheduledWhenNoAvailability(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	tasks := []models.Task{{ID: "a", Title: "Orphan", DurationMin: 30, Priority: models.PriorityLow}}

	result := Plan(tasks, nil, now, models.Settings{})
	if len(result.Placed) != 0 {
		t.Fatalf("expected no placements, got %v", result.Placed)
	}
	if len(result.Unscheduled) != 1 || result.Unscheduled[0].Reason != "Insufficient availability" {
		t.Fatalf("expected an Insufficient availability reason, got %v", result.Unscheduled)
	}
}

func TestPlan_DeadlineConstrainsPlacement(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	slots := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T17:00:00")}}
	deadline := mustTime("2026-01-04T00:00:00") // already past: end_of_day is before any slot
	tasks := []models.Task{{ID: "a", Title: "Late", DurationMin: 30, Priority: models.PriorityLow, Deadline: &deadline}}

	result := Plan(tasks, slots, now, models.Settings{})
	if len(result.Placed) != 0 {
		t.Fatalf("expected the task to miss its deadline window, got %v", result.Placed)
	}
	if len(result.Unscheduled) != 1 {
		t.Fatalf("expected 1 unscheduled task, got %d", len(result.Unscheduled))
	}
}

func TestPlan_DependencyDelaysEarliestStart(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	depEnd := mustTime("2026-01-05T12:00:00")
	slots := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T17:00:00")}}
	tasks := []models.Task{
		{
			ID: "dep", Title: "Prereq", DurationMin: 30, Priority: models.PriorityLow,
			IsFixed: true, Status: models.StatusTodo,
			ScheduledStart: timePtr(mustTime("2026-01-05T11:30:00")), ScheduledEnd: &depEnd,
		},
		{ID: "a", Title: "Follows", DurationMin: 30, Priority: models.PriorityLow, Dependencies: []string{"dep"}},
	}

	result := Plan(tasks, slots, now, models.Settings{})
	if len(result.Placed) != 1 {
		t.Fatalf("expected 1 placed task, got %d", len(result.Placed))
	}
	if result.Placed[0].ScheduledStart.Before(depEnd) {
		t.Errorf("expected dependent task to start no earlier than %v, got %v", depEnd, result.Placed[0].ScheduledStart)
	}
}

func TestPlan_EnergyTagPrefersMatchingHour(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	slots := []models.Slot{
		{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T09:30:00")},
		{Start: mustTime("2026-01-05T16:00:00"), End: mustTime("2026-01-05T16:30:00")},
	}
	low := models.EnergyLow
	tasks := []models.Task{{ID: "a", Title: "Low energy", DurationMin: 30, Priority: models.PriorityLow, Energy: &low}}

	result := Plan(tasks, slots, now, models.Settings{})
	if len(result.Placed) != 1 {
		t.Fatalf("expected 1 placed task, got %d", len(result.Placed))
	}
	want := mustTime("2026-01-05T16:00:00")
	if !result.Placed[0].ScheduledStart.Equal(want) {
		t.Errorf("expected the low-energy task in the afternoon slot, got %v", result.Placed[0].ScheduledStart)
	}
}

func TestPlan_BlockedDependencyCycleReportsAllAsUnscheduled(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	slots := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T17:00:00")}}
	tasks := []models.Task{
		{ID: "a", Title: "A", DurationMin: 30, Dependencies: []string{"b"}},
		{ID: "b", Title: "B", DurationMin: 30, Dependencies: []string{"a"}},
	}
	result := Plan(tasks, slots, now, models.Settings{})
	if len(result.Placed) != 0 {
		t.Fatalf("expected no placements for a cyclic pair, got %v", result.Placed)
	}
	if len(result.Unscheduled) != 2 {
		t.Fatalf("expected both cyclic tasks reported unscheduled, got %d", len(result.Unscheduled))
	}
}

func TestPlan_PlanningBufferDelaysNextTask(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	slots := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T10:00:00")}}
	tasks := []models.Task{
		{ID: "a", Title: "First", DurationMin: 15, Priority: models.PriorityHigh},
		{ID: "b", Title: "Second", DurationMin: 15, Priority: models.PriorityLow},
	}

	result := Plan(tasks, slots, now, models.Settings{PlanningBufferMinutes: 30})
	if len(result.Placed) != 2 {
		t.Fatalf("expected both tasks placed, got %d: %v", len(result.Placed), result.Placed)
	}
	first, second := result.Placed[0], result.Placed[1]
	if first.ID == "b" {
		first, second = second, first
	}
	wantSecondStart := first.ScheduledEnd.Add(30 * time.Minute)
	if !second.ScheduledStart.Equal(wantSecondStart) {
		t.Errorf("expected the second task to start at %v (after the buffer), got %v", wantSecondStart, second.ScheduledStart)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
