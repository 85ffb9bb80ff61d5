package planner

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

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func weekdaySettings(startHour, endHour int) models.Settings {
	return models.Settings{
		WorkStartHour: startHour,
		WorkEndHour:   endHour,
		ActiveDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

// S1: basic fit with chunking off.
func TestPlan_S1_BasicFit(t *testing.T) {
	now := mustTime("2026-01-05T09:00:00") // a Monday
	settings := weekdaySettings(9, 17)
	tasks := []models.Task{
		{ID: "A", Title: "A", DurationMin: 60, Priority: models.PriorityHigh},
		{ID: "B", Title: "B", DurationMin: 30, Priority: models.PriorityMedium},
	}

	result, err := Plan(tasks, now, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Unscheduled) != 0 {
		t.Fatalf("expected no unscheduled tasks, got %v", result.Unscheduled)
	}
	byID := map[string]models.Task{}
	for _, s := range result.Scheduled {
		byID[s.ID] = s
	}
	a, b := byID["A"], byID["B"]
	if !a.ScheduledStart.Equal(mustTime("2026-01-05T09:00:00")) || !a.ScheduledEnd.Equal(mustTime("2026-01-05T10:00:00")) {
		t.Errorf("A = [%v,%v), want [09:00,10:00)", a.ScheduledStart, a.ScheduledEnd)
	}
	if !b.ScheduledStart.Equal(mustTime("2026-01-05T10:00:00")) || !b.ScheduledEnd.Equal(mustTime("2026-01-05T10:30:00")) {
		t.Errorf("B = [%v,%v), want [10:00,10:30)", b.ScheduledStart, b.ScheduledEnd)
	}
}

// S3: dependency respected.
func TestPlan_S3_Dependency(t *testing.T) {
	now := mustTime("2026-01-05T09:00:00")
	settings := weekdaySettings(9, 17)
	tasks := []models.Task{
		{ID: "A", Title: "A", DurationMin: 60, Priority: models.PriorityMedium},
		{ID: "B", Title: "B", DurationMin: 30, Priority: models.PriorityMedium, Dependencies: []string{"A"}},
	}

	result, err := Plan(tasks, now, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byID := map[string]models.Task{}
	for _, s := range result.Scheduled {
		byID[s.ID] = s
	}
	a, b := byID["A"], byID["B"]
	if b.ScheduledStart.Before(*a.ScheduledEnd) {
		t.Errorf("expected B to start no earlier than A ends (%v), got %v", a.ScheduledEnd, b.ScheduledStart)
	}
}

// S4: chunking cadence.
func TestPlan_S4_ChunkingCadence(t *testing.T) {
	now := mustTime("2026-01-05T09:00:00")
	settings := weekdaySettings(9, 12)
	settings.EnableChunking = true
	settings.FocusChunkMinutes = 30
	settings.ShortBreakMinutes = 15
	settings.LongBreakMinutes = 30
	settings.LongBreakCadence = 2

	tasks := []models.Task{{ID: "big", Title: "Big", DurationMin: 120, Priority: models.PriorityMedium}}
	result, err := Plan(tasks, now, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Unscheduled) != 0 {
		t.Fatalf("expected the task to fit across the window, got unscheduled: %v", result.Unscheduled)
	}

	var focusParts []models.Task
	for _, s := range result.Scheduled {
		if s.ID == "big" || (s.OriginalTaskID != nil && *s.OriginalTaskID == "big") {
			focusParts = append(focusParts, s)
		}
	}
	if len(focusParts) != 4 {
		t.Fatalf("expected 4 focus parts consuming the task (one per rhythm-carved focus slot), got %d: %v", len(focusParts), focusParts)
	}
	if !focusParts[0].ScheduledStart.Equal(mustTime("2026-01-05T09:00:00")) {
		t.Errorf("first focus part start = %v, want 09:00", focusParts[0].ScheduledStart)
	}

	var longBreaks int
	for _, b := range result.Breaks {
		if b.DurationMin == 30 {
			longBreaks++
		}
	}
	if longBreaks == 0 {
		t.Error("expected at least one long break on the cadence boundary")
	}
}

// S5: deadline miss.
func TestPlan_S5_DeadlineMiss(t *testing.T) {
	now := mustTime("2026-01-05T08:00:00")
	settings := weekdaySettings(8, 16) // 8h window
	deadline := mustDate("2026-01-05")
	tasks := []models.Task{
		{ID: "huge", Title: "Huge", DurationMin: 600, Priority: models.PriorityMedium, Deadline: &deadline},
	}

	result, err := Plan(tasks, now, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Unscheduled) != 1 {
		t.Fatalf("expected the task to miss its deadline and land in unscheduled, got scheduled=%v unscheduled=%v",
			result.Scheduled, result.Unscheduled)
	}
}

func TestPlan_RejectsInvalidInput(t *testing.T) {
	now := mustTime("2026-01-05T09:00:00")
	settings := weekdaySettings(17, 9) // end before start: invariant violation
	_, err := Plan(nil, now, settings)
	if err == nil {
		t.Fatal("expected an invariant-violation error for end_hour <= start_hour")
	}
}

func TestCascadeMove_S6_PropagatesToDependent(t *testing.T) {
	aStart := mustTime("2026-01-05T10:00:00")
	aEnd := mustTime("2026-01-05T11:00:00")
	bStart := mustTime("2026-01-05T11:00:00")
	bEnd := mustTime("2026-01-05T12:00:00")
	tasks := []models.Task{
		{ID: "A", DurationMin: 60, ScheduledStart: &aStart, ScheduledEnd: &aEnd},
		{ID: "B", DurationMin: 60, Dependencies: []string{"A"}, ScheduledStart: &bStart, ScheduledEnd: &bEnd},
	}

	now := mustTime("2026-01-05T08:00:00")
	out := CascadeMove(tasks, "A", mustTime("2026-01-05T10:30:00"), now)

	byID := map[string]models.Task{}
	for _, t := range out {
		byID[t.ID] = t
	}
	if !byID["A"].ScheduledStart.Equal(mustTime("2026-01-05T10:30:00")) {
		t.Errorf("A start = %v, want 10:30", byID["A"].ScheduledStart)
	}
	if !byID["B"].ScheduledStart.Equal(mustTime("2026-01-05T11:30:00")) {
		t.Errorf("B start = %v, want 11:30 (pushed by A's move)", byID["B"].ScheduledStart)
	}
}
