package drift

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

func ptr(t time.Time) *time.Time { return &t }

func TestCompute_ZeroWhenNothingOverruns(t *testing.T) {
	now := mustTime("2026-01-05T09:00:00")
	future := mustTime("2026-01-05T10:00:00")
	tasks := []models.Task{{ID: "a", ScheduledEnd: ptr(future)}}
	if got := Compute(tasks, now); got != 0 {
		t.Errorf("Compute = %d, want 0", got)
	}
}

func TestCompute_MaxOverrunAmongIncompleteTasks(t *testing.T) {
	now := mustTime("2026-01-05T12:00:00")
	tasks := []models.Task{
		{ID: "a", ScheduledEnd: ptr(mustTime("2026-01-05T11:45:00"))}, // 15m overrun
		{ID: "b", ScheduledEnd: ptr(mustTime("2026-01-05T11:00:00"))}, // 60m overrun
	}
	if got := Compute(tasks, now); got != 60 {
		t.Errorf("Compute = %d, want 60", got)
	}
}

func TestCompute_IgnoresDoneTasks(t *testing.T) {
	now := mustTime("2026-01-05T12:00:00")
	tasks := []models.Task{
		{ID: "a", Status: models.StatusDone, ScheduledEnd: ptr(mustTime("2026-01-05T09:00:00"))},
	}
	if got := Compute(tasks, now); got != 0 {
		t.Errorf("Compute = %d, want 0 (Done tasks must not count toward drift)", got)
	}
}
