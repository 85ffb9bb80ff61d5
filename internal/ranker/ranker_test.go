package ranker

import (
	"testing"
	"time"

	"github.com/rowanvale/dayforge/internal/models"
)

func dl(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestNext_PicksDeadlineTodoOverAlternation(t *testing.T) {
	pending := []models.Task{
		{ID: "t1", IsTodoList: true, Priority: models.PriorityLow, Deadline: dl("2026-02-01")},
		{ID: "p1", IsTodoList: false, Priority: models.PriorityHigh},
	}
	r := New()
	got, err := r.Next(pending, map[string]bool{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != "t1" {
		t.Fatalf("expected the deadline todo task t1, got %v", got)
	}
}

func TestNext_AlternatesWhenNoDeadlines(t *testing.T) {
	pending := []models.Task{
		{ID: "t1", IsTodoList: true, Priority: models.PriorityMedium},
		{ID: "p1", IsTodoList: false, Priority: models.PriorityMedium},
	}
	r := New()
	first, err := r.Next(pending, map[string]bool{})
	if err != nil || first == nil {
		t.Fatalf("unexpected: %v %v", first, err)
	}
	second, err := r.Next(pending, map[string]bool{})
	if err != nil || second == nil {
		t.Fatalf("unexpected: %v %v", second, err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected alternation between todo and project turns, got %s twice", first.ID)
	}
}

func TestNext_FallsBackWhenQueueEmpty(t *testing.T) {
	pending := []models.Task{
		{ID: "p1", IsTodoList: false, Priority: models.PriorityLow},
	}
	r := New() // starts on todo turn, but only a project task exists
	got, err := r.Next(pending, map[string]bool{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != "p1" {
		t.Fatalf("expected fallback to the project task, got %v", got)
	}
}

func TestNext_DanglingDependencyIsSatisfied(t *testing.T) {
	pending := []models.Task{
		{ID: "a", Dependencies: []string{"ghost"}, Priority: models.PriorityLow},
	}
	r := New()
	got, err := r.Next(pending, map[string]bool{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != "a" {
		t.Fatalf("expected task with a dangling dependency to be ready, got %v", got)
	}
}

func TestNext_BlockedByUnsatisfiedDependency(t *testing.T) {
	pending := []models.Task{
		{ID: "a", Dependencies: []string{"b"}, Priority: models.PriorityLow},
		{ID: "b", Dependencies: []string{"a"}, Priority: models.PriorityLow},
	}
	r := New()
	_, err := r.Next(pending, map[string]bool{})
	if err != ErrBlocked {
		t.Fatalf("expected ErrBlocked for a dependency cycle, got %v", err)
	}
}

func TestNext_ReturnsNilWhenNothingPending(t *testing.T) {
	r := New()
	got, err := r.Next(nil, map[string]bool{})
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for an empty pool, got (%v, %v)", got, err)
	}
}

func TestNext_HigherScoreWinsWithinQueue(t *testing.T) {
	pending := []models.Task{
		{ID: "low", IsTodoList: true, Priority: models.PriorityLow},
		{ID: "high", IsTodoList: true, Priority: models.PriorityHigh},
	}
	r := New()
	got, err := r.Next(pending, map[string]bool{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != "high" {
		t.Fatalf("expected the higher-priority task to win, got %v", got)
	}
}
