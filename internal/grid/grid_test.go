package grid

import (
	"testing"
	"time"
)

func mustTime(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCeil15_AlreadyAligned(t *testing.T) {
	in := mustTime("2026-01-05T09:00:00")
	got := Ceil15(in)
	if !got.Equal(in) {
		t.Errorf("Ceil15(%v) = %v, want identity", in, got)
	}
}

func TestCeil15_RoundsForward(t *testing.T) {
	in := mustTime("2026-01-05T09:05:30")
	want := mustTime("2026-01-05T09:15:00")
	got := Ceil15(in)
	if !got.Equal(want) {
		t.Errorf("Ceil15(%v) = %v, want %v", in, got, want)
	}
}

func TestFloor15_RoundsBack(t *testing.T) {
	in := mustTime("2026-01-05T09:44:59")
	want := mustTime("2026-01-05T09:30:00")
	got := Floor15(in)
	if !got.Equal(want) {
		t.Errorf("Floor15(%v) = %v, want %v", in, got, want)
	}
}

func TestRound15_FloorOfOneGridUnit(t *testing.T) {
	if got := Round15(5); got != 15 {
		t.Errorf("Round15(5) = %d, want 15", got)
	}
	if got := Round15(0); got != 15 {
		t.Errorf("Round15(0) = %d, want 15", got)
	}
}

func TestRound15_NearestMultiple(t *testing.T) {
	cases := map[int]int{
		22: 15,
		23: 30,
		37: 30,
		38: 45,
	}
	for in, want := range cases {
		if got := Round15(in); got != want {
			t.Errorf("Round15(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFloorToGrid(t *testing.T) {
	if got := FloorToGrid(44); got != 30 {
		t.Errorf("FloorToGrid(44) = %d, want 30", got)
	}
	if got := FloorToGrid(5); got != 0 {
		t.Errorf("FloorToGrid(5) = %d, want 0", got)
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	a0, a1 := mustTime("2026-01-05T09:00:00"), mustTime("2026-01-05T10:00:00")
	b0, b1 := mustTime("2026-01-05T10:00:00"), mustTime("2026-01-05T11:00:00")
	if Overlaps(a0, a1, b0, b1) {
		t.Error("adjacent intervals sharing only a boundary should not overlap")
	}

	c0, c1 := mustTime("2026-01-05T09:30:00"), mustTime("2026-01-05T10:30:00")
	if !Overlaps(a0, a1, c0, c1) {
		t.Error("expected overlapping intervals to report overlap")
	}
}

func TestMinutes(t *testing.T) {
	start := mustTime("2026-01-05T09:00:00")
	end := mustTime("2026-01-05T10:30:00")
	if got := Minutes(start, end); got != 90 {
		t.Errorf("Minutes = %d, want 90", got)
	}
}
