package rhythm

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

func TestCompute_PassesThroughWhenChunkingDisabled(t *testing.T) {
	windows := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T17:00:00")}}
	result := Compute(windows, models.Settings{EnableChunking: false})
	if len(result.WorkSlots) != 1 || result.WorkSlots[0] != windows[0] {
		t.Fatalf("expected pass-through, got %v", result.WorkSlots)
	}
	if len(result.Breaks) != 0 {
		t.Fatalf("expected no breaks, got %d", len(result.Breaks))
	}
}

func TestCompute_CarvesFocusChunksAndShortBreaks(t *testing.T) {
	windows := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T11:00:00")}}
	settings := models.Settings{
		EnableChunking:    true,
		FocusChunkMinutes: 50,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  30,
		LongBreakCadence:  4,
	}
	result := Compute(windows, settings)

	if len(result.WorkSlots) == 0 {
		t.Fatal("expected at least one focus slot")
	}
	first := result.WorkSlots[0]
	if first.Minutes() != 45 { // round_15(50) = 45
		t.Errorf("first focus slot = %dm, want 45m", first.Minutes())
	}
	if len(result.Breaks) == 0 {
		t.Fatal("expected at least one break between focus chunks")
	}
	if result.Breaks[0].DurationMin != 15 { // round_15(10) = 15
		t.Errorf("first break = %dm, want 15m", result.Breaks[0].DurationMin)
	}
	for _, b := range result.Breaks {
		if b.ProjectID == nil || *b.ProjectID != "system-break" {
			t.Errorf("break %v missing system-break project marker", b)
		}
	}
}

func TestCompute_LongBreakOnCadence(t *testing.T) {
	// 4 focus chunks of 45m = 180m, plus 3 short breaks of 15m = 45m, take
	// 225m, so a window of 270m leaves room for the full 30m long break
	// after the 4th chunk.
	windows := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T13:30:00")}}
	settings := models.Settings{
		EnableChunking:    true,
		FocusChunkMinutes: 50,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  30,
		LongBreakCadence:  4,
	}
	result := Compute(windows, settings)
	if len(result.Breaks) < 4 {
		t.Fatalf("expected at least 4 breaks, got %d", len(result.Breaks))
	}
	if result.Breaks[3].DurationMin != 30 {
		t.Errorf("4th break = %dm, want 30m (long break on cadence)", result.Breaks[3].DurationMin)
	}
}

func TestCompute_NoBreakWhenRemainderTooSmall(t *testing.T) {
	// One 45m chunk leaves 10m, too small for even a 15m break.
	windows := []models.Slot{{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T09:55:00")}}
	settings := models.Settings{
		EnableChunking:    true,
		FocusChunkMinutes: 50,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  30,
		LongBreakCadence:  4,
	}
	result := Compute(windows, settings)
	if len(result.Breaks) != 0 {
		t.Fatalf("expected no break when remainder < 15m, got %v", result.Breaks)
	}
}

func TestCompute_CounterSharedAcrossWindows(t *testing.T) {
	windows := []models.Slot{
		{Start: mustTime("2026-01-05T09:00:00"), End: mustTime("2026-01-05T09:55:00")}, // 1 chunk, c=1
		{Start: mustTime("2026-01-06T09:00:00"), End: mustTime("2026-01-06T12:35:00")}, // 4 more chunks; c reaches 4 at the 3rd
	}
	settings := models.Settings{
		EnableChunking:    true,
		FocusChunkMinutes: 50,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  30,
		LongBreakCadence:  4,
	}
	result := Compute(windows, settings)
	var sawLong bool
	for _, b := range result.Breaks {
		if b.DurationMin == 30 {
			sawLong = true
		}
	}
	if !sawLong {
		t.Fatal("expected the cadence counter to carry across windows and eventually emit a long break")
	}
}
