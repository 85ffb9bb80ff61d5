// Package rhythm implements the Rhythm Engine: carving free windows into
// focus-length work slots separated by short and long breaks.
package rhythm

import (
	"fmt"
	"time"

	"github.com/rowanvale/dayforge/internal/constants"
	"github.com/rowanvale/dayforge/internal/grid"
	"github.com/rowanvale/dayforge/internal/models"
)

// Result is the Rhythm Engine's output: the work slots available for
// placement, and the synthetic break tasks carved out alongside them.
type Result struct {
	WorkSlots []models.Slot
	Breaks    []models.Task
}

// Compute carves windows into focus-length work slots and breaks. When
// chunking is disabled the windows pass through unchanged and no breaks
// are produced.
func Compute(windows []models.Slot, settings models.Settings) Result {
	if !settings.EnableChunking {
		return Result{WorkSlots: windows}
	}

	focusLen := grid.Round15(settings.FocusChunkMinutes)
	shortLen := grid.Round15(settings.ShortBreakMinutes)
	longLen := grid.Round15(settings.LongBreakMinutes)
	cadence := settings.LongBreakCadence
	if cadence < 2 {
		cadence = constants.DefaultLongBreakCadence
	}

	result := Result{}
	breakID := constants.BreakProjectID
	c := 0
	breakSeq := 0

	for _, window := range windows {
		cursor := window.Start
		for int(window.End.Sub(cursor).Minutes()) >= constants.GridMinutes {
			remaining := int(window.End.Sub(cursor).Minutes())
			chunk := focusLen
			if floored := grid.FloorToGrid(remaining); chunk > floored {
				chunk = floored
			}
			focusEnd := cursor.Add(time.Duration(chunk) * time.Minute)
			result.WorkSlots = append(result.WorkSlots, models.Slot{Start: cursor, End: focusEnd})
			cursor = focusEnd
			c++

			remaining = int(window.End.Sub(cursor).Minutes())
			if remaining < constants.GridMinutes {
				continue
			}

			breakLen := shortLen
			if c%cadence == 0 {
				breakLen = longLen
			}
			if floored := grid.FloorToGrid(remaining); breakLen > floored {
				breakLen = floored
			}
			if breakLen < constants.GridMinutes {
				continue
			}

			breakEnd := cursor.Add(time.Duration(breakLen) * time.Minute)
			breakSeq++
			start, end := cursor, breakEnd
			result.Breaks = append(result.Breaks, models.Task{
				ID:             fmt.Sprintf("break-%d", breakSeq),
				Title:          "Break",
				DurationMin:    breakLen,
				Status:         models.StatusTodo,
				ProjectID:      &breakID,
				ScheduledStart: &start,
				ScheduledEnd:   &end,
				IsFixed:        true,
			})
			cursor = breakEnd
		}
	}

	return result
}
