// Package grid implements the 15-minute scheduling grid arithmetic every
// other Planning Core component builds on: ceiling/floor alignment,
// minute rounding, and half-open interval overlap.
package grid

import (
	"time"

	"github.com/rowanvale/dayforge/internal/constants"
)

// Ceil15 rounds t forward to the next grid boundary, zeroing sub-minute
// fields. It is the identity when t is already aligned.
func Ceil15(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	rem := t.Minute() % constants.GridMinutes
	if rem == 0 {
		return t
	}
	return t.Add(time.Duration(constants.GridMinutes-rem) * time.Minute)
}

// Floor15 rounds t back to the previous grid boundary, zeroing sub-minute
// fields.
func Floor15(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	rem := t.Minute() % constants.GridMinutes
	if rem == 0 {
		return t
	}
	return t.Add(-time.Duration(rem) * time.Minute)
}

// Round15 rounds minutes to the nearest multiple of the grid size, with a
// floor of one grid unit.
func Round15(minutes int) int {
	if minutes <= 0 {
		return constants.GridMinutes
	}
	g := constants.GridMinutes
	rounded := ((minutes + g/2) / g) * g
	if rounded < g {
		rounded = g
	}
	return rounded
}

// FloorToGrid rounds minutes down to the nearest multiple of the grid
// size, never going below zero.
func FloorToGrid(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes / constants.GridMinutes) * constants.GridMinutes
}

// Overlaps reports whether the half-open interval [aStart, aEnd) shares a
// moment with [bStart, bEnd) with strictly positive measure.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Minutes returns the whole-minute length of [start, end).
func Minutes(start, end time.Time) int {
	return int(end.Sub(start).Minutes())
}
