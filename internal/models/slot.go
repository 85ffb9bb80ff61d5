package models

import "time"

// Slot is an available interval on the grid produced by the Availability
// Engine and subdivided by the Rhythm Engine. Slots never overlap within a
// single Availability Engine pass.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot's length.
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Minutes returns the slot's length in whole minutes.
func (s Slot) Minutes() int {
	return int(s.Duration().Minutes())
}

// Overlaps reports whether s and other share any moment, using half-open
// interval intersection with strictly positive measure (spec §4.A).
func (s Slot) Overlaps(other Slot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}
