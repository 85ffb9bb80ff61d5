package models

import "time"

// Settings holds the user-configured parameters the Availability, Rhythm,
// and Placement engines read. See spec §6 for the recognized options.
type Settings struct {
	WorkStartHour int // 0-23
	WorkEndHour   int // 0-23, must exceed WorkStartHour

	ActiveDays []time.Weekday // subset of 0..6, 0=Sunday

	EnableChunking    bool
	FocusChunkMinutes int
	ShortBreakMinutes int
	LongBreakMinutes  int
	LongBreakCadence  int // >= 2

	DefaultTaskDuration   int
	PlanningBufferMinutes int
	AutoRescheduleOverdue bool
}

// IsActiveDay reports whether wd is one of the user's active weekdays.
func (s Settings) IsActiveDay(wd time.Weekday) bool {
	for _, d := range s.ActiveDays {
		if d == wd {
			return true
		}
	}
	return false
}
