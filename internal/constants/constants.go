// Package constants collects the fixed values the Planning Core and its
// surrounding CLI/storage layers agree on: grid size, horizon, formats,
// and default settings.
package constants

import "time"

const (
	AppName            = "dayforge"
	Version            = "v0.1.0"
	DefaultConfigPath  = "~/.config/dayforge/dayforge.db"
	DefaultKeyringUser = "database-connection"

	// MomentFormat is the ISO-8601 (RFC3339, offset-aware) format used to
	// serialize every absolute instant at the storage/CLI boundary.
	MomentFormat = time.RFC3339
	// DateFormat is used for calendar-date-only values such as deadlines
	// entered by the user before being resolved to an end-of-day moment.
	DateFormat = "2006-01-02"

	// GridMinutes is the scheduling grid size; every scheduled boundary is
	// aligned to a multiple of this value.
	GridMinutes = 15

	// HorizonDays bounds how far into the future the Availability Engine
	// enumerates free windows.
	HorizonDays = 180

	// BreakProjectID marks a task as a synthetic break emitted by the
	// Rhythm Engine, excluding it from workload and conflict accounting.
	BreakProjectID = "system-break"
)

// Default Settings values, applied by models.ApplyDefaultSettings to a
// Settings record's zero-valued fields.
const (
	DefaultWorkStartHour         = 9
	DefaultWorkEndHour           = 17
	DefaultFocusChunkMinutes     = 50
	DefaultShortBreakMinutes     = 10
	DefaultLongBreakMinutes      = 30
	DefaultLongBreakCadence      = 4
	DefaultTaskDurationMinutes   = 30
	DefaultPlanningBufferMinutes = 0
)

// DefaultActiveDays is Monday-Friday, used when Settings.ActiveDays is empty.
var DefaultActiveDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// Setting keys, used when a Settings record is persisted as a key/value map
// (the storage backends' settings table).
const (
	SettingWorkStartHour         = "work_start_hour"
	SettingWorkEndHour           = "work_end_hour"
	SettingActiveDays            = "active_days"
	SettingEnableChunking        = "enable_chunking"
	SettingFocusChunkMinutes     = "focus_chunk_minutes"
	SettingShortBreakMinutes     = "short_break_minutes"
	SettingLongBreakMinutes      = "long_break_minutes"
	SettingLongBreakCadence      = "long_break_cadence"
	SettingDefaultTaskDuration   = "default_task_duration"
	SettingPlanningBufferMinutes = "planning_buffer_minutes"
	SettingAutoRescheduleOverdue = "auto_reschedule_overdue"
)
