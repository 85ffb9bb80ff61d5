package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rowanvale/dayforge/internal/constants"
)

// ApplyDefaultSettings fills in zero-valued fields with the package
// defaults, the way the host applies defaults to a freshly initialized or
// partially-populated settings record.
func ApplyDefaultSettings(settings *Settings) {
	if settings.WorkStartHour == 0 && settings.WorkEndHour == 0 {
		settings.WorkStartHour = constants.DefaultWorkStartHour
		settings.WorkEndHour = constants.DefaultWorkEndHour
	}
	if len(settings.ActiveDays) == 0 {
		settings.ActiveDays = append([]time.Weekday{}, constants.DefaultActiveDays...)
	}
	if settings.FocusChunkMinutes == 0 {
		settings.FocusChunkMinutes = constants.DefaultFocusChunkMinutes
	}
	if settings.ShortBreakMinutes == 0 {
		settings.ShortBreakMinutes = constants.DefaultShortBreakMinutes
	}
	if settings.LongBreakMinutes == 0 {
		settings.LongBreakMinutes = constants.DefaultLongBreakMinutes
	}
	if settings.LongBreakCadence == 0 {
		settings.LongBreakCadence = constants.DefaultLongBreakCadence
	}
	if settings.DefaultTaskDuration == 0 {
		settings.DefaultTaskDuration = constants.DefaultTaskDurationMinutes
	}
}

// SettingsToMap converts a Settings struct to a key/value map, the shape
// the sqlite/postgres backends store a settings row as.
func SettingsToMap(s Settings) map[string]string {
	days := make([]string, len(s.ActiveDays))
	for i, d := range s.ActiveDays {
		days[i] = strconv.Itoa(int(d))
	}
	return map[string]string{
		constants.SettingWorkStartHour:         strconv.Itoa(s.WorkStartHour),
		constants.SettingWorkEndHour:           strconv.Itoa(s.WorkEndHour),
		constants.SettingActiveDays:            strings.Join(days, ","),
		constants.SettingEnableChunking:        strconv.FormatBool(s.EnableChunking),
		constants.SettingFocusChunkMinutes:     strconv.Itoa(s.FocusChunkMinutes),
		constants.SettingShortBreakMinutes:     strconv.Itoa(s.ShortBreakMinutes),
		constants.SettingLongBreakMinutes:      strconv.Itoa(s.LongBreakMinutes),
		constants.SettingLongBreakCadence:      strconv.Itoa(s.LongBreakCadence),
		constants.SettingDefaultTaskDuration:   strconv.Itoa(s.DefaultTaskDuration),
		constants.SettingPlanningBufferMinutes: strconv.Itoa(s.PlanningBufferMinutes),
		constants.SettingAutoRescheduleOverdue: strconv.FormatBool(s.AutoRescheduleOverdue),
	}
}

// MapToSettings converts a key/value map back into a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	var s Settings

	for key, value := range data {
		var err error
		switch key {
		case constants.SettingWorkStartHour:
			s.WorkStartHour, err = strconv.Atoi(value)
		case constants.SettingWorkEndHour:
			s.WorkEndHour, err = strconv.Atoi(value)
		case constants.SettingActiveDays:
			s.ActiveDays, err = parseWeekdayList(value)
		case constants.SettingEnableChunking:
			s.EnableChunking = value == "true"
		case constants.SettingFocusChunkMinutes:
			s.FocusChunkMinutes, err = strconv.Atoi(value)
		case constants.SettingShortBreakMinutes:
			s.ShortBreakMinutes, err = strconv.Atoi(value)
		case constants.SettingLongBreakMinutes:
			s.LongBreakMinutes, err = strconv.Atoi(value)
		case constants.SettingLongBreakCadence:
			s.LongBreakCadence, err = strconv.Atoi(value)
		case constants.SettingDefaultTaskDuration:
			s.DefaultTaskDuration, err = strconv.Atoi(value)
		case constants.SettingPlanningBufferMinutes:
			s.PlanningBufferMinutes, err = strconv.Atoi(value)
		case constants.SettingAutoRescheduleOverdue:
			s.AutoRescheduleOverdue = value == "true"
		}
		if err != nil {
			return Settings{}, fmt.Errorf("parsing setting %q: %w", key, err)
		}
	}

	sort.Slice(s.ActiveDays, func(i, j int) bool { return s.ActiveDays[i] < s.ActiveDays[j] })
	return s, nil
}

func parseWeekdayList(value string) ([]time.Weekday, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday %q", p)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}
