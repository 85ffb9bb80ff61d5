// Package settingscmd exposes CLI subcommands for viewing and editing
// Planning Core settings.
package settingscmd

import (
	"fmt"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/models"
)

// SettingsCmd groups the settings subcommands.
type SettingsCmd struct {
	Show ShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SetCmd  `cmd:"" help:"Update a single setting."`
}

// ShowCmd prints all settings.
type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	fmt.Printf("work_start_hour:          %d\n", s.WorkStartHour)
	fmt.Printf("work_end_hour:            %d\n", s.WorkEndHour)
	fmt.Printf("active_days:              %v\n", s.ActiveDays)
	fmt.Printf("enable_chunking:          %v\n", s.EnableChunking)
	fmt.Printf("focus_chunk_minutes:      %d\n", s.FocusChunkMinutes)
	fmt.Printf("short_break_minutes:      %d\n", s.ShortBreakMinutes)
	fmt.Printf("long_break_minutes:       %d\n", s.LongBreakMinutes)
	fmt.Printf("long_break_cadence:       %d\n", s.LongBreakCadence)
	fmt.Printf("default_task_duration:    %d\n", s.DefaultTaskDuration)
	fmt.Printf("planning_buffer_minutes:  %d\n", s.PlanningBufferMinutes)
	fmt.Printf("auto_reschedule_overdue:  %v\n", s.AutoRescheduleOverdue)
	return nil
}

// SetCmd updates one setting by key.
type SetCmd struct {
	Key   string `arg:"" help:"Setting key, e.g. work_start_hour."`
	Value string `arg:"" help:"New value."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	data := models.SettingsToMap(s)
	if _, ok := data[c.Key]; !ok {
		return fmt.Errorf("unknown setting key: %s", c.Key)
	}
	data[c.Key] = c.Value

	updated, err := models.MapToSettings(data)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", c.Key, err)
	}
	if err := ctx.Store.SaveSettings(updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Updated %s = %s\n", c.Key, c.Value)
	return nil
}
