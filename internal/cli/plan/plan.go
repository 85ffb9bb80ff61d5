// Package plan exposes the CLI subcommands that drive the Planning Core:
// generating a plan, moving a task with cascade propagation, resolving
// conflicts, and reporting drift.
package plan

import (
	"fmt"
	"time"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/models"
	"github.com/rowanvale/dayforge/internal/planner"
)

// PlanCmd runs a full placement pass and writes the result back to storage.
type PlanCmd struct{}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	result, err := planner.Plan(tasks, now(ctx), settings)
	if err != nil {
		return fmt.Errorf("plan rejected: %w", err)
	}

	all := make([]models.Task, 0, len(result.Scheduled)+len(result.Unscheduled))
	all = append(all, result.Scheduled...)
	all = append(all, result.Unscheduled...)
	if err := ctx.Store.SaveAllTasks(all); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	for _, t := range result.Scheduled {
		if t.IsBreak() {
			continue
		}
		fmt.Println(cli.FormatTask(t.Title, t.ScheduledStart, t.ScheduledEnd))
	}
	if len(result.Unscheduled) > 0 {
		fmt.Printf("\n%d task(s) could not be scheduled:\n", len(result.Unscheduled))
		for _, t := range result.Unscheduled {
			fmt.Printf("  %s: %s\n", t.Title, t.Reason)
		}
	}
	for _, w := range result.Warnings {
		fmt.Printf("\nWarning: %s\n", w)
	}

	return nil
}

func now(ctx *cli.Context) time.Time {
	if ctx.Now != nil {
		return ctx.Now()
	}
	return time.Now()
}
