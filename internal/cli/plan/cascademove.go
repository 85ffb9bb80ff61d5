package plan

import (
	"fmt"
	"time"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/constants"
	"github.com/rowanvale/dayforge/internal/planner"
)

// CascadeMoveCmd relocates a task and propagates the move through its
// dependency graph.
type CascadeMoveCmd struct {
	TaskID   string `arg:"" help:"ID of the task to move."`
	NewStart string `arg:"" help:"New start instant (RFC3339)."`
}

func (c *CascadeMoveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	newStart, err := time.Parse(constants.MomentFormat, c.NewStart)
	if err != nil {
		return fmt.Errorf("invalid new-start (expected RFC3339): %w", err)
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	moved := planner.CascadeMove(tasks, c.TaskID, newStart, now(ctx))

	if err := ctx.Store.SaveAllTasks(moved); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	for _, t := range moved {
		if t.ID == c.TaskID || (t.OriginalTaskID != nil && *t.OriginalTaskID == c.TaskID) {
			fmt.Println(cli.FormatTask(t.Title, t.ScheduledStart, t.ScheduledEnd))
		}
	}
	return nil
}
