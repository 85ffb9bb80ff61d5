package plan

import (
	"fmt"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/planner"
)

// DriftCmd reports the largest overrun, in minutes, across incomplete
// scheduled tasks.
type DriftCmd struct{}

func (c *DriftCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	minutes := planner.Drift(tasks, now(ctx))
	if minutes == 0 {
		fmt.Println("No drift detected.")
		return nil
	}
	fmt.Printf("Maximum drift: %d minute(s) overrun.\n", minutes)
	return nil
}
