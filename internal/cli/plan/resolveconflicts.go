package plan

import (
	"fmt"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/planner"
)

// ResolveConflictsCmd shifts overlapping scheduled tasks apart with a
// single forward pass.
type ResolveConflictsCmd struct{}

func (c *ResolveConflictsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	resolved := planner.ResolveConflicts(tasks)
	if err := ctx.Store.SaveAllTasks(resolved); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	fmt.Println("Conflicts resolved.")
	return nil
}
