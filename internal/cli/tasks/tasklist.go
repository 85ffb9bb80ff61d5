package tasks

import (
	"fmt"
	"strings"

	"github.com/rowanvale/dayforge/internal/cli"
)

// ListCmd prints every stored task.
type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	all, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, t := range all {
		fmt.Println(cli.FormatTask(t.Title, t.ScheduledStart, t.ScheduledEnd))
		fmt.Printf("  id: %s  status: %s  priority: %s  duration: %dm\n", t.ID, t.Status, t.Priority, t.DurationMin)
		if len(t.Dependencies) > 0 {
			fmt.Printf("  depends on: %s\n", strings.Join(t.Dependencies, ", "))
		}
	}
	return nil
}
