package tasks

import (
	"fmt"
	"strings"

	"github.com/rowanvale/dayforge/internal/cli"
)

// DeleteCmd removes a task by ID.
type DeleteCmd struct {
	ID string `arg:"" help:"ID of the task to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	all, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	found := false
	result := all[:0]
	for _, t := range all {
		if t.ID == c.ID {
			found = true
			continue
		}
		result = append(result, t)
	}
	if !found {
		return fmt.Errorf("no task found with ID %s", c.ID)
	}

	if err := ctx.Store.SaveAllTasks(result); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	fmt.Printf("Deleted task %s\n", c.ID)
	return nil
}

func splitIDs(s string) []string {
	var ids []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
