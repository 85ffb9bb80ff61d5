// Package tasks holds the CLI subcommands for managing the task list.
package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/constants"
	"github.com/rowanvale/dayforge/internal/models"
)

// AddCmd creates a new task.
type AddCmd struct {
	Title         string `arg:"" help:"Task title."`
	Duration      int    `short:"d" help:"Duration in minutes." required:""`
	Priority      string `short:"p" help:"Priority (High|Medium|Low)." default:"Medium"`
	Energy        string `short:"e" help:"Energy band (High|Medium|Low)."`
	Deadline      string `help:"Deadline date (YYYY-MM-DD)."`
	EarliestStart string `help:"Earliest start instant (RFC3339)."`
	LatestEnd     string `help:"Latest end instant (RFC3339)."`
	Project       string `help:"Project ID this task belongs to."`
	TodoList      bool   `help:"Mark as a to-do-list item rather than a project task."`
	DependsOn     string `help:"Comma-separated task IDs this task depends on."`
}

func (c *AddCmd) Validate() error {
	if err := models.ValidateDuration(c.Duration); err != nil {
		return err
	}
	switch models.Priority(c.Priority) {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
	default:
		return fmt.Errorf("invalid priority: %s", c.Priority)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		DurationMin: c.Duration,
		Priority:    models.Priority(c.Priority),
		Status:      models.StatusTodo,
		IsTodoList:  c.TodoList,
	}

	if c.Project != "" {
		project := c.Project
		task.ProjectID = &project
	}
	if c.Energy != "" {
		band := models.EnergyBand(c.Energy)
		task.Energy = &band
	}
	if c.Deadline != "" {
		d, err := time.Parse(constants.DateFormat, c.Deadline)
		if err != nil {
			return fmt.Errorf("invalid deadline format (expected YYYY-MM-DD): %w", err)
		}
		task.Deadline = &d
	}
	if c.EarliestStart != "" {
		t, err := time.Parse(constants.MomentFormat, c.EarliestStart)
		if err != nil {
			return fmt.Errorf("invalid earliest-start format: %w", err)
		}
		task.EarliestStart = &t
	}
	if c.LatestEnd != "" {
		t, err := time.Parse(constants.MomentFormat, c.LatestEnd)
		if err != nil {
			return fmt.Errorf("invalid latest-end format: %w", err)
		}
		task.LatestEnd = &t
	}
	if c.DependsOn != "" {
		task.Dependencies = splitIDs(c.DependsOn)
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load existing tasks: %w", err)
	}
	tasks = append(tasks, task)
	if err := ctx.Store.SaveAllTasks(tasks); err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
