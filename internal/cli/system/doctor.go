package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/migration"
	"github.com/rowanvale/dayforge/internal/storage/sqlite"
	"github.com/rowanvale/dayforge/internal/validation"
	"github.com/rowanvale/dayforge/migrations"
)

// DoctorCmd runs a battery of health checks against the configured store.
type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("FAIL Database reachable\n  %v\n", err)
		hasError = true
	} else {
		fmt.Println("OK   Database reachable")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("FAIL Schema version\n  %v\n", err)
			hasError = true
		} else {
			fmt.Println("OK   Schema version")
		}
	} else {
		fmt.Println("SKIP Schema version (database not reachable)")
	}

	if dbReachable {
		if err := checkTasksValid(ctx); err != nil {
			fmt.Printf("FAIL Task data\n  %v\n", err)
			hasError = true
		} else {
			fmt.Println("OK   Task data")
		}
	} else {
		fmt.Println("SKIP Task data (database not reachable)")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("FAIL Clock/timezone\n  %v\n", err)
		hasError = true
	} else {
		fmt.Println("OK   Clock/timezone")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if store, ok := ctx.Store.(*sqlite.Store); ok {
		var result int
		if err := store.GetDB().QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	runner := migration.NewRunner(store.GetDB(), subFS)

	current, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkTasksValid(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	seen := make(map[string]bool)
	for _, t := range tasks {
		if seen[t.ID] {
			return fmt.Errorf("duplicate task ID found: %s", t.ID)
		}
		seen[t.ID] = true
	}
	v := validation.New()
	result := v.ValidateTasks(tasks)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
