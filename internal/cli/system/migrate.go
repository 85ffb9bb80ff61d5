package system

import (
	"fmt"
	"io/fs"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/migration"
	"github.com/rowanvale/dayforge/internal/storage/sqlite"
	"github.com/rowanvale/dayforge/migrations"
)

// MigrateCmd applies any pending SQLite schema migrations. Postgres
// migrates automatically on Init, so this only supports the local file
// backend.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	defer ctx.Store.Close()

	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrate only supports the SQLite storage backend; Postgres migrates automatically on init")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(store.GetDB(), subFS)
	count, err := runner.ApplyMigrations(func(msg string) { fmt.Println(msg) })
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("Successfully applied %d migration(s).\n", count)
	}
	return nil
}
