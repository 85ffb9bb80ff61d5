package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rowanvale/dayforge/internal/cli"
)

// InitCmd creates and migrates a fresh database at the configured path.
type InitCmd struct {
	Force bool `help:"Delete any existing database before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	abs, err := filepath.Abs(ctx.Store.GetConfigPath())
	if err != nil {
		abs = ctx.Store.GetConfigPath()
	}
	fmt.Printf("Initialized dayforge storage at: %s\n", abs)
	return nil
}
