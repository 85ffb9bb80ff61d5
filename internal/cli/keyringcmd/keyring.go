// Package keyringcmd exposes CLI subcommands for storing the Postgres
// connection string in the OS keyring instead of a config flag.
package keyringcmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rowanvale/dayforge/internal/cli"
	"github.com/rowanvale/dayforge/internal/keyring"
	"github.com/rowanvale/dayforge/internal/storage/postgres"
)

// SetCmd stores a connection string in the OS keyring.
type SetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(c.ConnectionString, "postgres://") &&
		!strings.HasPrefix(c.ConnectionString, "postgresql://") &&
		!strings.Contains(c.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(c.ConnectionString); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			fmt.Println("Warning: connection string contains embedded credentials.")
			fmt.Println("It will be stored as-is in the encrypted OS keyring.")
		} else {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("Connection string stored in OS keyring.")
	fmt.Println("You can now run dayforge without the --config flag.")
	return nil
}

// GetCmd retrieves the stored connection string, masking its password.
type GetCmd struct{}

func (c *GetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring; use 'dayforge keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	fmt.Println("Connection string from keyring:")
	fmt.Println(maskPassword(connStr))
	return nil
}

// DeleteCmd removes the stored connection string.
type DeleteCmd struct{}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	fmt.Println("Connection string deleted from OS keyring.")
	return nil
}

// StatusCmd reports whether the OS keyring is usable on this system.
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("OS keyring is not available on this system.")
		return errors.New("keyring unavailable")
	}
	fmt.Println("OS keyring is available.")

	if _, err := keyring.GetConnectionString(); err == nil {
		fmt.Println("A connection string is stored in the keyring.")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("No connection string stored in the keyring.")
	}
	return nil
}

// maskPassword redacts any embedded password in a connection string for
// display, leaving the rest of the string intact.
func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		for i, part := range parts {
			if strings.HasPrefix(part, "password=") {
				parts[i] = "password=****"
			}
		}
		return strings.Join(parts, " ")
	}

	return connStr
}
