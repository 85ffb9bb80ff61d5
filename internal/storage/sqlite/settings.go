package sqlite

import (
	"fmt"

	"github.com/rowanvale/dayforge/internal/models"
)

// GetSettings loads the settings key-value table into a models.Settings.
// A key not present keeps its zero value; no defaults are applied here.
// An empty table is reported as an error.
func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, fmt.Errorf("failed to scan setting row: %w", err)
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings, err := models.MapToSettings(data)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if len(data) == 0 {
		return settings, fmt.Errorf("no settings found")
	}
	return settings, nil
}

// SaveSettings persists settings as key-value rows, overwriting any
// previous values.
func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range models.SettingsToMap(settings) {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return fmt.Errorf("failed to save setting %q: %w", key, err)
		}
	}

	return tx.Commit()
}
