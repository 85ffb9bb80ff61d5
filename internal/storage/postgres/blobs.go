package postgres

import (
	"database/sql"
	"fmt"
	"time"
)

// GetBlob returns the payload for name, or "" if no row exists yet.
func (s *Store) GetBlob(name string) (string, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM blobs WHERE name = $1`, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query blob %q: %w", name, err)
	}
	return payload, nil
}

// SaveBlob upserts the payload for name, stamping the update time.
func (s *Store) SaveBlob(name, payload string) error {
	_, err := s.db.Exec(
		`INSERT INTO blobs (name, payload, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save blob %q: %w", name, err)
	}
	return nil
}
