// Package storage defines the Provider interface the host side uses to
// persist Planning Core state between invocations: tasks, settings, and
// three free-form blobs (projects, notes, stats) the core itself never
// reads.
package storage

import "github.com/rowanvale/dayforge/internal/models"

// Provider is implemented by each storage backend (sqlite, postgres).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Tasks
	GetAllTasks() ([]models.Task, error)
	SaveAllTasks([]models.Task) error

	// Free-form blobs: projects, free-form notes, user stats. Each is an
	// opaque JSON payload the host reads and writes; the core never
	// inspects their contents.
	GetBlob(name string) (string, error)
	SaveBlob(name, payload string) error

	GetConfigPath() string
}

// Blob names recognized by GetBlob/SaveBlob.
const (
	BlobProjects = "projects"
	BlobNotes    = "notes"
	BlobStats    = "stats"
)
