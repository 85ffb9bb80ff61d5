package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/rowanvale/dayforge/internal/models"
)

const tasksBlobName = "tasks"

// GetAllTasks loads the full task list from its blob row. A database with
// no tasks saved yet returns an empty slice, not an error.
func (s *Store) GetAllTasks() ([]models.Task, error) {
	payload, err := s.GetBlob(tasksBlobName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	if payload == "" {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(payload), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}
	return tasks, nil
}

// SaveAllTasks overwrites the stored task list.
func (s *Store) SaveAllTasks(tasks []models.Task) error {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return s.SaveBlob(tasksBlobName, string(payload))
}
