package models

import (
	"encoding/json"
	"fmt"
)

// Priority is the closed set of task priorities. A priority's weight is the
// dominant term of the Task Ranker's score.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Weight returns the Ranker's priority weight: High=3, Medium=2, Low=1.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Status is a task's lifecycle state.
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// statusWire is the fixed interop string for each Status, per the shape
// the storage blobs and any host reading them agree on.
var statusWire = map[Status]string{
	StatusTodo:       "To Do",
	StatusInProgress: "In Progress",
	StatusDone:       "Done",
}

var wireStatus = map[string]Status{
	"To Do":       StatusTodo,
	"In Progress": StatusInProgress,
	"Done":        StatusDone,
}

// MarshalJSON renders Status using the fixed interop strings ("To Do",
// "In Progress", "Done") rather than the internal Go identifiers.
func (s Status) MarshalJSON() ([]byte, error) {
	wire, ok := statusWire[s]
	if !ok {
		return nil, fmt.Errorf("models: unknown Status %q", string(s))
	}
	return json.Marshal(wire)
}

// UnmarshalJSON accepts the fixed interop strings and maps them back to
// the internal Status value.
func (s *Status) UnmarshalJSON(data []byte) error {
	var wire string
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	status, ok := wireStatus[wire]
	if !ok {
		return fmt.Errorf("models: unrecognized status %q", wire)
	}
	*s = status
	return nil
}

// EnergyBand tags the energy level a task is best suited for, used by the
// Placement Engine's start-slot scoring.
type EnergyBand string

const (
	EnergyLow    EnergyBand = "Low"
	EnergyMedium EnergyBand = "Medium"
	EnergyHigh   EnergyBand = "High"
)
