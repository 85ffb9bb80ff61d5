// Package tasklist renders the task browser tab of the TUI.
package tasklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rowanvale/dayforge/internal/models"
)

// AddTaskMsg requests the add-task form be opened.
type AddTaskMsg struct{}

// DeleteTaskMsg requests deletion of the task with ID.
type DeleteTaskMsg struct {
	ID string
}

// Item adapts a models.Task to list.Item.
type Item struct {
	Task models.Task
}

func (i Item) Title() string {
	if i.Task.IsBreak() {
		return "Break"
	}
	return i.Task.Title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%dm | %s | %s", i.Task.DurationMin, i.Task.Priority, i.Task.Status)
	if i.Task.ScheduledStart != nil {
		desc = i.Task.ScheduledStart.Format("Mon 15:04") + " | " + desc
	}
	return desc
}

func (i Item) FilterValue() string { return i.Task.Title }

// KeyMap is the set of bindings this tab adds to the global help.
type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

// DefaultKeyMap returns the standard tasklist bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

// Model wraps a bubbles list.Model of tasks.
type Model struct {
	list list.Model
	keys KeyMap
}

// New builds a task list sized to width x height.
func New(tasks []models.Task, width, height int) Model {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Tasks"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Add, keys.Delete} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{keys.Add, keys.Delete} }

	return Model{list: l, keys: keys}
}

// SetTasks replaces the displayed task list.
func (m *Model) SetTasks(tasks []models.Task) {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t}
	}
	m.list.SetItems(items)
}

// SetSize resizes the underlying list.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the currently highlighted task, if any.
func (m Model) Selected() (models.Task, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Task{}, false
	}
	return item.Task, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddTaskMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteTaskMsg{ID: t.ID} }
			}
		}
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
