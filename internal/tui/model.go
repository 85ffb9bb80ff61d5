// Package tui implements the interactive terminal interface: a task
// browser tab and a generated-plan tab, backed by the same storage.Provider
// and planner package the CLI subcommands use.
package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/rowanvale/dayforge/internal/models"
	"github.com/rowanvale/dayforge/internal/planner"
	"github.com/rowanvale/dayforge/internal/storage"
	"github.com/rowanvale/dayforge/internal/tui/components/plan"
	"github.com/rowanvale/dayforge/internal/tui/components/tasklist"
)

// sessionState is which tab is active.
type sessionState int

const (
	stateTasks sessionState = iota
	statePlan
	numTabs
)

// taskFormModel backs the add-task huh.Form.
type taskFormModel struct {
	Title    string
	Duration string
	Priority string
}

// Model is the TUI's root Bubble Tea model.
type Model struct {
	store storage.Provider
	state sessionState
	keys  KeyMap
	help  help.Model

	taskList  tasklist.Model
	planModel plan.Model

	form     *huh.Form
	taskForm *taskFormModel

	status   string
	quitting bool
	width    int
	height   int
}

// KeyMap is the global key bindings shown in the help bar.
type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Generate key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the standard global bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate plan")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == statePlan {
		keys = append(keys, m.keys.Generate)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	return [][]key.Binding{global}
}

// NewModel builds the TUI model from an already-loaded store.
func NewModel(store storage.Provider) Model {
	tasks, err := store.GetAllTasks()
	if err != nil {
		tasks = []models.Task{}
	}

	return Model{
		store:     store,
		state:     stateTasks,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		taskList:  tasklist.New(tasks, 0, 0),
		planModel: plan.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// newTaskForm builds the huh.Form used to add a task.
func newTaskForm(fm *taskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&fm.Title),
			huh.NewInput().Title("Duration (min)").Value(&fm.Duration).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil || i <= 0 {
						return errInvalidDuration
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("High", string(models.PriorityHigh)),
					huh.NewOption("Medium", string(models.PriorityMedium)),
					huh.NewOption("Low", string(models.PriorityLow)),
				).
				Value(&fm.Priority),
		),
	).WithTheme(huh.ThemeDracula())
}

var errInvalidDuration = formError("duration must be a positive number of minutes")

type formError string

func (e formError) Error() string { return string(e) }

// generatePlan runs a full planning pass against the current store and
// updates the plan tab with the result.
func (m *Model) generatePlan() {
	tasks, err := m.store.GetAllTasks()
	if err != nil {
		m.status = "failed to load tasks: " + err.Error()
		return
	}
	settings, err := m.store.GetSettings()
	if err != nil {
		m.status = "failed to load settings: " + err.Error()
		return
	}

	result, err := planner.Plan(tasks, time.Now(), settings)
	if err != nil {
		m.status = "plan rejected: " + err.Error()
		return
	}

	all := make([]models.Task, 0, len(result.Scheduled)+len(result.Unscheduled))
	all = append(all, result.Scheduled...)
	all = append(all, result.Unscheduled...)
	if err := m.store.SaveAllTasks(all); err != nil {
		m.status = "failed to save plan: " + err.Error()
		return
	}

	m.planModel.SetResult(result.Scheduled, result.Unscheduled, result.Warnings)
	m.taskList.SetTasks(all)
	m.status = ""
}

// addTask persists a new task from the completed form.
func (m *Model) addTask() {
	dur, err := strconv.Atoi(m.taskForm.Duration)
	if err != nil {
		m.status = "invalid duration: " + err.Error()
		return
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       m.taskForm.Title,
		DurationMin: dur,
		Priority:    models.Priority(m.taskForm.Priority),
		Status:      models.StatusTodo,
	}

	tasks, err := m.store.GetAllTasks()
	if err != nil {
		m.status = "failed to load tasks: " + err.Error()
		return
	}
	tasks = append(tasks, task)
	if err := m.store.SaveAllTasks(tasks); err != nil {
		m.status = "failed to save task: " + err.Error()
		return
	}
	m.taskList.SetTasks(tasks)
}

// deleteTask removes the task with id from storage.
func (m *Model) deleteTask(id string) {
	tasks, err := m.store.GetAllTasks()
	if err != nil {
		m.status = "failed to load tasks: " + err.Error()
		return
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if err := m.store.SaveAllTasks(kept); err != nil {
		m.status = "failed to delete task: " + err.Error()
		return
	}
	m.taskList.SetTasks(kept)
}
