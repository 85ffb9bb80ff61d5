// Package plan renders the generated plan tab of the TUI.
package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rowanvale/dayforge/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// Model displays the most recent planning pass's result.
type Model struct {
	viewport    viewport.Model
	Scheduled   []models.Task
	Unscheduled []models.Task
	Warnings    []string
	generated   bool
}

// New creates a plan viewport sized to width x height.
func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.generated {
		return "No plan generated yet. Press 'g' to generate."
	}
	return m.viewport.View()
}

// SetSize resizes the viewport and re-renders.
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetResult stores a fresh planning pass result and renders it.
func (m *Model) SetResult(scheduled, unscheduled []models.Task, warnings []string) {
	m.Scheduled = scheduled
	m.Unscheduled = unscheduled
	m.Warnings = warnings
	m.generated = true
	m.render()
}

func (m *Model) render() {
	var b strings.Builder
	for _, t := range m.Scheduled {
		if t.ScheduledStart == nil || t.ScheduledEnd == nil {
			continue
		}
		timeStr := fmt.Sprintf("%s - %s", t.ScheduledStart.Format("Mon 15:04"), t.ScheduledEnd.Format("15:04"))
		if t.IsBreak() {
			b.WriteString(fmt.Sprintf("%s %s\n", timeStyle.Render(timeStr), breakStyle.Render("Break")))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", timeStyle.Render(timeStr), taskStyle.Render(t.Title)))
	}
	if len(m.Unscheduled) > 0 {
		b.WriteString("\n" + warningStyle.Render(fmt.Sprintf("%d task(s) unscheduled:", len(m.Unscheduled))) + "\n")
		for _, t := range m.Unscheduled {
			b.WriteString(fmt.Sprintf("  %s: %s\n", t.Title, t.Reason))
		}
	}
	for _, w := range m.Warnings {
		b.WriteString("\n" + warningStyle.Render(w) + "\n")
	}
	m.viewport.SetContent(b.String())
}
