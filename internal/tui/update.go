package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rowanvale/dayforge/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listHeight := msg.Height - 4
		m.taskList.SetSize(msg.Width-4, listHeight)
		m.planModel.SetSize(msg.Width-4, listHeight)
		return m, nil

	case tasklist.AddTaskMsg:
		m.taskForm = &taskFormModel{Priority: "Medium"}
		m.form = newTaskForm(m.taskForm)
		return m, m.form.Init()

	case tasklist.DeleteTaskMsg:
		m.deleteTask(msg.ID)
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	return m.updateActiveTab(msg)
}

func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % numTabs
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + numTabs) % numTabs
		return true, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Generate):
		if m.state == statePlan {
			m.generatePlan()
			return true, nil
		}
	}
	return false, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.addTask()
		m.form = nil
		m.taskForm = nil
	}
	return m, cmd
}

func (m Model) updateActiveTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case statePlan:
		m.planModel, cmd = m.planModel.Update(msg)
	}
	return m, cmd
}
