package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case stateTasks:
		b.WriteString(m.taskList.View())
	case statePlan:
		b.WriteString(m.planModel.View())
	}

	if m.status != "" {
		b.WriteString("\n\n" + dangerStyle.Render(m.status))
	}

	b.WriteString("\n\n" + m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	labels := []string{"Tasks", "Plan"}
	states := []sessionState{stateTasks, statePlan}

	var rendered []string
	for i, label := range labels {
		if states[i] == m.state {
			rendered = append(rendered, activeTabStyle.Render(label))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
