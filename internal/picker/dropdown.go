package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// updateDropdown handles input while an Android or web dropdown is expanded.
// Moving only highlights; the value changes on commit.
func (m Model) updateDropdown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(m.ctrl.Items()) - 1

	switch {
	case key.Matches(msg, m.Keys.Up):
		m.cursor = clamp(m.cursor-1, 0, last)

	case key.Matches(msg, m.Keys.Down):
		m.cursor = clamp(m.cursor+1, 0, last)

	case key.Matches(msg, m.Keys.Select):
		if last < 0 {
			m.expanded = false
			return m, nil
		}
		if !m.selectIndex(m.cursor) {
			return m, nil
		}
		m.expanded = false
		m.confirmed = true
		m.log.Debug("dropdown committed", zap.Int("index", m.cursor))
		if m.opts.QuitOnSelect {
			return m, tea.Quit
		}

	case key.Matches(msg, m.Keys.Close):
		m.expanded = false
		m.cursor = m.ctrl.Index()
	}

	return m, nil
}

func (m Model) viewDropdown() string {
	input := m.viewInput()
	if !m.expanded {
		return joinLines(input, m.viewHelp(m.Keys.closedHelp()))
	}

	items := m.ctrl.Items()
	selected := m.ctrl.Index()

	var lines []string
	for i, item := range items {
		indicator := "( )"
		if i == selected {
			indicator = "(•)"
		}
		cursor := ""
		if i == m.cursor {
			cursor = m.styles.Cursor.Render(" ← ")
		}
		label := m.styles.itemStyle(item, i == selected, false).Render(item.Label)
		lines = append(lines, indicator+label+cursor)
	}

	return joinLines(
		input,
		m.styles.Dropdown.Render(strings.Join(lines, "\n")),
		m.viewHelp(m.Keys.dropdownHelp()),
	)
}
