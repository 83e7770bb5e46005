package picker

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/selectkit/internal/selection"
)

// Sheet sizing
const (
	PortraitRows  = 7
	LandscapeRows = 5

	minSheetWidth = 32
	maxSheetWidth = 60
)

// doneReleaseDelay is how long the Done control stays depressed.
const doneReleaseDelay = 120 * time.Millisecond

// doneReleasedMsg ends the Done press and closes the sheet
type doneReleasedMsg struct{}

// VisibleRows returns how many wheel rows fit the sheet.
func VisibleRows(o selection.Orientation) int {
	if o == selection.Landscape {
		return LandscapeRows
	}
	return PortraitRows
}

// updateSheet handles input while the iOS sheet is open. Moving the wheel
// selects immediately, one notification per step.
func (m Model) updateSheet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx := m.ctrl.Index()

	switch {
	case key.Matches(msg, m.Keys.Up):
		if idx > 0 {
			m.selectIndex(idx - 1)
		}

	case key.Matches(msg, m.Keys.Down):
		if idx < len(m.ctrl.Items())-1 {
			m.selectIndex(idx + 1)
		}

	case key.Matches(msg, m.Keys.Done):
		if m.ctrl.DoneDepressed() {
			return m, nil
		}
		m.ctrl.SetDoneDepressed(true)
		return m, tea.Tick(doneReleaseDelay, func(time.Time) tea.Msg {
			return doneReleasedMsg{}
		})

	case key.Matches(msg, m.Keys.Previous):
		m.ctrl.Toggle(false)
		m.opts.OnUpArrow()

	case key.Matches(msg, m.Keys.Next):
		m.ctrl.Toggle(false)
		m.opts.OnDownArrow()

	case key.Matches(msg, m.Keys.Close):
		m.ctrl.Toggle(false)
	}

	return m, nil
}

// finishDone closes the sheet after the Done press is released.
func (m Model) finishDone() (tea.Model, tea.Cmd) {
	if !m.ctrl.Open() {
		m.ctrl.SetDoneDepressed(false)
		return m, nil
	}

	m.ctrl.Toggle(true)
	if m.opts.OnDonePress != nil {
		m.opts.OnDonePress()
	}
	m.confirmed = true

	m.log.Debug("done pressed", zap.Int("index", m.ctrl.Index()))
	if m.opts.QuitOnSelect {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewModal() string {
	input := m.viewInput()
	if !m.ctrl.Open() {
		return joinLines(input, m.viewHelp(m.Keys.closedHelp()))
	}

	sheet := joinLines(m.viewSheet(), m.viewHelp(m.Keys.sheetHelp()))
	if m.Width == 0 || m.Height == 0 {
		return joinLines(input, sheet)
	}

	rest := m.Height - lipgloss.Height(input)
	if rest < lipgloss.Height(sheet) {
		return joinLines(input, sheet)
	}
	return joinLines(input, RenderModal(sheet, m.Width, rest))
}

func (m Model) sheetWidth() int {
	return clamp(m.Width, minSheetWidth, maxSheetWidth)
}

// viewSheet renders the accessory toolbar above the wheel.
func (m Model) viewSheet() string {
	width := m.sheetWidth()
	dark := m.opts.DarkTheme

	toolbar, done, sheet := m.styles.Toolbar, m.styles.Done, m.styles.Sheet
	if dark {
		toolbar, done, sheet = m.styles.ToolbarDark, m.styles.DoneDark, m.styles.SheetDark
	}
	if m.ctrl.DoneDepressed() {
		done = m.styles.DoneDepressed.Inherit(done)
	}

	bar := padBetween(
		m.styles.chevrons(m.opts.OnUpArrow != nil, m.opts.OnDownArrow != nil),
		done.Render(m.doneText),
		width-toolbar.GetHorizontalFrameSize(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		toolbar.Width(width).Render(bar),
		sheet.Width(width).Render(m.viewWheel(dark)),
	)
}

// viewWheel renders a fixed-height window of items centred on the selection.
func (m Model) viewWheel(dark bool) string {
	items := m.ctrl.Items()
	idx := m.ctrl.Index()
	rows := VisibleRows(m.ctrl.Orientation())

	start, end := wheelWindow(idx, len(items), rows)

	lines := make([]string, 0, rows)
	for i := start; i < end; i++ {
		active := i == idx
		marker := "  "
		if active {
			marker = "› "
		}
		lines = append(lines, marker+m.styles.itemStyle(items[i], active, dark).Render(items[i].Label))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// wheelWindow returns the [start, end) range of rows shown around idx.
func wheelWindow(idx, count, rows int) (int, int) {
	if count <= rows {
		return 0, count
	}
	start := clamp(idx-rows/2, 0, count-rows)
	return start, start + rows
}
