package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/selectkit/internal/selection"
)

// Color palette
var (
	PrimaryColor     = lipgloss.Color("#7D56F4") // Purple - borders, focus
	TextColor        = lipgloss.Color("#FFFFFF") // White
	SubtleColor      = lipgloss.Color("#626262") // Gray
	PlaceholderColor = lipgloss.Color("#C7C7CD") // iOS placeholder gray
	ChevronColor     = lipgloss.Color("#D0D4DB") // Inert chevron
	ActionColor      = lipgloss.Color("#007AFF") // Done text, active chevron
	SheetColor       = lipgloss.Color("#D0D4DB")
	SheetDarkColor   = lipgloss.Color("#232323")
	ToolbarColor     = lipgloss.Color("#EFF1F2")
	ToolbarDarkColor = lipgloss.Color("#232323")
	DarkItemColor    = lipgloss.Color("#FFFFFF") // Item text on the dark sheet
)

// Styles holds every style the picker renders with. Hosts override fields
// of DefaultStyles() to customise the look.
type Styles struct {
	// Closed input
	Input            lipgloss.Style
	InputPlaceholder lipgloss.Style // Applied over Input while the placeholder is selected
	InputDisabled    lipgloss.Style
	Icon             lipgloss.Style

	// Modal sheet
	Toolbar       lipgloss.Style
	ToolbarDark   lipgloss.Style
	Chevron       lipgloss.Style
	ChevronActive lipgloss.Style
	Done          lipgloss.Style
	DoneDark      lipgloss.Style
	DoneDepressed lipgloss.Style
	Sheet         lipgloss.Style
	SheetDark     lipgloss.Style

	// Items
	DropdownItem lipgloss.Style // Items other than the selected one
	ActiveItem   lipgloss.Style // The selected item
	Cursor       lipgloss.Style
	Dropdown     lipgloss.Style

	Help lipgloss.Style
}

// DefaultStyles returns the stock look.
func DefaultStyles() Styles {
	return Styles{
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1),
		InputPlaceholder: lipgloss.NewStyle().
			Foreground(PlaceholderColor),
		InputDisabled: lipgloss.NewStyle().
			Foreground(SubtleColor).
			BorderForeground(SubtleColor),
		Icon: lipgloss.NewStyle().
			Foreground(SubtleColor).
			PaddingLeft(1),

		Toolbar: lipgloss.NewStyle().
			Background(ToolbarColor).
			Padding(0, 1),
		ToolbarDark: lipgloss.NewStyle().
			Background(ToolbarDarkColor).
			Padding(0, 1),
		Chevron: lipgloss.NewStyle().
			Foreground(ChevronColor),
		ChevronActive: lipgloss.NewStyle().
			Foreground(ActionColor),
		Done: lipgloss.NewStyle().
			Foreground(ActionColor).
			Bold(true),
		DoneDark: lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true),
		DoneDepressed: lipgloss.NewStyle().
			Reverse(true),
		Sheet: lipgloss.NewStyle().
			Background(SheetColor).
			Padding(0, 2),
		SheetDark: lipgloss.NewStyle().
			Background(SheetDarkColor).
			Padding(0, 2),

		DropdownItem: lipgloss.NewStyle().
			PaddingLeft(2),
		ActiveItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(SubtleColor).
			PaddingTop(1),
	}
}

// inputStyle returns the style for the closed input.
func (s Styles) inputStyle(placeholder, disabled bool) lipgloss.Style {
	style := s.Input
	if placeholder {
		style = style.Foreground(s.InputPlaceholder.GetForeground())
	}
	if disabled {
		style = style.Foreground(s.InputDisabled.GetForeground()).
			BorderForeground(s.InputDisabled.GetForeground())
	}
	return style
}

// itemStyle returns the style of one list row. An item color wins over the
// theme; the dark sheet turns uncoloured items white.
func (s Styles) itemStyle(item selection.Item, active, dark bool) lipgloss.Style {
	style := s.DropdownItem
	if active {
		style = s.ActiveItem
	}
	switch {
	case item.Color != "":
		style = style.Foreground(lipgloss.Color(item.Color))
	case dark:
		style = style.Foreground(DarkItemColor)
	}
	return style
}

// chevrons renders the accessory toolbar arrows.
func (s Styles) chevrons(upActive, downActive bool) string {
	up := s.Chevron
	if upActive {
		up = s.ChevronActive
	}
	down := s.Chevron
	if downActive {
		down = s.ChevronActive
	}
	return up.Render("▲") + " " + down.Render("▼")
}

// RenderModal places a sheet at the bottom of the screen over a dimmed
// background.
func RenderModal(sheet string, width, height int) string {
	if width <= 0 || height <= 0 {
		return sheet
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Bottom,
		sheet,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// padBetween joins left and right with spaces so the result is width wide.
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
