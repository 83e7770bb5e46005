package picker

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/selectkit/internal/locale"
)

// keyMap defines key bindings for every picker state
type keyMap struct {
	Open     key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Done     key.Binding
	Close    key.Binding
	Previous key.Binding
	Next     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Up, k.Down, k.Select},
		{k.Done, k.Previous, k.Next, k.Close, k.Quit},
	}
}

// closedHelp is shown while the input is collapsed.
func (k keyMap) closedHelp() []key.Binding {
	return []key.Binding{k.Open, k.Quit}
}

// sheetHelp is shown while the modal sheet is open.
func (k keyMap) sheetHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Previous, k.Next, k.Done, k.Close}
}

// dropdownHelp is shown while a dropdown list is expanded.
func (k keyMap) dropdownHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}

func newKeyMap(tr *locale.Translator, hasPrevious, hasNext bool) keyMap {
	keys := keyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", tr.T(locale.HelpOpen)),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", tr.T(locale.HelpMove)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", tr.T(locale.HelpMove)),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", tr.T(locale.HelpSelect)),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "d"),
			key.WithHelp("enter", tr.T(locale.HelpDone)),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", tr.T(locale.HelpClose)),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", tr.T(locale.HelpPrevious)),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", tr.T(locale.HelpNext)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", tr.T(locale.HelpQuit)),
		),
	}

	// Chevrons without a handler are inert
	keys.Previous.SetEnabled(hasPrevious)
	keys.Next.SetEnabled(hasNext)
	return keys
}
