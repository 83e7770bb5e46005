package picker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/selectkit/internal/locale"
	"github.com/muurk/selectkit/internal/logging"
	"github.com/muurk/selectkit/internal/selection"
)

// Options configures a picker Model. Start from DefaultOptions so
// UseNativeAndroidPickerStyle gets its usual true value.
type Options struct {
	Platform    Platform
	Items       []selection.Item
	Placeholder *selection.Placeholder // nil applies the localized default, &selection.Placeholder{} removes it
	Target      selection.Target

	Disabled                    bool
	DarkTheme                   bool   // Only affects the iOS sheet
	DoneText                    string // Empty uses the localized text
	Icon                        string // Drawn after the closed input
	Input                       string // Custom closed-input content, forces the headless variant on Android
	UseNativeAndroidPickerStyle bool

	Styles     *Styles            // nil uses DefaultStyles()
	Translator *locale.Translator // nil uses English

	OnValueChange func(value any, index int)
	OnOpen        func()
	OnClose       func(done bool)
	OnDonePress   func()
	OnUpArrow     func()
	OnDownArrow   func()

	// QuitOnSelect ends the Bubble Tea program once a choice is confirmed.
	QuitOnSelect bool

	Logger *zap.Logger
}

// DefaultOptions returns Options for an iOS picker with the default placeholder.
func DefaultOptions() Options {
	return Options{
		Platform:                    PlatformIOS,
		UseNativeAndroidPickerStyle: true,
	}
}

// InputsMsg replaces the host inputs of a running picker.
type InputsMsg struct {
	Items       []selection.Item
	Placeholder *selection.Placeholder
	Target      selection.Target
}

// Model is the Bubble Tea picker component.
type Model struct {
	ctrl        *selection.Controller
	opts        Options
	variant     Variant
	placeholder selection.Placeholder
	tr          *locale.Translator
	doneText    string
	styles      Styles
	log         *zap.Logger

	// UI state
	Width  int
	Height int

	// Dropdown variants keep their own expanded flag and highlight
	expanded bool
	cursor   int

	confirmed bool
	aborted   bool

	Help help.Model
	Keys keyMap
}

// New creates a picker. The controller is seeded without a value-change
// notification.
func New(opts Options) Model {
	tr := opts.Translator
	if tr == nil {
		tr = locale.English()
	}

	log := opts.Logger
	if log == nil {
		log = logging.Named("picker")
	}

	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	doneText := opts.DoneText
	if doneText == "" {
		doneText = tr.DoneText()
	}

	m := Model{
		opts:     opts,
		variant:  VariantFor(opts.Platform, opts.Input != "", opts.UseNativeAndroidPickerStyle),
		tr:       tr,
		doneText: doneText,
		styles:   styles,
		log:      log,
		Help:     help.New(),
		Keys:     newKeyMap(tr, opts.OnUpArrow != nil, opts.OnDownArrow != nil),
	}
	m.placeholder = m.resolvePlaceholder(opts.Placeholder)

	m.ctrl = selection.New(
		selection.Inputs{
			Placeholder: m.placeholder,
			Items:       opts.Items,
			Target:      opts.Target,
		},
		selection.WithOnValueChange(opts.OnValueChange),
		selection.WithOnOpen(opts.OnOpen),
		selection.WithOnClose(opts.OnClose),
		selection.WithDisabled(opts.Disabled),
		selection.WithLogger(log),
	)
	m.cursor = m.ctrl.Index()

	log.Debug("picker created",
		zap.Stringer("platform", opts.Platform),
		zap.Stringer("variant", m.variant),
		zap.Int("items", len(m.ctrl.Items())),
	)
	return m
}

func (m Model) resolvePlaceholder(p *selection.Placeholder) selection.Placeholder {
	if p != nil {
		return *p
	}
	def := selection.DefaultPlaceholder()
	def.Label = m.tr.PlaceholderLabel()
	return def
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.ctrl.SetOrientation(OrientationFor(msg.Width, msg.Height))
		return m, nil

	case InputsMsg:
		return m.SetInputs(msg.Items, msg.Placeholder, msg.Target), nil

	case doneReleasedMsg:
		return m.finishDone()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}

		if m.variant == VariantModal {
			if m.ctrl.Open() {
				return m.updateSheet(msg)
			}
		} else if m.expanded {
			return m.updateDropdown(msg)
		}
		return m.updateClosed(msg)
	}

	return m, nil
}

// updateClosed handles input while the picker is collapsed
func (m Model) updateClosed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Open):
		return m.open(), nil
	case key.Matches(msg, m.Keys.Quit):
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

// open expands the picker. The modal goes through the controller so OnOpen
// fires; the headless variant calls OnOpen itself and the native dropdowns
// have no open callback.
func (m Model) open() Model {
	if m.variant == VariantModal {
		m.ctrl.Toggle(false)
		return m
	}

	if m.ctrl.Disabled() {
		m.log.Debug("open ignored, picker disabled")
		return m
	}
	m.expanded = true
	m.cursor = m.ctrl.Index()
	if m.variant == VariantHeadless && m.opts.OnOpen != nil {
		m.opts.OnOpen()
	}
	m.log.Debug("dropdown expanded", zap.Int("cursor", m.cursor))
	return m
}

// SetInputs forwards new host inputs to the controller. A nil placeholder
// applies the localized default.
func (m Model) SetInputs(items []selection.Item, placeholder *selection.Placeholder, target selection.Target) Model {
	m.placeholder = m.resolvePlaceholder(placeholder)
	m.opts.Items = items
	m.opts.Target = target

	m.ctrl.Update(selection.Inputs{
		Placeholder: m.placeholder,
		Items:       items,
		Target:      target,
	})

	if !m.expanded {
		m.cursor = m.ctrl.Index()
	}
	m.cursor = clamp(m.cursor, 0, len(m.ctrl.Items())-1)
	return m
}

// SetDisabled enables or disables the picker. Disabling collapses an
// expanded dropdown.
func (m Model) SetDisabled(disabled bool) Model {
	m.ctrl.SetDisabled(disabled)
	if disabled {
		m.expanded = false
	}
	return m
}

// Controller returns the underlying selection controller.
func (m Model) Controller() *selection.Controller {
	return m.ctrl
}

// Selected returns the selected item.
func (m Model) Selected() selection.Item {
	return m.ctrl.Selected()
}

// Index returns the selected position in the item list.
func (m Model) Index() int {
	return m.ctrl.Index()
}

// Value returns the selected item's value.
func (m Model) Value() any {
	return m.ctrl.Selected().Value
}

// Variant returns the rendering strategy in use.
func (m Model) Variant() Variant {
	return m.variant
}

// Placeholder returns the placeholder currently in effect.
func (m Model) Placeholder() selection.Placeholder {
	return m.placeholder
}

// Open reports whether the sheet or dropdown is showing.
func (m Model) Open() bool {
	if m.variant == VariantModal {
		return m.ctrl.Open()
	}
	return m.expanded
}

// Cursor returns the highlighted row of an expanded dropdown.
func (m Model) Cursor() int {
	return m.cursor
}

// Confirmed reports whether the user confirmed a choice (Done or a
// dropdown commit).
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Aborted reports whether the user quit the program.
func (m Model) Aborted() bool {
	return m.aborted
}

// View renders the picker
func (m Model) View() string {
	if m.variant == VariantModal {
		return m.viewModal()
	}
	return m.viewDropdown()
}

// viewInput renders the closed input: the custom content when the headless
// variant has one, otherwise the selected label plus icon.
func (m Model) viewInput() string {
	if m.variant == VariantHeadless && m.opts.Input != "" {
		return m.opts.Input
	}

	content := m.ctrl.DisplayLabel()
	if content == "" {
		content = " "
	}

	icon := m.opts.Icon
	if icon == "" && (m.variant == VariantNative || m.variant == VariantWeb) {
		icon = "▾"
	}
	if icon != "" {
		content += m.styles.Icon.Render(icon)
	}

	dimmed := m.variant != VariantWeb && m.ctrl.IsPlaceholderSelected(m.placeholder)
	return m.styles.inputStyle(dimmed, m.ctrl.Disabled()).Render(content)
}

func (m Model) viewHelp(bindings []key.Binding) string {
	return m.styles.Help.Render(m.Help.ShortHelpView(bindings))
}

// joinLines stacks non-empty blocks vertically.
func joinLines(blocks ...string) string {
	var parts []string
	for _, b := range blocks {
		if b != "" {
			parts = append(parts, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// selectIndex picks index on the controller. A rejected pick is logged and
// leaves the selection as it was.
func (m Model) selectIndex(index int) bool {
	if err := m.ctrl.Select(index); err != nil {
		m.log.Warn("selection rejected", zap.Int("index", index), zap.Error(err))
		return false
	}
	return true
}

// OrientationFor derives the orientation from terminal dimensions. Terminal
// cells are about twice as tall as wide, so the width must exceed twice the
// height to count as landscape.
func OrientationFor(width, height int) selection.Orientation {
	if width > 2*height {
		return selection.Landscape
	}
	return selection.Portrait
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
