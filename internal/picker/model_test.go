package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/selectkit/internal/locale"
	"github.com/muurk/selectkit/internal/selection"
)

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	upKey       = tea.KeyMsg{Type: tea.KeyUp}
	downKey     = tea.KeyMsg{Type: tea.KeyDown}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	ctrlCKey    = tea.KeyMsg{Type: tea.KeyCtrlC}
	quitKey     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func fruitItems() []selection.Item {
	return []selection.Item{
		{Label: "Apple", Value: "apple"},
		{Label: "Banana", Value: "banana", InputLabel: "BANANA"},
		{Label: "Cherry", Value: "cherry", Color: "#FF0000"},
	}
}

type valueChange struct {
	value any
	index int
}

// events records every callback the picker fires.
type events struct {
	changes []valueChange
	opens   int
	closes  []bool
	dones   int
	ups     int
	downs   int
}

func newTestModel(t *testing.T, platform Platform, configure ...func(*Options)) (Model, *events) {
	t.Helper()

	ev := &events{}
	opts := DefaultOptions()
	opts.Platform = platform
	opts.Items = fruitItems()
	opts.OnValueChange = func(value any, index int) {
		ev.changes = append(ev.changes, valueChange{value, index})
	}
	opts.OnOpen = func() { ev.opens++ }
	opts.OnClose = func(done bool) { ev.closes = append(ev.closes, done) }
	opts.OnDonePress = func() { ev.dones++ }

	for _, fn := range configure {
		fn(&opts)
	}
	return New(opts), ev
}

// press feeds key messages through Update and returns the last command.
func press(t *testing.T, m Model, keys ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewSeedsWithoutNotification(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS, func(o *Options) {
		o.Target = selection.TargetValue("banana")
	})

	assert.Equal(t, 2, m.Index())
	assert.Equal(t, "banana", m.Value())
	assert.Len(t, m.Controller().Items(), 4)
	assert.Empty(t, ev.changes)
	assert.False(t, m.Open())
}

func TestNewDefaultPlaceholder(t *testing.T) {
	m, _ := newTestModel(t, PlatformIOS)

	assert.Equal(t, selection.DefaultPlaceholderLabel, m.Placeholder().Label)
	assert.Equal(t, selection.DefaultPlaceholderColor, m.Placeholder().Color)
	assert.Equal(t, 0, m.Index())
	assert.Contains(t, m.View(), selection.DefaultPlaceholderLabel)
}

func TestNewLocalizedDefaults(t *testing.T) {
	tr, err := locale.New("de")
	require.NoError(t, err)

	m, _ := newTestModel(t, PlatformIOS, func(o *Options) {
		o.Translator = tr
	})
	assert.Equal(t, "Element auswählen...", m.Placeholder().Label)

	m, _ = press(t, m, enterKey)
	assert.Contains(t, m.View(), "Fertig")
}

func TestEmptyPlaceholderRemovesEntry(t *testing.T) {
	m, _ := newTestModel(t, PlatformIOS, func(o *Options) {
		o.Placeholder = &selection.Placeholder{}
	})

	items := m.Controller().Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Apple", m.Selected().Label)
	assert.Equal(t, 0, m.Index())
}

func TestModalOpenFiresOnOpen(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS)
	require.Equal(t, VariantModal, m.Variant())

	m, cmd := press(t, m, enterKey)

	assert.Nil(t, cmd)
	assert.True(t, m.Open())
	assert.Equal(t, 1, ev.opens)
	assert.Empty(t, ev.closes)
}

func TestModalWheelSelectsEachStep(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS)

	m, _ = press(t, m, enterKey, upKey, downKey, downKey)

	assert.Equal(t, []valueChange{{"apple", 1}, {"banana", 2}}, ev.changes)
	assert.Equal(t, "Banana", m.Selected().Label)
	assert.True(t, m.Open(), "moving the wheel keeps the sheet open")

	m, _ = press(t, m, downKey, downKey)
	assert.Equal(t, 3, m.Index(), "wheel stops at the last item")
	assert.Len(t, ev.changes, 3)
}

func TestModalDonePress(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS)
	m, _ = press(t, m, enterKey, downKey)

	m, cmd := press(t, m, enterKey)
	require.NotNil(t, cmd, "Done schedules its release")
	assert.True(t, m.Controller().DoneDepressed())
	assert.True(t, m.Open())

	_, again := press(t, m, enterKey)
	assert.Nil(t, again, "a held Done ignores repeats")

	m, cmd = press(t, m, doneReleasedMsg{})
	assert.Nil(t, cmd)
	assert.False(t, m.Open())
	assert.False(t, m.Controller().DoneDepressed())
	assert.Equal(t, []bool{true}, ev.closes)
	assert.Equal(t, 1, ev.dones)
	assert.True(t, m.Confirmed())
	assert.Equal(t, "apple", m.Value())
}

func TestModalDonePressQuits(t *testing.T) {
	m, _ := newTestModel(t, PlatformIOS, func(o *Options) {
		o.QuitOnSelect = true
	})
	m, _ = press(t, m, enterKey, enterKey)

	_, cmd := press(t, m, doneReleasedMsg{})
	assert.True(t, isQuit(cmd))
}

func TestStaleDoneReleaseIsHarmless(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS)

	m, cmd := press(t, m, doneReleasedMsg{})
	assert.Nil(t, cmd)
	assert.False(t, m.Open())
	assert.Empty(t, ev.closes)
	assert.Zero(t, ev.dones)
}

func TestModalCloseWithoutDone(t *testing.T) {
	for _, k := range []tea.KeyMsg{escKey, quitKey} {
		t.Run(k.String(), func(t *testing.T) {
			m, ev := newTestModel(t, PlatformIOS)
			m, cmd := press(t, m, enterKey, k)

			assert.Nil(t, cmd)
			assert.False(t, m.Open())
			assert.Equal(t, []bool{false}, ev.closes)
			assert.False(t, m.Confirmed())
			assert.False(t, m.Aborted())
		})
	}
}

func TestModalAccessoryArrows(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS, func(o *Options) {
		o.OnUpArrow = func() {}
		o.OnDownArrow = func() {}
	})
	m.opts.OnUpArrow = func() { ev.ups++ }
	m.opts.OnDownArrow = func() { ev.downs++ }

	m, _ = press(t, m, enterKey, tabKey)
	assert.False(t, m.Open())
	assert.Equal(t, 1, ev.downs)

	m, _ = press(t, m, enterKey, shiftTabKey)
	assert.False(t, m.Open())
	assert.Equal(t, 1, ev.ups)
	assert.Equal(t, []bool{false, false}, ev.closes)
}

func TestModalArrowsInertWithoutCallbacks(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS)

	m, _ = press(t, m, enterKey, tabKey, shiftTabKey)

	assert.True(t, m.Open())
	assert.Empty(t, ev.closes)
}

func TestModalDisabled(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS, func(o *Options) {
		o.Disabled = true
	})

	m, _ = press(t, m, enterKey, downKey)

	assert.False(t, m.Open())
	assert.Zero(t, ev.opens)
	assert.Empty(t, ev.changes)
}

func TestWindowSizeSetsOrientation(t *testing.T) {
	m, _ := newTestModel(t, PlatformIOS)

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, selection.Landscape, m.Controller().Orientation())
	assert.Equal(t, 120, m.Width)

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, selection.Portrait, m.Controller().Orientation())
}

func TestOrientationFor(t *testing.T) {
	assert.Equal(t, selection.Portrait, OrientationFor(80, 40))
	assert.Equal(t, selection.Landscape, OrientationFor(81, 40))
	assert.Equal(t, PortraitRows, VisibleRows(selection.Portrait))
	assert.Equal(t, LandscapeRows, VisibleRows(selection.Landscape))
}

func TestWheelWindow(t *testing.T) {
	tests := []struct {
		idx, count, rows int
		start, end       int
	}{
		{0, 3, 7, 0, 3},
		{0, 20, 7, 0, 7},
		{10, 20, 7, 7, 14},
		{19, 20, 7, 13, 20},
		{2, 5, 5, 0, 5},
	}

	for _, tt := range tests {
		start, end := wheelWindow(tt.idx, tt.count, tt.rows)
		assert.Equal(t, tt.start, start, "start for idx %d", tt.idx)
		assert.Equal(t, tt.end, end, "end for idx %d", tt.idx)
	}
}

func TestSheetView(t *testing.T) {
	m, _ := newTestModel(t, PlatformIOS, func(o *Options) {
		o.DoneText = "OK"
	})
	m, _ = press(t, m, enterKey, downKey)

	view := m.View()
	assert.Contains(t, view, "OK")
	assert.Regexp(t, `›\s+Apple`, view)
	assert.Contains(t, view, "Cherry")
	assert.Contains(t, view, "▲")
}

func TestDropdownMovesThenCommits(t *testing.T) {
	m, ev := newTestModel(t, PlatformAndroid)
	require.Equal(t, VariantNative, m.Variant())

	m, _ = press(t, m, enterKey)
	require.True(t, m.Open())
	assert.Zero(t, ev.opens, "the native dropdown has no open callback")

	m, _ = press(t, m, downKey, downKey, upKey, downKey)
	assert.Equal(t, 2, m.Cursor())
	assert.Empty(t, ev.changes, "highlighting does not select")

	m, cmd := press(t, m, enterKey)
	assert.Nil(t, cmd)
	assert.False(t, m.Open())
	assert.True(t, m.Confirmed())
	assert.Equal(t, []valueChange{{"banana", 2}}, ev.changes)
	assert.Empty(t, ev.closes)
}

func TestDropdownCommitQuits(t *testing.T) {
	m, _ := newTestModel(t, PlatformWeb, func(o *Options) {
		o.QuitOnSelect = true
	})

	_, cmd := press(t, m, enterKey, downKey, enterKey)
	assert.True(t, isQuit(cmd))
}

func TestDropdownEscDiscardsHighlight(t *testing.T) {
	m, ev := newTestModel(t, PlatformWeb)

	m, _ = press(t, m, enterKey, downKey, downKey, escKey)

	assert.False(t, m.Open())
	assert.Equal(t, 0, m.Cursor())
	assert.Empty(t, ev.changes)
}

func TestDropdownCursorClamps(t *testing.T) {
	m, _ := newTestModel(t, PlatformAndroid)

	m, _ = press(t, m, enterKey, upKey)
	assert.Equal(t, 0, m.Cursor())

	m, _ = press(t, m, downKey, downKey, downKey, downKey, downKey)
	assert.Equal(t, 3, m.Cursor())
}

func TestDropdownView(t *testing.T) {
	m, _ := newTestModel(t, PlatformAndroid, func(o *Options) {
		o.Target = selection.TargetValue("apple")
	})
	m, _ = press(t, m, enterKey, downKey)

	view := m.View()
	assert.Contains(t, view, "(•)")
	assert.Contains(t, view, "←")
	assert.Contains(t, view, "Banana")
}

func TestHeadlessVariant(t *testing.T) {
	m, ev := newTestModel(t, PlatformAndroid, func(o *Options) {
		o.Input = "[ custom trigger ]"
	})
	require.Equal(t, VariantHeadless, m.Variant())
	assert.Contains(t, m.View(), "[ custom trigger ]")

	m, _ = press(t, m, enterKey)
	assert.True(t, m.Open())
	assert.Equal(t, 1, ev.opens)

	m, _ = press(t, m, escKey)
	assert.False(t, m.Open())
	assert.Empty(t, ev.closes, "headless dropdowns never report close")
}

func TestDropdownDisabled(t *testing.T) {
	m, ev := newTestModel(t, PlatformAndroid, func(o *Options) {
		o.Disabled = true
		o.UseNativeAndroidPickerStyle = false
	})

	m, _ = press(t, m, enterKey)

	assert.False(t, m.Open())
	assert.Zero(t, ev.opens)
}

func TestSetDisabledCollapses(t *testing.T) {
	m, _ := newTestModel(t, PlatformAndroid)
	m, _ = press(t, m, enterKey)
	require.True(t, m.Open())

	m = m.SetDisabled(true)
	assert.False(t, m.Open())
	assert.True(t, m.Controller().Disabled())

	m = m.SetDisabled(false)
	m, _ = press(t, m, enterKey)
	assert.True(t, m.Open())
}

func TestSetInputsResyncs(t *testing.T) {
	m, ev := newTestModel(t, PlatformIOS)

	m = m.SetInputs(fruitItems(), nil, selection.TargetValue("cherry"))
	assert.Equal(t, []valueChange{{"cherry", 3}}, ev.changes)
	assert.Equal(t, "Cherry", m.Selected().Label)

	m = m.SetInputs(fruitItems(), nil, selection.TargetValue("cherry"))
	assert.Len(t, ev.changes, 1, "unchanged inputs do not notify")
}

func TestInputsMsg(t *testing.T) {
	m, ev := newTestModel(t, PlatformAndroid)

	custom := selection.Placeholder{Label: "Pick a fruit", Value: "none"}
	m, _ = press(t, m, InputsMsg{
		Items:       fruitItems()[:2],
		Placeholder: &custom,
		Target:      selection.TargetValue("banana"),
	})

	assert.Equal(t, "Pick a fruit", m.Placeholder().Label)
	assert.Len(t, m.Controller().Items(), 3)
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, 2, m.Cursor())
	require.NotEmpty(t, ev.changes)
	assert.Equal(t, valueChange{"banana", 2}, ev.changes[len(ev.changes)-1])
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, PlatformIOS)
	m, cmd := press(t, m, quitKey)
	assert.True(t, m.Aborted())
	assert.True(t, isQuit(cmd))

	m, _ = newTestModel(t, PlatformAndroid)
	m, cmd = press(t, m, enterKey, ctrlCKey)
	assert.True(t, m.Aborted())
	assert.True(t, isQuit(cmd))
}

func TestClosedInputView(t *testing.T) {
	m, _ := newTestModel(t, PlatformIOS, func(o *Options) {
		o.Target = selection.TargetValue("banana")
		o.Icon = "⌄"
	})

	view := m.View()
	assert.Contains(t, view, "BANANA", "input label wins over label")
	assert.Contains(t, view, "⌄")
}

func TestItemStyle(t *testing.T) {
	s := DefaultStyles()

	plain := selection.Item{Label: "A"}
	colored := selection.Item{Label: "B", Color: "#FF0000"}

	assert.Equal(t, DarkItemColor, s.itemStyle(plain, false, true).GetForeground())
	assert.Equal(t, lipgloss.Color("#FF0000"), s.itemStyle(colored, false, true).GetForeground())
	assert.Equal(t, lipgloss.Color("#FF0000"), s.itemStyle(colored, true, false).GetForeground())
	assert.True(t, s.itemStyle(plain, true, false).GetBold())
	assert.False(t, s.itemStyle(plain, false, false).GetBold())
}

func TestModelLogsThroughController(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	m, _ := newTestModel(t, PlatformIOS, func(o *Options) {
		o.Logger = zap.New(core)
	})
	_, _ = press(t, m, enterKey, downKey)

	assert.Equal(t, 1, logs.FilterMessage("picker created").Len())
	assert.Equal(t, 1, logs.FilterMessage("picker toggled").Len())
	assert.Equal(t, 1, logs.FilterMessage("item selected").Len())
}

func TestSelectIndexRejectsOutOfRange(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	m, ev := newTestModel(t, PlatformIOS, func(o *Options) {
		o.Logger = zap.New(core)
	})

	assert.False(t, m.selectIndex(len(m.Controller().Items())))
	assert.False(t, m.selectIndex(-1))
	assert.Equal(t, 0, m.Index())
	assert.Empty(t, ev.changes)
	assert.Equal(t, 2, logs.FilterMessage("selection rejected").Len())

	assert.True(t, m.selectIndex(1))
	assert.Equal(t, 1, m.Index())
	assert.Len(t, ev.changes, 1)
}
