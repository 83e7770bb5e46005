// Package picker renders a selection.Controller as a Bubble Tea component.
//
// The look follows the host platform:
//
//   - ios: the closed input opens a bottom sheet with an accessory toolbar
//     (previous/next chevrons and a Done button) above a wheel. Moving the
//     wheel selects immediately.
//   - android: an inline dropdown. Moving highlights, enter commits.
//   - android-headless: the host's own input content with an overlay
//     dropdown. Also used on Android when custom input content is given or
//     the native style is turned off.
//   - web: a plain select control.
//
// The Model wraps a *selection.Controller, which owns the item list, the
// selected item and the open/done/orientation flags. Host input changes go
// through SetInputs (or an InputsMsg) so the controller can resync and
// notify.
//
// Example:
//
//	opts := picker.DefaultOptions()
//	opts.Platform = picker.PlatformAndroid
//	opts.Items = []selection.Item{{Label: "Red", Value: "red"}, {Label: "Blue", Value: "blue"}}
//	opts.OnValueChange = func(value any, index int) { log.Println(value, index) }
//	opts.QuitOnSelect = true
//
//	final, err := tea.NewProgram(picker.New(opts)).Run()
package picker
