package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/selectkit/internal/config"
	"github.com/muurk/selectkit/internal/logging"
	"github.com/muurk/selectkit/internal/picker"
	"github.com/muurk/selectkit/internal/selection"
	"github.com/muurk/selectkit/internal/ui"
)

var (
	errCancelled  = errors.New("selection cancelled")
	errNoTerminal = errors.New("the picker needs a terminal on stderr (use resolve for scripted lookups)")
)

// choice is the machine-readable form of a selection.
type choice struct {
	Index        int    `json:"index"`
	Label        string `json:"label"`
	DisplayLabel string `json:"display_label"`
	Value        any    `json:"value"`
	Key          any    `json:"key,omitempty"`
	Matched      bool   `json:"matched"`
}

func newChoice(item selection.Item, index int, matched bool) choice {
	return choice{
		Index:        index,
		Label:        item.Label,
		DisplayLabel: item.DisplayLabel(),
		Value:        item.Value,
		Key:          item.Key,
		Matched:      matched,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// pickCmd runs the interactive picker
func (a *app) newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick an item interactively (default command)",
		Long: `Show the items in the chosen platform style and print the picked value.

The picker draws on stderr and the value goes to stdout. Quitting without
confirming a choice exits with an error.`,
		Example: `  # iOS-style sheet
  selectkit pick --items colours.yaml

  # Android dropdown, preselect by value
  selectkit pick --items colours.yaml --platform android --value blue

  # JSON output for scripting
  selectkit pick --items sports.toml --format json`,
		RunE: a.runPick,
	}
}

func (a *app) runPick(cmd *cobra.Command, args []string) error {
	s, err := a.loadSettings(cmd)
	if err != nil {
		return err
	}

	screen := cmd.ErrOrStderr()
	if !ui.IsTerminal(screen) {
		return errNoTerminal
	}

	in := s.Inputs()
	log := logging.Named("pick")

	opts := picker.DefaultOptions()
	opts.Platform = s.Platform
	opts.Items = in.Items
	opts.Placeholder = &in.Placeholder
	opts.Target = in.Target
	opts.Disabled = s.Disabled
	opts.DarkTheme = s.DarkTheme
	opts.DoneText = s.DoneText
	opts.UseNativeAndroidPickerStyle = s.UseNativeAndroidStyle
	opts.Translator = s.Translator
	opts.QuitOnSelect = true
	opts.Logger = log
	opts.OnValueChange = func(value any, index int) {
		log.Info("value changed", zap.Any("value", value), zap.Int("index", index))
	}

	progOpts := []tea.ProgramOption{tea.WithOutput(screen)}
	if s.Platform == picker.PlatformIOS {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(picker.New(opts), progOpts...).Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(picker.Model)
	if !ok || m.Aborted() || !m.Confirmed() {
		logging.Warn("picker closed without a choice")
		return errCancelled
	}
	logging.Info("value chosen", zap.Int("index", m.Index()), zap.Any("value", m.Value()))

	out := cmd.OutOrStdout()
	if s.Format == "json" {
		return writeJSON(out, newChoice(m.Selected(), m.Index(), true))
	}
	fmt.Fprintln(out, plainValue(m.Value()))
	return nil
}

// plainValue prints strings bare so shell callers can use them directly.
func plainValue(v any) string {
	if str, ok := v.(string); ok {
		return str
	}
	return ui.FormatValue(v)
}

// resolveCmd resolves a value without user interaction
func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Show which item a value or key selects",
		Long: `Resolve --value and --key against the definition the same way the
picker does: key first, then structural equality for composite values, then
string equality. When nothing matches, the first item is selected.`,
		Example: `  selectkit resolve --items colours.yaml --value blue
  selectkit resolve --items sports.toml --key bb --format json`,
		RunE: a.runResolve,
	}
}

func (a *app) runResolve(cmd *cobra.Command, args []string) error {
	s, err := a.loadSettings(cmd)
	if err != nil {
		return err
	}

	ctrl := selection.New(s.Inputs(), selection.WithLogger(logging.Named("resolve")))
	_, matched := selection.Find(ctrl.Items(), s.Target)
	result := newChoice(ctrl.Selected(), ctrl.Index(), matched)

	out := cmd.OutOrStdout()
	if s.Format == "json" {
		return writeJSON(out, result)
	}

	if !matched && (s.Target.Set || s.Target.Key != nil) {
		logging.Warn("no item matched, using the first item",
			zap.Any("value", s.Target.Value), zap.Any("key", s.Target.Key))
	}

	p := a.printer(out)
	p.PrintHeader(a.header(s, "selectkit resolve"))

	var box *ui.Result
	switch {
	case matched:
		box = ui.NewSuccessResult("Selection resolved")
	case !s.Target.Set && s.Target.Key == nil:
		box = ui.NewSuccessResult("No value given, first item selected")
	default:
		box = ui.NewWarningResult("No item matched, using the first item")
	}
	box.AddDetail("Index", strconv.Itoa(result.Index)).
		AddDetail("Label", result.Label).
		AddDetail("Shows as", result.DisplayLabel).
		AddDetail("Value", ui.FormatValue(result.Value))
	if result.Key != nil {
		box.AddDetail("Key", ui.FormatValue(result.Key))
	}
	if ctrl.IsPlaceholderSelected(s.Inputs().Placeholder) {
		box.AddHint("The placeholder is selected")
	}
	p.PrintResult(box)
	return nil
}

// itemsCmd lists the normalized item list
func (a *app) newItemsCmd() *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List the normalized items",
		Long: `Print the item list the picker works with: the placeholder entry (unless
removed) followed by the definition's items. The row the current value
selects is marked.

With --export the definition is written back as YAML or TOML instead,
which converts between the two formats.`,
		Example: `  selectkit items --items colours.yaml
  selectkit items --items colours.yaml --export toml > colours.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSettings(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if export != "" {
				data, err := config.MarshalDefinition(s.Definition, config.Format(export))
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			state := selection.NewState(s.Inputs())
			if s.Format == "json" {
				return writeJSON(out, state.Items)
			}

			p := a.printer(out)
			p.PrintHeader(a.header(s, "selectkit items"))
			p.PrintTable(ui.RenderItemTable(state.Items, state.Index, a.flags.width))
			return nil
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "Write the definition as yaml or toml")
	return cmd
}

// printer returns a Printer for w, honouring --width.
func (a *app) printer(w io.Writer) *ui.Printer {
	p := ui.NewPrinter(w)
	if a.flags.width > 0 {
		p.WithWidth(a.flags.width)
	}
	return p
}

// header builds the command banner shared by resolve and items.
func (a *app) header(s *settings, command string) *ui.Header {
	title := s.Definition.Title
	if title == "" {
		title = a.flags.items
	}

	h := ui.NewHeader(title, command).
		AddParam("Platform", s.Platform.String()).
		AddParam("Items", strconv.Itoa(len(s.Definition.Items)))
	if s.Target.Set {
		h.AddParam("Value", ui.FormatValue(s.Target.Value))
	}
	if s.Target.Key != nil {
		h.AddParam("Key", ui.FormatValue(s.Target.Key))
	}
	return h
}
