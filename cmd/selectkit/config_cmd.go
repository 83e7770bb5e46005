package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/selectkit/internal/config"
	"github.com/muurk/selectkit/internal/locale"
	"github.com/muurk/selectkit/internal/logging"
	"github.com/muurk/selectkit/internal/picker"
	"github.com/muurk/selectkit/internal/ui"
)

// configCmd groups the preferences subcommands
func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or change preferences",
		Long: `View or change the preferences file.

Preferences provide defaults for the picker flags. Flags given on the
command line always win.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		RunE:  a.runConfigShow,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the preferences file location",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.prefsPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set-platform <ios|android|android-headless|web>",
		Short:     "Set the default platform",
		Args:      cobra.ExactArgs(1),
		ValidArgs: platformNames(),
		RunE:      a.runSetPlatform,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-locale <tag>",
		Short: "Set the default language (empty string for English)",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSetLocale,
	})

	var yes bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Reset preferences",
				[]string{"Overwrites " + a.prefsPath + " with the defaults"}) {
				return nil
			}
			a.prefs = config.NewPreferences()
			return a.savePrefs(cmd, "Preferences reset")
		},
	}
	reset.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.AddCommand(reset)

	return cmd
}

func platformNames() []string {
	var names []string
	for _, p := range picker.Platforms() {
		names = append(names, p.String())
	}
	return names
}

func (a *app) runConfigShow(cmd *cobra.Command, args []string) error {
	p := a.prefs

	localeName := p.Locale
	if localeName == "" {
		localeName = "en (default)"
	}
	doneText := p.DoneText
	if doneText == "" {
		doneText = "(localized)"
	}
	logFile := p.LogFile
	if logFile == "" {
		logFile = "(none)"
	}

	box := ui.NewSuccessResult("Preferences").
		AddDetail("File", a.prefsPath).
		AddDetail("Platform", p.Platform).
		AddDetail("Dark theme", strconv.FormatBool(p.DarkTheme)).
		AddDetail("Native android", strconv.FormatBool(p.UseNativeAndroidStyle)).
		AddDetail("Locale", localeName).
		AddDetail("Done text", doneText).
		AddDetail("Log file", logFile)

	a.printer(cmd.OutOrStdout()).PrintResult(box)
	return nil
}

func (a *app) runSetPlatform(cmd *cobra.Command, args []string) error {
	platform, err := picker.ParsePlatform(args[0])
	if err != nil {
		return err
	}
	a.prefs.Platform = platform.String()
	return a.savePrefs(cmd, "Default platform set to "+platform.String())
}

func (a *app) runSetLocale(cmd *cobra.Command, args []string) error {
	tr, err := locale.New(args[0])
	if err != nil {
		return err
	}
	a.prefs.Locale = args[0]
	return a.savePrefs(cmd, "Default locale set to "+tr.Language().String())
}

func (a *app) savePrefs(cmd *cobra.Command, title string) error {
	if err := a.prefs.SaveTo(a.prefsPath); err != nil {
		return err
	}
	logging.Info("preferences saved", zap.String("path", a.prefsPath), zap.String("platform", a.prefs.Platform))
	a.printer(cmd.OutOrStdout()).PrintResult(
		ui.NewSuccessResult(title).AddDetail("File", a.prefsPath),
	)
	return nil
}
