package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muurk/selectkit/internal/config"
	"github.com/muurk/selectkit/internal/logging"
	"github.com/muurk/selectkit/internal/version"
)

// globalFlags are shared by every picker command. Unset flags fall back to
// the preferences file.
type globalFlags struct {
	configPath string
	items      string
	platform   string
	value      string
	itemKey    string
	doneText   string
	locale     string
	logFile    string
	dark       bool
	disabled   bool
	noNative   bool
	format     string
	width      int
}

// app carries state from PersistentPreRunE to the commands.
type app struct {
	flags     globalFlags
	prefs     *config.Preferences
	prefsPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "selectkit",
		Short: "Pick one item from a list in the terminal",
		Long: `A terminal picker with iOS, Android and web presentation styles.

Items come from a YAML or TOML definition file (--items). The picked value
is printed to stdout; the picker itself draws on stderr.

If no command is specified, the interactive picker starts.`,
		Version:           version.Get().Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: a.runPick,
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	a.bindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(a.newPickCmd())
	rootCmd.AddCommand(a.newResolveCmd())
	rootCmd.AddCommand(a.newItemsCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// bindFlags registers the global flags on fs.
func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.flags.configPath, "config", "", "Preferences file (default: OS config dir)")
	fs.StringVar(&a.flags.items, "items", "", "Definition file with the items (.yaml, .yml or .toml)")
	fs.StringVar(&a.flags.platform, "platform", "", "Presentation style: ios, android, android-headless or web")
	fs.StringVar(&a.flags.value, "value", "", "Value to select, parsed as YAML (e.g. 2, blue, \"{id: 1}\", null)")
	fs.StringVar(&a.flags.itemKey, "key", "", "Item key to select, parsed as YAML")
	fs.StringVar(&a.flags.doneText, "done-text", "", "Text of the iOS Done button")
	fs.StringVar(&a.flags.locale, "locale", "", "Language for default texts (e.g. de, fr-CA)")
	fs.StringVar(&a.flags.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&a.flags.dark, "dark", false, "Dark iOS sheet")
	fs.BoolVar(&a.flags.disabled, "disabled", false, "Render the picker disabled")
	fs.BoolVar(&a.flags.noNative, "no-native", false, "Use the headless Android variant")
	fs.StringVar(&a.flags.format, "format", "text", "Output format (text, json)")
	fs.IntVar(&a.flags.width, "width", 0, "Width of boxes and tables (default: terminal width)")
}

// setup loads preferences and initializes logging before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.flags.configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}

	prefs, err := config.LoadPreferencesFrom(path)
	if err != nil {
		return err
	}
	a.prefs = prefs
	a.prefsPath = path

	logFile := prefs.LogFile
	if cmd.Flags().Changed("log-file") {
		logFile = a.flags.logFile
	}

	// A log file without a level would stay empty
	level := ""
	if logFile != "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = "info"
	}
	if err := logging.InitializeWithOutput(level, logFile); err != nil {
		return err
	}

	logging.Debug("preferences loaded", zap.String("path", path), zap.String("platform", prefs.Platform))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "selectkit %s\n", version.Full())
		},
	}
}
