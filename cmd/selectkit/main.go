// Selectkit is a terminal picker for scripts and a playground for the
// selection component.
//
// It reads items from a YAML or TOML definition file, shows them in the
// chosen platform style and prints the picked value to stdout. The picker
// itself draws on stderr, so the command composes in shell pipelines:
//
//	colour=$(selectkit --items colours.yaml --platform android)
//
// Usage:
//
//	selectkit [command] [flags]
//
// Running without a command starts the interactive picker.
// See 'selectkit --help' for available commands.
package main

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/muurk/selectkit/internal/logging"
	"github.com/muurk/selectkit/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError logs err and renders it as a failure box on w. A cancelled
// picker is not a failure worth a box, a single line is enough.
func reportError(w io.Writer, err error) {
	logging.Error("command failed", zap.Error(err))
	logging.Sync()

	p := ui.NewPrinter(w)
	if errors.Is(err, errCancelled) {
		p.Println("Error: " + err.Error())
		return
	}
	p.PrintResult(ui.NewFailureResult("selectkit failed", err).
		AddHint("Run 'selectkit --help' for usage"))
}
