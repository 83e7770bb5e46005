// Package logging provides structured logging for selectkit.
//
// This package wraps a global zap logger. It is silent unless
// SELECTKIT_LOG_LEVEL is set, so the curated picker output is never mixed
// with log lines.
//
// # Log Levels
//
//   - Debug: selection state transitions, key handling, variant choice
//   - Info: picker lifecycle (opened, closed, value chosen)
//   - Warn: ignored requests (toggle while disabled, bad config values)
//   - Error: unrecoverable CLI failures
//
// # Configuration
//
// Initialize logging once at startup. Interactive commands should send output
// to a file because Bubble Tea owns the terminal:
//
//	if err := logging.InitializeWithOutput("debug", "selectkit.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Components take a *zap.Logger scoped with Named:
//
//	ctrl := selection.New(inputs, selection.WithLogger(logging.Named("selection")))
package logging
