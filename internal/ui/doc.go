// Package ui renders the non-interactive output of the selectkit CLI.
//
// Components follow a "render once" pattern: they build a styled string with
// Lipgloss and the caller prints it. Nothing here reads keys except Confirm,
// which asks a single yes/no question.
//
//   - Header: command banner with the definition title and parameters
//   - Result: success, failure or warning box with ordered details and hints
//   - RenderItemTable: the normalized item list with the resolved row marked
//   - Printer: writes the above to stdout (or any writer) at terminal width
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader(ui.NewHeader("Favourite colour", "selectkit resolve").
//	    AddParam("Platform", "ios"))
//	p.PrintResult(ui.NewSuccessResult("Selection resolved").
//	    AddDetail("Index", "2").
//	    AddDetail("Label", "Blue"))
//
// # Logging Integration
//
// Logging is controlled with the SELECTKIT_LOG_LEVEL environment variable.
// When unset, zap logging is silent so the styled output stays clean.
package ui
