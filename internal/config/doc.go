// Package config loads selectkit preferences and picker definition files.
//
// Preferences are a small YAML file of defaults for the command-line tool
// (platform variant, theme, locale, confirm text). Command-line flags always
// override them. The file follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/selectkit/config.yaml or $HOME/.config/selectkit/config.yaml
//   - macOS: $HOME/.config/selectkit/config.yaml
//   - Windows: %LOCALAPPDATA%\selectkit\config.yaml
//
// # Definition Files
//
// A definition describes one picker: its items, an optional placeholder and
// the requested value. Definitions are YAML (.yaml, .yml) or TOML (.toml):
//
//	title: Favourite colour
//	placeholder:
//	  label: Select a colour...
//	items:
//	  - label: Red
//	    value: red
//	  - label: Blue
//	    value: blue
//	value: blue
//
// Leaving out placeholder applies the default one. Setting placeholder.none
// (or an empty placeholder table) removes it from the list.
//
// # Usage Example
//
//	def, err := config.LoadDefinition("colors.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctrl := selection.New(def.Inputs(""))
//
// # Thread Safety
//
// Preferences are read once per command by the caller. SaveTo serializes
// writers and replaces the file atomically (temporary file plus rename).
package config
