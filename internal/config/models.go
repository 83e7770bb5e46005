package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muurk/selectkit/internal/selection"
)

var (
	// ErrNoItems is returned for a definition without any items.
	ErrNoItems = errors.New("definition has no items")
	// ErrUnknownFormat is returned for definition files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("unknown definition format")
)

// Preferences represents the user configuration file.
// Values here are defaults; command-line flags override them.
type Preferences struct {
	Version               int    `yaml:"version"`
	Platform              string `yaml:"platform"`                 // ios, android, android-headless, web
	DarkTheme             bool   `yaml:"dark_theme"`               // Dark sheet styling (ios only)
	DoneText              string `yaml:"done_text,omitempty"`      // Overrides the localized confirm text
	Locale                string `yaml:"locale,omitempty"`         // BCP 47 tag, empty for English
	UseNativeAndroidStyle bool   `yaml:"use_native_android_style"` // false selects the headless android variant
	LogFile               string `yaml:"log_file,omitempty"`       // Where interactive commands write logs
}

// NewPreferences creates Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:               1,
		Platform:              "ios",
		UseNativeAndroidStyle: true,
	}
}

// Definition describes one picker: its items, placeholder and requested value.
// It is read from YAML or TOML files passed with --items.
type Definition struct {
	Title       string           `yaml:"title,omitempty" toml:"title,omitempty"`
	Placeholder *PlaceholderSpec `yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Items       []selection.Item `yaml:"items" toml:"items"`
	Value       any              `yaml:"value,omitempty" toml:"value,omitempty"`       // nil leaves the value unset
	ItemKey     any              `yaml:"item_key,omitempty" toml:"item_key,omitempty"` // Matches Item.Key
}

// PlaceholderSpec is the placeholder as written in a definition file.
// An absent placeholder means "use the default"; None or an empty table
// removes the placeholder entry.
type PlaceholderSpec struct {
	None  bool   `yaml:"none,omitempty" toml:"none,omitempty"`
	Label string `yaml:"label,omitempty" toml:"label,omitempty"`
	Value any    `yaml:"value,omitempty" toml:"value,omitempty"`
	Key   any    `yaml:"key,omitempty" toml:"key,omitempty"`
	Color string `yaml:"color,omitempty" toml:"color,omitempty"`
}

// Validate checks the definition is usable.
func (d *Definition) Validate() error {
	if len(d.Items) == 0 {
		return ErrNoItems
	}

	var problems []string
	for i, item := range d.Items {
		if strings.TrimSpace(item.Label) == "" {
			problems = append(problems, fmt.Sprintf("item %d: label is required", i+1))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid definition: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ResolvePlaceholder returns the placeholder to use. defaultLabel replaces the
// default placeholder's label, so hosts can pass a localized string.
func (d *Definition) ResolvePlaceholder(defaultLabel string) selection.Placeholder {
	if d.Placeholder == nil {
		p := selection.DefaultPlaceholder()
		if defaultLabel != "" {
			p.Label = defaultLabel
		}
		return p
	}
	if d.Placeholder.None {
		return selection.Placeholder{}
	}
	return selection.Placeholder{
		Label: d.Placeholder.Label,
		Value: d.Placeholder.Value,
		Key:   d.Placeholder.Key,
		Color: d.Placeholder.Color,
	}
}

// Target returns the requested selection. A nil Value leaves it unset.
func (d *Definition) Target() selection.Target {
	return selection.Target{
		Key:   d.ItemKey,
		Value: d.Value,
		Set:   d.Value != nil,
	}
}

// Inputs assembles controller inputs from the definition.
func (d *Definition) Inputs(defaultLabel string) selection.Inputs {
	return selection.Inputs{
		Placeholder: d.ResolvePlaceholder(defaultLabel),
		Items:       d.Items,
		Target:      d.Target(),
	}
}
