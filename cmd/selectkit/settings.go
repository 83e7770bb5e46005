package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/selectkit/internal/config"
	"github.com/muurk/selectkit/internal/locale"
	"github.com/muurk/selectkit/internal/picker"
	"github.com/muurk/selectkit/internal/selection"
)

var errNoItemsFlag = errors.New("no definition file given (use --items)")

// settings is the merged result of preferences and flags for one run.
type settings struct {
	Platform              picker.Platform
	Definition            *config.Definition
	Target                selection.Target
	Translator            *locale.Translator
	DarkTheme             bool
	Disabled              bool
	DoneText              string
	UseNativeAndroidStyle bool
	Format                string
}

// Inputs returns the controller inputs for the definition, with the
// localized placeholder label and the flag-adjusted target.
func (s *settings) Inputs() selection.Inputs {
	in := s.Definition.Inputs(s.Translator.PlaceholderLabel())
	in.Target = s.Target
	return in
}

// loadSettings merges flags over preferences and loads the definition file.
func (a *app) loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()
	prefs := a.prefs
	if prefs == nil {
		prefs = config.NewPreferences()
	}

	platformName := prefs.Platform
	if flags.Changed("platform") {
		platformName = a.flags.platform
	}
	platform, err := picker.ParsePlatform(platformName)
	if err != nil {
		return nil, err
	}

	localeName := prefs.Locale
	if flags.Changed("locale") {
		localeName = a.flags.locale
	}
	tr, err := locale.New(localeName)
	if err != nil {
		return nil, err
	}

	s := &settings{
		Platform:              platform,
		Translator:            tr,
		DarkTheme:             prefs.DarkTheme,
		Disabled:              a.flags.disabled,
		DoneText:              prefs.DoneText,
		UseNativeAndroidStyle: prefs.UseNativeAndroidStyle,
		Format:                a.flags.format,
	}
	if flags.Changed("dark") {
		s.DarkTheme = a.flags.dark
	}
	if flags.Changed("done-text") {
		s.DoneText = a.flags.doneText
	}
	if flags.Changed("no-native") {
		s.UseNativeAndroidStyle = !a.flags.noNative
	}
	if s.Format != "text" && s.Format != "json" {
		return nil, fmt.Errorf("unknown output format %q (want text or json)", s.Format)
	}

	if a.flags.items == "" {
		return nil, errNoItemsFlag
	}
	def, err := config.LoadDefinition(a.flags.items)
	if err != nil {
		return nil, err
	}
	s.Definition = def

	s.Target = def.Target()
	if flags.Changed("value") {
		v, err := parseScalar(a.flags.value)
		if err != nil {
			return nil, fmt.Errorf("invalid --value: %w", err)
		}
		s.Target.Value = v
		s.Target.Set = true
	}
	if flags.Changed("key") {
		k, err := parseScalar(a.flags.itemKey)
		if err != nil {
			return nil, fmt.Errorf("invalid --key: %w", err)
		}
		s.Target.Key = k
	}

	return s, nil
}

// parseScalar decodes a flag the way a definition file would type it, so
// "2" matches numeric values, "{id: 1}" matches composite ones and "null"
// selects an explicit null. An empty flag is the empty string.
func parseScalar(raw string) (any, error) {
	if raw == "" {
		return "", nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}
