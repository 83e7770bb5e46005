// Package locale provides translated default strings for pickers: the
// default placeholder label, the confirm button text and key help labels.
//
// Messages live in embedded YAML files (locales/active.<lang>.yaml) and are
// resolved with go-i18n. Unknown languages fall back to English.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Message IDs
const (
	PlaceholderLabel = "PlaceholderLabel"
	DoneText         = "DoneText"
	HelpOpen         = "HelpOpen"
	HelpMove         = "HelpMove"
	HelpSelect       = "HelpSelect"
	HelpClose        = "HelpClose"
	HelpDone         = "HelpDone"
	HelpPrevious     = "HelpPrevious"
	HelpNext         = "HelpNext"
	HelpQuit         = "HelpQuit"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var bundle = mustLoadBundle()

func mustLoadBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		panic(fmt.Sprintf("locale: listing message files: %v", err))
	}
	for _, f := range files {
		if _, err := b.LoadMessageFileFS(localeFS, f); err != nil {
			panic(fmt.Sprintf("locale: loading %s: %v", path.Base(f), err))
		}
	}
	return b
}

// Translator resolves message IDs for one locale.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New returns a Translator for a BCP 47 locale such as "de" or "fr-CA".
// An empty locale selects English.
func New(locale string) (*Translator, error) {
	if locale == "" {
		return English(), nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	_, idx, _ := matcher.Match(tag)
	matched := bundle.LanguageTags()[idx]

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       matched,
	}, nil
}

// English returns the fallback Translator.
func English() *Translator {
	return &Translator{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
		tag:       language.English,
	}
}

// Language returns the bundle language actually used.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the message for id, or id itself when no translation exists.
func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// PlaceholderLabel returns the default placeholder text.
func (t *Translator) PlaceholderLabel() string {
	return t.T(PlaceholderLabel)
}

// DoneText returns the confirm button text.
func (t *Translator) DoneText() string {
	return t.T(DoneText)
}

// Supported lists the languages with message files.
func Supported() []language.Tag {
	return bundle.LanguageTags()
}
