package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSettings is returned for settings that cannot be used
var ErrInvalidSettings = errors.New("invalid settings")

// Settings represents the application configuration
type Settings struct {
	Storage StorageSettings     `yaml:"storage"`
	UI      UISettings          `yaml:"ui"`
	Keys    map[string][]string `yaml:"keys,omitempty"`
	Log     LogSettings         `yaml:"log"`
}

// StorageSettings controls the task file format and generated file names
type StorageSettings struct {
	PendingPrefix   string `yaml:"pending_prefix"`
	CompletedPrefix string `yaml:"completed_prefix"`
	NamePrefix      string `yaml:"name_prefix"`
	NameLength      int    `yaml:"name_length"`
	Extension       string `yaml:"extension"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowHelp        bool   `yaml:"show_help"`
	PendingMarker   string `yaml:"pending_marker"`
	CompletedMarker string `yaml:"completed_marker"`
}

// LogSettings controls the debug log. An empty file disables logging.
type LogSettings struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Storage: StorageSettings{
			PendingPrefix:   "TODO ",
			CompletedPrefix: "DONE ",
			NamePrefix:      "new_",
			NameLength:      5,
			Extension:       ".todo",
		},
		UI: UISettings{
			ShowHelp:        true,
			PendingMarker:   "- [ ] ",
			CompletedMarker: "- [x] ",
		},
		Log: LogSettings{
			File:  "",
			Level: "info",
		},
	}
}

// FillDefaults replaces empty fields with their default values, so a partial
// settings file only overrides what it mentions.
func (s *Settings) FillDefaults() {
	d := DefaultSettings()
	if s.Storage.PendingPrefix == "" {
		s.Storage.PendingPrefix = d.Storage.PendingPrefix
	}
	if s.Storage.CompletedPrefix == "" {
		s.Storage.CompletedPrefix = d.Storage.CompletedPrefix
	}
	if s.Storage.NamePrefix == "" {
		s.Storage.NamePrefix = d.Storage.NamePrefix
	}
	if s.Storage.NameLength <= 0 {
		s.Storage.NameLength = d.Storage.NameLength
	}
	if s.Storage.Extension == "" {
		s.Storage.Extension = d.Storage.Extension
	}
	if s.UI.PendingMarker == "" {
		s.UI.PendingMarker = d.UI.PendingMarker
	}
	if s.UI.CompletedMarker == "" {
		s.UI.CompletedMarker = d.UI.CompletedMarker
	}
	if s.Log.Level == "" {
		s.Log.Level = d.Log.Level
	}
}

// Validate checks that the two list prefixes can be told apart on load
func (s *Settings) Validate() error {
	p, c := s.Storage.PendingPrefix, s.Storage.CompletedPrefix
	if strings.HasPrefix(p, c) || strings.HasPrefix(c, p) {
		return fmt.Errorf("%w: pending prefix %q and completed prefix %q overlap", ErrInvalidSettings, p, c)
	}
	return nil
}
