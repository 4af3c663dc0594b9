package cli

import (
	"fmt"

	"github.com/pluqqy/pluqqy-todo/pkg/board"
	"github.com/pluqqy/pluqqy-todo/pkg/files"
	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

// CommandContext carries what every command needs: the resolved settings
// and the file prefixes derived from them.
type CommandContext struct {
	SettingsPath string
	Settings     *models.Settings
	Prefixes     files.Prefixes
}

// NewCommandContext loads settings from settingsPath, or from the default
// location when settingsPath is empty.
func NewCommandContext(settingsPath string) (*CommandContext, error) {
	if settingsPath == "" {
		path, err := files.DefaultSettingsPath()
		if err != nil {
			// No config dir (e.g. $HOME unset): run on defaults.
			settings := models.DefaultSettings()
			return &CommandContext{Settings: settings, Prefixes: files.PrefixesFrom(settings)}, nil
		}
		settingsPath = path
	}

	settings, err := files.ReadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		SettingsPath: settingsPath,
		Settings:     settings,
		Prefixes:     files.PrefixesFrom(settings),
	}, nil
}

// Bindings returns the key bindings with any overrides from the settings applied
func (c *CommandContext) Bindings() (board.Bindings, error) {
	bindings, err := board.DefaultBindings().WithOverrides(c.Settings.Keys)
	if err != nil {
		return nil, fmt.Errorf("invalid key settings: %w", err)
	}
	return bindings, nil
}

// ResolveTaskFile returns path, or a fresh random file name when path is empty
func (c *CommandContext) ResolveTaskFile(path string) string {
	if path != "" {
		return path
	}
	return files.NewTaskFilePath(c.Settings.Storage)
}

// LoadBoard reads the task file at path into a new board
func (c *CommandContext) LoadBoard(path string) (*board.Board, error) {
	bindings, err := c.Bindings()
	if err != nil {
		return nil, err
	}
	snap, err := files.Load(path, c.Prefixes)
	return board.New(snap, bindings), err
}
