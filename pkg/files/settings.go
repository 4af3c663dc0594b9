package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

const (
	AppDir           = "pluqqy-todo"
	SettingsFileName = "settings.yaml"
)

// DefaultSettingsPath returns $XDG_CONFIG_HOME/pluqqy-todo/settings.yaml
// (or the platform equivalent).
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, SettingsFileName), nil
}

// ReadSettings loads settings from path. A missing file yields the defaults;
// fields the file leaves out keep their default values.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	settings.FillDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings saves settings as YAML, creating the parent directory if needed
func WriteSettings(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	return WriteFile(path, string(content))
}
