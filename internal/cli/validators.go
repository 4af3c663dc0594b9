package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateTaskFilePath checks that path can hold a task file: it must not be
// a directory. A path that does not exist yet is fine.
func ValidateTaskFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("task file path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateTaskFileExists checks that a task file is present on disk
func ValidateTaskFileExists(path string) error {
	if err := ValidateTaskFilePath(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("task file does not exist: %s", path)
	}
	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateTaskText validates the text of a new task. Tasks are stored one per
// line, so line breaks are rejected, and it must be text the interface could
// have typed: no tabs, escapes or other control characters.
func ValidateTaskText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("task text cannot be empty")
	}
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("task text cannot contain line breaks")
	}
	if i := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsPrint(r) }); i >= 0 {
		return fmt.Errorf("task text cannot contain control characters (found %q)", []rune(text[i:])[0])
	}
	return nil
}
