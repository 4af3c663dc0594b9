package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

// ErrUnavailable is returned when the task file cannot be read or written.
// Load failures are not fatal: callers continue with empty lists.
var ErrUnavailable = errors.New("task file unavailable")

// Prefixes marks which list a line of the task file belongs to
type Prefixes struct {
	Pending   string
	Completed string
}

// DefaultPrefixes returns the "TODO " / "DONE " prefixes
func DefaultPrefixes() Prefixes {
	return PrefixesFrom(models.DefaultSettings())
}

// PrefixesFrom reads the prefixes from settings
func PrefixesFrom(settings *models.Settings) Prefixes {
	return Prefixes{
		Pending:   settings.Storage.PendingPrefix,
		Completed: settings.Storage.CompletedPrefix,
	}
}

// Parse splits the lines of a task file into the two lists.
// Lines carrying neither prefix are skipped.
func Parse(content string, p Prefixes) models.Snapshot {
	snap := models.Snapshot{Pending: []string{}, Completed: []string{}}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.HasPrefix(line, p.Pending):
			snap.Pending = append(snap.Pending, line[len(p.Pending):])
		case strings.HasPrefix(line, p.Completed):
			snap.Completed = append(snap.Completed, line[len(p.Completed):])
		}
	}
	return snap
}

// Format renders both lists as task file lines: pending tasks first, then completed,
// each in list order.
func Format(snap models.Snapshot, p Prefixes) string {
	var b strings.Builder
	for _, task := range snap.Pending {
		b.WriteString(p.Pending)
		b.WriteString(task)
		b.WriteByte('\n')
	}
	for _, task := range snap.Completed {
		b.WriteString(p.Completed)
		b.WriteString(task)
		b.WriteByte('\n')
	}
	return b.String()
}

// Load reads a task file. A missing file yields two empty lists and no error;
// any other read failure yields two empty lists and an error wrapping ErrUnavailable.
func Load(path string, p Prefixes) (models.Snapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Parse("", p), nil
		}
		return Parse("", p), fmt.Errorf("%w: failed to read %s: %v", ErrUnavailable, path, err)
	}
	return Parse(string(content), p), nil
}

// Save recreates the task file with the content of both lists.
// Nothing else from the previous file is preserved.
func Save(path string, snap models.Snapshot, p Prefixes) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create directory for %s: %v", ErrUnavailable, path, err)
		}
	}

	if err := WriteFile(path, Format(snap, p)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// WriteFile replaces the file at path with content. The content is written to
// a temporary file in the same directory and renamed over path, so a failed
// write leaves the previous file intact. An existing file keeps its mode and a
// symlink keeps pointing at the file it names.
func WriteFile(path string, content string) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, content, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func writeAndClose(f *os.File, content string, mode os.FileMode) error {
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
