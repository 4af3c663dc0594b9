package cli

import (
	"fmt"
	"io"
	"os"
)

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(w, "✓ %s\n", msg)
		} else {
			fmt.Fprintf(w, "OK: %s\n", msg)
		}
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(w io.Writer, format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(w, "ℹ %s\n", msg)
		} else {
			fmt.Fprintf(w, "INFO: %s\n", msg)
		}
	}
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", msg)
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
	}
}

// Global flags (will be set from cmd package)
var (
	quiet   bool
	noColor bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc bool) {
	quiet = q
	noColor = nc
}

// NoColor reports whether colored output is disabled
func NoColor() bool {
	return noColor
}
