package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter collects a header and rows and writes them as aligned
// columns sized to their widest cell, with a dashed rule under the header.
type TableFormatter struct {
	w      io.Writer
	header []string
	rows   [][]string
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{w: w}
}

// Header sets the column titles
func (t *TableFormatter) Header(columns ...string) {
	t.header = columns
}

// Row adds a table row
func (t *TableFormatter) Row(values ...string) {
	t.rows = append(t.rows, values)
}

// Flush writes the table. The last column is never padded.
func (t *TableFormatter) Flush() {
	widths := t.columnWidths()
	if len(widths) == 0 {
		return
	}

	if t.header != nil {
		t.writeLine(widths, t.header)
		rule := make([]string, len(widths))
		for i, n := range widths {
			rule[i] = strings.Repeat("-", n)
		}
		fmt.Fprintln(t.w, strings.Join(rule, columnGap))
	}
	for _, row := range t.rows {
		t.writeLine(widths, row)
	}
	t.header, t.rows = nil, nil
}

const columnGap = "  "

func (t *TableFormatter) columnWidths() []int {
	var widths []int
	measure := func(cells []string) {
		for i, cell := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

func (t *TableFormatter) writeLine(widths []int, cells []string) {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(columnGap)
		}
		sb.WriteString(cell)
		if i < len(cells)-1 {
			sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}
	}
	fmt.Fprintln(t.w, sb.String())
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()

	case FormatText:
		// Callers normally format text themselves; this is a fallback.
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// TruncateString truncates a string to the specified number of runes
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
