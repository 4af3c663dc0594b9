package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// ListRenderer draws one task list with the selected row highlighted
type ListRenderer struct {
	Width  int
	Marker string
	Done   bool
}

// Render draws items with the row at cursor highlighted. Long tasks wrap onto
// continuation lines indented under the marker.
func (r ListRenderer) Render(items []string, cursor int, emptyMsg string) string {
	if len(items) == 0 {
		return EmptyActiveStyle.Render(emptyMsg)
	}

	indent := strings.Repeat(" ", len([]rune(r.Marker)))
	wrapAt := r.Width - len([]rune(r.Marker)) - 2
	if wrapAt < 10 {
		wrapAt = 0
	}

	rows := make([]string, 0, len(items))
	for i, item := range items {
		text := item
		if wrapAt > 0 {
			text = wordwrap.String(item, wrapAt)
		}
		lines := strings.Split(text, "\n")
		for j := range lines {
			if j == 0 {
				lines[j] = r.Marker + lines[j]
			} else {
				lines[j] = indent + lines[j]
			}
		}

		style := NormalStyle
		if r.Done {
			style = CompletedStyle
		}
		if i == cursor {
			style = SelectedStyle
		}
		for _, line := range lines {
			rows = append(rows, style.Render(line))
		}
	}

	return strings.Join(rows, "\n")
}
