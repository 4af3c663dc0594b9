package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-todo/pkg/board"
)

// tabLabels returns the header tabs, bracketing the list in focus:
// "[TODO] DONE " or " TODO [DONE]".
func tabLabels(focus board.Focus) (todo, done string) {
	if focus == board.FocusCompleted {
		return " TODO ", "[DONE]"
	}
	return "[TODO]", " DONE "
}

func renderHeader(width int, focus board.Focus, pending, completed int, path string) string {
	todo, done := tabLabels(focus)

	tabs := lipgloss.JoinHorizontal(
		lipgloss.Top,
		GetActiveTabStyle(focus != board.FocusCompleted).Render(todo),
		GetActiveTabStyle(focus == board.FocusCompleted).Render(done),
	)

	counts := HeaderStyle.Render(fmt.Sprintf("%d todo · %d done", pending, completed))
	file := HeaderStyle.Render(path)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	if width <= 0 {
		return headerPadding.Render(strings.Join([]string{tabs, counts}, "  "))
	}

	// Tabs on the left, file name and counts on the right
	contentWidth := width - 2
	right := lipgloss.JoinHorizontal(lipgloss.Top, file, "  ", counts)
	gap := contentWidth - lipgloss.Width(tabs) - lipgloss.Width(right)
	if gap < 2 {
		right = counts
		gap = contentWidth - lipgloss.Width(tabs) - lipgloss.Width(right)
	}
	if gap < 1 {
		gap = 1
	}

	return headerPadding.Render(tabs + strings.Repeat(" ", gap) + right)
}
