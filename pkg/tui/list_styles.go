package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorError    = "196" // Red for errors
	ColorStatusBg = "62"
	ColorStatusFg = "230"
)

// Common styles
var (
	// Selection styles
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	CompletedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Strikethrough(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	// Padding styles
	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	// Message styles
	EmptyActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning)).
				Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	// Cursor style
	CursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true)

	// Placeholder style
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim)).
				Italic(true)
)

// GetActiveTabStyle returns the style for a list tab in the header
func GetActiveTabStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(isActive).
		Foreground(lipgloss.Color(color))
}

// ApplyColorProfile picks the lipgloss color profile for the TUI. NO_COLOR
// turns colors off; otherwise the terminal's detected profile is used.
func ApplyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
