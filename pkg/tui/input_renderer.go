package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InputRenderer draws the new-task edit line
type InputRenderer struct {
	Width int
}

// NewInputRenderer creates a new input renderer
func NewInputRenderer(width int) *InputRenderer {
	return &InputRenderer{Width: width}
}

// RenderInputField renders text with a block caret at cursorPos (a rune index).
// An empty field shows the placeholder after the caret.
func (ir *InputRenderer) RenderInputField(text string, cursorPos int, placeholder string) string {
	inputFieldStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSelected)).
		Foreground(lipgloss.Color(ColorNormal)).
		Padding(0, 1)
	if ir.Width > 0 {
		inputFieldStyle = inputFieldStyle.Width(ir.Width)
	}

	var content strings.Builder

	if text == "" {
		content.WriteString(CursorStyle.Render(" "))
		if placeholder != "" {
			content.WriteString(PlaceholderStyle.Render(placeholder))
		}
		return inputFieldStyle.Render(content.String())
	}

	runes := []rune(text)
	if cursorPos < 0 {
		cursorPos = 0
	}
	if cursorPos > len(runes) {
		cursorPos = len(runes)
	}

	for i, r := range runes {
		if i == cursorPos {
			content.WriteString(CursorStyle.Render(string(r)))
		} else {
			content.WriteString(string(r))
		}
	}

	// Caret past the last character
	if cursorPos == len(runes) {
		content.WriteString(CursorStyle.Render(" "))
	}

	return inputFieldStyle.Render(content.String())
}

// RenderInputFieldWithLabel renders an input field with a label above it
func (ir *InputRenderer) RenderInputFieldWithLabel(label, text string, cursorPos int, placeholder string) string {
	var result strings.Builder

	result.WriteString(HeaderStyle.Render(label))
	result.WriteString("\n")
	result.WriteString(ir.RenderInputField(text, cursorPos, placeholder))

	return result.String()
}
