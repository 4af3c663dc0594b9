package tui

import (
	"strings"
	"testing"
)

func TestInputRenderer_RenderInputField(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		cursorPos    int
		placeholder  string
		checkContent func(string) bool
	}{
		{
			name:        "empty input shows placeholder",
			text:        "",
			cursorPos:   0,
			placeholder: "describe the task",
			checkContent: func(output string) bool {
				return strings.Contains(output, "describe the task")
			},
		},
		{
			name:      "cursor at beginning",
			text:      "Hello",
			cursorPos: 0,
			checkContent: func(output string) bool {
				return strings.Contains(output, "Hello")
			},
		},
		{
			name:      "cursor in middle",
			text:      "Hello",
			cursorPos: 2,
			checkContent: func(output string) bool {
				return strings.Contains(output, "Hello")
			},
		},
		{
			name:        "cursor at end hides placeholder",
			text:        "Hello",
			cursorPos:   5,
			placeholder: "describe the task",
			checkContent: func(output string) bool {
				return strings.Contains(output, "Hello") && !strings.Contains(output, "describe")
			},
		},
		{
			name:      "cursor past end is clamped",
			text:      "Hi",
			cursorPos: 10,
			checkContent: func(output string) bool {
				return strings.Contains(output, "Hi")
			},
		},
		{
			name:      "multibyte text",
			text:      "café ☕",
			cursorPos: 4,
			checkContent: func(output string) bool {
				return strings.Contains(output, "café ☕")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ir := NewInputRenderer(40)
			output := ir.RenderInputField(tt.text, tt.cursorPos, tt.placeholder)

			if !tt.checkContent(output) {
				t.Errorf("RenderInputField(%q, %d) = %q", tt.text, tt.cursorPos, output)
			}
		})
	}
}

func TestInputRenderer_RenderInputFieldWithLabel(t *testing.T) {
	ir := NewInputRenderer(40)
	output := ir.RenderInputFieldWithLabel("NEW TASK", "Buy bread", 3, "")

	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected label and field on separate lines, got %q", output)
	}
	if !strings.Contains(lines[0], "NEW TASK") {
		t.Errorf("expected label on the first line, got %q", lines[0])
	}
	if !strings.Contains(output, "Buy bread") {
		t.Errorf("expected field text in output, got %q", output)
	}
}
