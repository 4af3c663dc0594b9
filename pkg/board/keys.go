package board

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key is one keystroke: either a single printable character ("q", "K", " ")
// or a symbolic name using the same spelling as bubbletea's KeyMsg.String().
type Key string

const (
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyShiftUp   Key = "shift+up"
	KeyShiftDown Key = "shift+down"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeyBackspace Key = "backspace"
	KeyDelete    Key = "delete"
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
	KeyEsc       Key = "esc"
	KeySpace     Key = " "
	KeyCtrlA     Key = "ctrl+a"
	KeyCtrlE     Key = "ctrl+e"
	KeyCtrlH     Key = "ctrl+h"
)

// Rune returns the character for printable single-character keys.
func (k Key) Rune() (rune, bool) {
	if utf8.RuneCountInString(string(k)) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(string(k))
	if !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

// ParseKey normalizes a key name from a settings file.
// "space" is accepted as an alias for " ".
func ParseKey(name string) (Key, error) {
	if name == "" {
		return "", fmt.Errorf("empty key name")
	}
	if strings.EqualFold(name, "space") {
		return KeySpace, nil
	}
	if _, ok := Key(name).Rune(); ok {
		return Key(name), nil
	}
	lower := strings.ToLower(name)
	if strings.TrimSpace(lower) == "" {
		return "", fmt.Errorf("invalid key name %q", name)
	}
	return Key(lower), nil
}
