package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-todo/pkg/board"
)

// keysFromMsg translates a bubbletea key event into board keystrokes.
// Pasted text arrives as one event carrying many runes. While a task is being
// composed it is split so each rune reaches the edit buffer on its own; in the
// lists it is dropped, since every rune would run as a command.
func keysFromMsg(msg tea.KeyMsg, editing bool) []board.Key {
	if msg.Type == tea.KeyRunes && !msg.Alt && (msg.Paste || len(msg.Runes) > 1) {
		if !editing {
			return nil
		}
		keys := make([]board.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, board.Key(string(r)))
		}
		return keys
	}
	return []board.Key{board.Key(msg.String())}
}

// displayKey is how a key is spelled in the help footer
func displayKey(k board.Key) string {
	switch k {
	case board.KeySpace:
		return "space"
	case board.KeyUp:
		return "↑"
	case board.KeyDown:
		return "↓"
	case board.KeyShiftUp:
		return "shift+↑"
	case board.KeyShiftDown:
		return "shift+↓"
	}
	return string(k)
}

func newBinding(op board.Op, keys []board.Key) key.Binding {
	names := make([]string, 0, len(keys))
	shown := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, string(k))
		shown = append(shown, displayKey(k))
	}
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(shown, "/"), op.Description()),
	)
}

// helpKeyMap feeds bubbles/help with the bindings relevant to the current focus
type helpKeyMap struct {
	focus    board.Focus
	bindings map[board.Op]key.Binding
}

func newHelpKeyMap(bindings board.Bindings) helpKeyMap {
	km := helpKeyMap{bindings: make(map[board.Op]key.Binding, len(bindings)+2)}
	for op, keys := range bindings {
		km.bindings[op] = newBinding(op, keys)
	}
	km.bindings[board.OpCommitTask] = newBinding(board.OpCommitTask, []board.Key{board.KeyEnter})
	km.bindings[board.OpCancelTask] = newBinding(board.OpCancelTask, []board.Key{board.KeyEsc})
	return km
}

func (k helpKeyMap) pick(ops ...board.Op) []key.Binding {
	out := make([]key.Binding, 0, len(ops))
	for _, op := range ops {
		if b, ok := k.bindings[op]; ok && len(b.Keys()) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// ShortHelp returns bindings for the single line help footer
func (k helpKeyMap) ShortHelp() []key.Binding {
	switch k.focus {
	case board.FocusNewTask:
		return k.pick(board.OpCommitTask, board.OpCancelTask)
	case board.FocusCompleted:
		return k.pick(board.OpCursorUp, board.OpCursorDown, board.OpDemote, board.OpDelete,
			board.OpToggleFocus, board.OpQuit)
	default:
		return k.pick(board.OpCursorUp, board.OpCursorDown, board.OpPromote, board.OpBeginNewTask,
			board.OpToggleFocus, board.OpQuit)
	}
}

// FullHelp returns bindings for the expanded help view
func (k helpKeyMap) FullHelp() [][]key.Binding {
	if k.focus == board.FocusNewTask {
		return [][]key.Binding{k.ShortHelp()}
	}
	return [][]key.Binding{
		k.pick(board.OpCursorUp, board.OpCursorDown, board.OpRaise, board.OpLower),
		k.pick(board.OpPromote, board.OpDemote, board.OpBeginNewTask, board.OpDelete),
		k.pick(board.OpToggleFocus, board.OpYank, board.OpQuit),
	}
}
