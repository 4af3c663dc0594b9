package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-todo/pkg/board"
	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

type fakeStore struct {
	saved []models.Snapshot
	err   error
}

func (s *fakeStore) Save(snap models.Snapshot) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, snap)
	return nil
}

func newTestApp(t *testing.T, snap models.Snapshot, store *fakeStore) *App {
	t.Helper()
	a := NewApp(Options{
		Path:      "list.todo",
		Board:     board.New(snap, nil),
		Save:      store.Save,
		Clipboard: func(string) error { return nil },
	})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds key events to the app and returns the command of the last one
func press(a *App, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.Update(msg)
	}
	return cmd
}

// drain runs cmd and every command it batches, feeding results back to the app
func drain(a *App, cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(a, c)...)
		}
		return out
	}
	_, next := a.Update(msg)
	return append([]tea.Msg{msg}, drain(a, next)...)
}

func containsMsg[T tea.Msg](msgs []tea.Msg) bool {
	for _, m := range msgs {
		if _, ok := m.(T); ok {
			return true
		}
	}
	return false
}

func TestApp_ViewBeforeResize(t *testing.T) {
	a := NewApp(Options{})

	assert.Equal(t, "Loading...", a.View())
}

func TestApp_View(t *testing.T) {
	store := &fakeStore{}
	a := newTestApp(t, models.Snapshot{Pending: []string{"Buy bread", "Call mom"}, Completed: []string{"Do laundry"}}, store)

	view := a.View()
	assert.Contains(t, view, "[TODO]")
	assert.Contains(t, view, "Buy bread")
	assert.Contains(t, view, "Call mom")
	assert.NotContains(t, view, "Do laundry")
	assert.Contains(t, view, "2 todo · 1 done")

	press(a, tea.KeyMsg{Type: tea.KeyTab})
	view = a.View()
	assert.Contains(t, view, "[DONE]")
	assert.Contains(t, view, "Do laundry")
	assert.NotContains(t, view, "Buy bread")
}

func TestApp_EmptyListHints(t *testing.T) {
	a := newTestApp(t, models.Snapshot{}, &fakeStore{})

	assert.Contains(t, a.View(), "No tasks. Press i to add one.")

	press(a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, a.View(), "Nothing done yet.")
}

func TestApp_KeysDriveBoard(t *testing.T) {
	a := newTestApp(t, models.Snapshot{Pending: []string{"A", "B", "C"}}, &fakeStore{})

	press(a, runeKey("J"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"B", "C"}, a.Board().Pending().Items())
	assert.Equal(t, []string{"A"}, a.Board().Completed().Items())
	assert.Equal(t, 0, a.Board().Pending().Cursor())
}

func TestApp_NewTask(t *testing.T) {
	a := newTestApp(t, models.Snapshot{Pending: []string{"A"}}, &fakeStore{})

	press(a, runeKey("i"))
	assert.Equal(t, board.FocusNewTask, a.Board().Focus())
	assert.Contains(t, a.View(), "NEW TASK")

	press(a, runeKey("x"), runeKey("y"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Contains(t, a.View(), "x")

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"A", "x"}, a.Board().Pending().Items())
	assert.Equal(t, board.FocusPending, a.Board().Focus())
}

func TestApp_PasteIntoNewTask(t *testing.T) {
	a := newTestApp(t, models.Snapshot{}, &fakeStore{})

	press(a, runeKey("a"), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("milk & eggs"), Paste: true})

	require.NotNil(t, a.Board().Edit())
	assert.Equal(t, "milk & eggs", a.Board().Edit().Text())
}

func TestApp_PasteInListIsIgnored(t *testing.T) {
	store := &fakeStore{}
	a := newTestApp(t, models.Snapshot{Pending: []string{"A"}, Completed: []string{"a", "b", "c"}}, store)

	press(a, tea.KeyMsg{Type: tea.KeyTab})
	cmd := press(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("xxdq"), Paste: true})

	assert.Nil(t, cmd)
	assert.Equal(t, board.FocusCompleted, a.Board().Focus())
	assert.Equal(t, []string{"a", "b", "c"}, a.Board().Completed().Items())
	assert.False(t, a.Quitting())
	assert.Empty(t, store.saved)
}

func TestApp_QuitSaves(t *testing.T) {
	store := &fakeStore{}
	a := newTestApp(t, models.Snapshot{Pending: []string{"A"}, Completed: []string{"B"}}, store)

	cmd := press(a, runeKey("q"))
	require.NotNil(t, cmd)

	msgs := drain(a, cmd)

	require.Len(t, store.saved, 1)
	assert.Equal(t, models.Snapshot{Pending: []string{"A"}, Completed: []string{"B"}}, store.saved[0])
	assert.True(t, a.Quitting())
	assert.True(t, containsMsg[tea.QuitMsg](msgs))
	assert.Equal(t, "", a.View())
}

func TestApp_CtrlCSaves(t *testing.T) {
	store := &fakeStore{}
	a := newTestApp(t, models.Snapshot{Pending: []string{"A"}}, store)

	drain(a, press(a, tea.KeyMsg{Type: tea.KeyCtrlC}))

	assert.Len(t, store.saved, 1)
	assert.True(t, a.Quitting())
}

func TestApp_SaveFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	a := newTestApp(t, models.Snapshot{Pending: []string{"A"}}, store)

	msgs := drain(a, press(a, runeKey("q")))

	assert.False(t, a.Quitting())
	assert.False(t, containsMsg[tea.QuitMsg](msgs))
	assert.Contains(t, a.View(), "Save failed: disk full")

	// Still usable after the failure
	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"A"}, a.Board().Completed().Items())

	// q retries the save
	store.err = nil
	drain(a, press(a, runeKey("q")))
	assert.True(t, a.Quitting())
	require.Len(t, store.saved, 1)
	assert.Equal(t, []string{"A"}, store.saved[0].Completed)
}

func TestApp_CtrlCAfterSaveFailureQuits(t *testing.T) {
	store := &fakeStore{err: errors.New("read-only file system")}
	a := newTestApp(t, models.Snapshot{}, store)
	drain(a, press(a, runeKey("q")))

	cmd := press(a, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, store.saved)
}

func TestApp_KeysIgnoredWhileSaving(t *testing.T) {
	a := newTestApp(t, models.Snapshot{Pending: []string{"A"}}, &fakeStore{})

	cmd := press(a, runeKey("q"))
	require.NotNil(t, cmd)

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"A"}, a.Board().Pending().Items())
}

func TestApp_Yank(t *testing.T) {
	var copied string
	a := NewApp(Options{
		Board: board.New(models.Snapshot{Pending: []string{"Buy bread"}}, nil),
		Clipboard: func(s string) error {
			copied = s
			return nil
		},
	})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	drain(a, press(a, runeKey("y")))

	assert.Equal(t, "Buy bread", copied)
	assert.Contains(t, a.View(), `Copied "Buy bread"`)
	assert.Equal(t, 1, a.Board().Total())
}

func TestApp_YankFailure(t *testing.T) {
	a := NewApp(Options{
		Board:     board.New(models.Snapshot{Pending: []string{"A"}}, nil),
		Clipboard: func(string) error { return errors.New("no xclip") },
	})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	drain(a, press(a, runeKey("y")))

	assert.Contains(t, a.View(), "Copy failed: no xclip")
}

func TestApp_StatusClearedOnNextKey(t *testing.T) {
	a := newTestApp(t, models.Snapshot{}, &fakeStore{})

	a.Update(StatusMsg("hello"))
	assert.Contains(t, a.View(), "hello")

	press(a, runeKey("j"))
	assert.NotContains(t, a.View(), "hello")
}

func TestApp_HelpToggle(t *testing.T) {
	a := newTestApp(t, models.Snapshot{}, &fakeStore{})
	short := a.View()

	press(a, runeKey("?"))
	full := a.View()

	assert.True(t, a.help.ShowAll)
	assert.Contains(t, full, "raise priority")
	assert.NotContains(t, short, "raise priority")
}

func TestApp_HiddenHelp(t *testing.T) {
	settings := models.DefaultSettings()
	settings.UI.ShowHelp = false
	a := NewApp(Options{Settings: settings})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.NotContains(t, a.View(), "move up")
}

func TestKeysFromMsg(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		editing bool
		want    []board.Key
	}{
		{"letter", runeKey("q"), false, []board.Key{"q"}},
		{"uppercase", runeKey("K"), false, []board.Key{"K"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, []board.Key{board.KeySpace}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, false, []board.Key{board.KeyEnter}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, false, []board.Key{board.KeyTab}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, true, []board.Key{board.KeyEsc}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, true, []board.Key{board.KeyBackspace}},
		{"shift up", tea.KeyMsg{Type: tea.KeyShiftUp}, false, []board.Key{board.KeyShiftUp}},
		{"shift down", tea.KeyMsg{Type: tea.KeyShiftDown}, false, []board.Key{board.KeyShiftDown}},
		{"ctrl a", tea.KeyMsg{Type: tea.KeyCtrlA}, true, []board.Key{board.KeyCtrlA}},
		{"pasted runes while editing", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, true, []board.Key{"a", "b"}},
		{"pasted runes in a list", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("xxd"), Paste: true}, false, nil},
		{"pasted single rune in a list", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Paste: true}, false, nil},
		{"burst of runes in a list", runeKey("xq"), false, nil},
		{"alt chord", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, false, []board.Key{"alt+x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysFromMsg(tt.msg, tt.editing))
		})
	}
}

func TestHelpKeyMap(t *testing.T) {
	km := newHelpKeyMap(board.DefaultBindings())

	km.focus = board.FocusPending
	assert.Equal(t, "mark done", km.ShortHelp()[2].Help().Desc)

	km.focus = board.FocusCompleted
	var descs []string
	for _, b := range km.ShortHelp() {
		descs = append(descs, b.Help().Desc)
	}
	assert.Contains(t, descs, "mark todo")
	assert.Contains(t, descs, "delete")

	km.focus = board.FocusNewTask
	require.Len(t, km.ShortHelp(), 2)
	assert.Equal(t, "enter", km.ShortHelp()[0].Help().Key)
	assert.Equal(t, "esc", km.ShortHelp()[1].Help().Key)
}

func TestHelpKeyMap_CustomBindings(t *testing.T) {
	bindings, err := board.DefaultBindings().WithOverrides(map[string][]string{"new": {"n"}})
	require.NoError(t, err)

	a := NewApp(Options{Bindings: bindings, Board: board.New(models.Snapshot{}, bindings)})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, a.View(), "Press n to add one.")
	assert.True(t, strings.Contains(a.View(), "n new task"))
}
