package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-todo/pkg/board"
	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

// Options wires an App to its collaborators
type Options struct {
	// Path is the task file name shown in the header
	Path     string
	Board    *board.Board
	Bindings board.Bindings
	Settings *models.Settings
	// Save persists both lists; it runs when the user quits
	Save func(models.Snapshot) error
	// Clipboard receives yanked task text. Defaults to the system clipboard.
	Clipboard func(string) error
	Logger    *slog.Logger
}

// App is the bubbletea model driving a board. It renders the board's state
// and feeds it keystrokes; all list changes happen inside the board.
type App struct {
	board     *board.Board
	path      string
	settings  *models.Settings
	keys      helpKeyMap
	help      help.Model
	save      func(models.Snapshot) error
	clipboard func(string) error
	logger    *slog.Logger

	width      int
	height     int
	statusMsg  string
	saving     bool
	saveFailed bool
	quitting   bool
}

// Messages for communication between commands and the model
type StatusMsg string

type savedMsg struct {
	err error
}

type copiedMsg struct {
	text string
	err  error
}

// NewApp creates the model. Missing options fall back to defaults.
func NewApp(opts Options) *App {
	if opts.Settings == nil {
		opts.Settings = models.DefaultSettings()
	}
	if opts.Bindings == nil {
		opts.Bindings = board.DefaultBindings()
	}
	if opts.Board == nil {
		opts.Board = board.New(models.Snapshot{}, opts.Bindings)
	}
	if opts.Save == nil {
		opts.Save = func(models.Snapshot) error { return nil }
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := help.New()
	h.Styles.ShortKey = HeaderStyle
	h.Styles.ShortDesc = PlaceholderStyle.UnsetItalic()

	return &App{
		board:     opts.Board,
		path:      opts.Path,
		settings:  opts.Settings,
		keys:      newHelpKeyMap(opts.Bindings),
		help:      h,
		save:      opts.Save,
		clipboard: opts.Clipboard,
		logger:    opts.Logger,
	}
}

// Board returns the board the app drives
func (a *App) Board() *board.Board {
	return a.board
}

// Quitting reports whether the app saved successfully and is shutting down
func (a *App) Quitting() bool {
	return a.quitting
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case savedMsg:
		a.saving = false
		if msg.err != nil {
			a.saveFailed = true
			a.logger.Error("save failed", "path", a.path, "error", msg.err)
			a.statusMsg = fmt.Sprintf("Save failed: %v (q to retry, ctrl+c to quit without saving)", msg.err)
			return a, nil
		}
		a.logger.Info("saved", "path", a.path,
			"pending", a.board.Pending().Len(), "completed", a.board.Completed().Len())
		a.quitting = true
		return a, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			a.logger.Warn("clipboard write failed", "error", msg.err)
			a.statusMsg = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			a.statusMsg = fmt.Sprintf("Copied %q", msg.text)
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.saving {
		return a, nil
	}

	if msg.Type == tea.KeyCtrlC {
		if a.saveFailed {
			a.logger.Warn("quit without saving", "path", a.path)
			return a, tea.Quit
		}
		return a, a.quit()
	}

	a.statusMsg = ""

	if msg.String() == "?" && a.board.Focus().IsList() && len(a.board.Keymap().Lookup("?")) == 0 {
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}

	var cmds []tea.Cmd
	for _, k := range keysFromMsg(msg, a.board.Focus() == board.FocusNewTask) {
		res := a.board.Dispatch(k)
		if res.Op != board.OpNone {
			a.logger.Debug("dispatch", "key", string(k), "op", res.Op.String(), "changed", res.Changed,
				"focus", a.board.Focus().String())
		}

		if res.Yanked != "" {
			cmds = append(cmds, a.copyCmd(res.Yanked))
		}
		if res.Quit {
			cmds = append(cmds, a.quit())
			break
		}
	}

	return a, tea.Batch(cmds...)
}

// quit starts saving; the savedMsg that follows ends the program on success
func (a *App) quit() tea.Cmd {
	a.saving = true
	snap := a.board.Snapshot()
	save := a.save
	return func() tea.Msg {
		return savedMsg{err: save(snap)}
	}
}

func (a *App) copyCmd(text string) tea.Cmd {
	write := a.clipboard
	return func() tea.Msg {
		return copiedMsg{text: text, err: write(text)}
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	sections := []string{
		renderHeader(a.width, a.board.Focus(), a.board.Pending().Len(), a.board.Completed().Len(), a.path),
		"",
		ContentPaddingStyle.Render(a.renderBody()),
	}

	if a.settings.UI.ShowHelp {
		a.keys.focus = a.board.Focus()
		sections = append(sections, "", ContentPaddingStyle.Render(a.help.View(a.keys)))
	}

	if a.statusMsg != "" {
		sections = append(sections, StatusStyle.Render(a.statusMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBody draws the list in focus, or the edit line while composing a task
func (a *App) renderBody() string {
	ui := a.settings.UI

	switch a.board.Focus() {
	case board.FocusNewTask:
		edit := a.board.Edit()
		input := NewInputRenderer(a.width - 4)
		return input.RenderInputFieldWithLabel("NEW TASK", edit.Text(), edit.Column(), "describe the task, enter to save")

	case board.FocusCompleted:
		list := a.board.Completed()
		r := ListRenderer{Width: a.width - 2, Marker: ui.CompletedMarker, Done: true}
		return r.Render(list.Items(), list.Cursor(), "Nothing done yet.")

	default:
		list := a.board.Pending()
		r := ListRenderer{Width: a.width - 2, Marker: ui.PendingMarker}
		return r.Render(list.Items(), list.Cursor(), a.emptyPendingHint())
	}
}

func (a *App) emptyPendingHint() string {
	b, ok := a.keys.bindings[board.OpBeginNewTask]
	if !ok || len(b.Keys()) == 0 {
		return "No tasks."
	}
	return fmt.Sprintf("No tasks. Press %s to add one.", displayKey(board.Key(b.Keys()[0])))
}
