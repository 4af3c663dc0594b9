// Package board holds the task engine: the pending and completed lists,
// the new-task edit buffer, the focus state and the keystroke dispatcher.
//
// A Board is owned by a single interaction loop and is not safe for concurrent use.
package board

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

// Result describes what a dispatched keystroke did
type Result struct {
	// Op is the operation that ran, or OpNone when the key was ignored
	Op Op
	// Changed is false when the operation's guard turned it into a no-op
	Changed bool
	// Quit asks the caller to save and end the interaction loop
	Quit bool
	// Yanked carries the selected task text for OpYank
	Yanked string
}

// Board owns both task lists and the focus. It is the only writer of either list.
type Board struct {
	pending   *TaskList
	completed *TaskList
	focus     Focus
	edit      *EditBuffer
	keymap    Keymap
}

// New creates a board focused on the pending list
func New(snapshot models.Snapshot, bindings Bindings) *Board {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Board{
		pending:   NewTaskList(snapshot.Pending),
		completed: NewTaskList(snapshot.Completed),
		focus:     FocusPending,
		keymap:    bindings.Keymap(),
	}
}

// Focus returns the current focus
func (b *Board) Focus() Focus {
	return b.focus
}

// Pending returns the pending list. Callers must treat it as read-only.
func (b *Board) Pending() *TaskList {
	return b.pending
}

// Completed returns the completed list. Callers must treat it as read-only.
func (b *Board) Completed() *TaskList {
	return b.completed
}

// Edit returns the buffer being composed, or nil outside of new-task mode.
func (b *Board) Edit() *EditBuffer {
	return b.edit
}

// Keymap returns the lookup table the board dispatches with
func (b *Board) Keymap() Keymap {
	return b.keymap
}

// Total returns the number of tasks across both lists
func (b *Board) Total() int {
	return b.pending.Len() + b.completed.Len()
}

// Snapshot copies both lists for persistence
func (b *Board) Snapshot() models.Snapshot {
	return models.Snapshot{
		Pending:   b.pending.Items(),
		Completed: b.completed.Items(),
	}
}

// focused returns the list receiving list commands, or nil while editing
func (b *Board) focused() *TaskList {
	switch b.focus {
	case FocusPending:
		return b.pending
	case FocusCompleted:
		return b.completed
	}
	return nil
}

// Select moves the cursor of the list in focus to index i
func (b *Board) Select(i int) error {
	list := b.focused()
	if list == nil {
		return fmt.Errorf("no list in focus while %s", b.focus)
	}
	if _, err := list.At(i); err != nil {
		return err
	}
	list.SetCursor(i)
	return nil
}

// Promote moves the selected pending task to the end of the completed list.
func (b *Board) Promote() bool {
	if b.focus != FocusPending {
		return false
	}
	return transfer(b.pending, b.completed)
}

// Demote moves the selected completed task to the end of the pending list.
func (b *Board) Demote() bool {
	if b.focus != FocusCompleted {
		return false
	}
	return transfer(b.completed, b.pending)
}

// transfer removes the selected task from src and appends it to dst
func transfer(src, dst *TaskList) bool {
	if src.IsEmpty() {
		return false
	}
	task, err := src.RemoveAt(src.Cursor())
	if err != nil {
		return false
	}
	dst.Append(task)
	src.repairAfterRemoval()
	return true
}

// Apply runs op against the board. Operations whose precondition does not
// hold leave the board untouched and report Changed=false.
func (b *Board) Apply(op Op) Result {
	res := Result{Op: op}
	list := b.focused()

	switch op {
	case OpCursorUp:
		if list != nil && !list.IsEmpty() {
			list.CursorUp()
			res.Changed = true
		}

	case OpCursorDown:
		if list != nil && !list.IsEmpty() {
			list.CursorDown()
			res.Changed = true
		}

	case OpToggleFocus:
		if b.focus.IsList() {
			b.focus = b.focus.Toggled()
			res.Changed = true
		}

	case OpPromote:
		res.Changed = b.Promote()

	case OpDemote:
		res.Changed = b.Demote()

	case OpRaise:
		if list != nil && list.Cursor() > 0 && list.Cursor() < list.Len() {
			cur := list.Cursor()
			task, _ := list.At(cur)
			if err := list.MoveElement(cur, cur-1, task); err == nil {
				list.cursor--
				res.Changed = true
			}
		}

	case OpLower:
		if list != nil && list.Cursor() >= 0 && list.Cursor() < list.Len()-1 {
			cur := list.Cursor()
			task, _ := list.At(cur)
			if err := list.MoveElement(cur, cur+1, task); err == nil {
				list.cursor++
				res.Changed = true
			}
		}

	case OpBeginNewTask:
		if b.focus == FocusPending {
			b.focus = FocusNewTask
			b.edit = NewEditBuffer()
			res.Changed = true
		}

	case OpCommitTask:
		if b.focus == FocusNewTask {
			text := b.edit.Commit()
			b.edit = nil
			b.focus = FocusPending
			if strings.TrimSpace(text) != "" {
				b.pending.Append(text)
				b.pending.SetCursor(0)
			}
			res.Changed = true
		}

	case OpCancelTask:
		if b.focus == FocusNewTask {
			b.edit = nil
			b.focus = FocusPending
			res.Changed = true
		}

	case OpDelete:
		if b.focus == FocusCompleted && !list.IsEmpty() {
			if _, err := list.RemoveAt(list.Cursor()); err == nil {
				list.repairAfterRemoval()
				res.Changed = true
			}
		}

	case OpYank:
		if list != nil {
			if task, ok := list.Selected(); ok {
				res.Yanked = task
				res.Changed = true
			}
		}

	case OpQuit:
		res.Quit = true
		res.Changed = true
	}

	return res
}

// Dispatch resolves a keystroke and applies it. While a new task is being
// composed every key goes to the edit buffer; otherwise the keymap decides.
func (b *Board) Dispatch(k Key) Result {
	if b.focus == FocusNewTask {
		return b.dispatchEdit(k)
	}

	ops := b.keymap.Lookup(k)
	if len(ops) == 0 {
		return Result{Op: OpNone}
	}

	var res Result
	for _, op := range ops {
		res = b.Apply(op)
		if res.Changed {
			return res
		}
	}
	return res
}

func (b *Board) dispatchEdit(k Key) Result {
	switch k {
	case KeyEnter:
		return b.Apply(OpCommitTask)
	case KeyEsc:
		return b.Apply(OpCancelTask)
	case KeyBackspace, KeyCtrlH:
		b.edit.DeleteBackward()
	case KeyLeft:
		b.edit.MoveLeft()
	case KeyRight:
		b.edit.MoveRight()
	case KeyHome, KeyCtrlA:
		b.edit.Home()
	case KeyEnd, KeyCtrlE:
		b.edit.End()
	default:
		r, ok := k.Rune()
		if !ok {
			return Result{Op: OpNone}
		}
		b.edit.InsertChar(r)
	}
	return Result{Op: OpNone, Changed: true}
}
