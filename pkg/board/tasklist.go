package board

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index falls outside a list.
// Dispatched operations guard against it, so it only surfaces on direct API misuse.
var ErrIndexOutOfRange = errors.New("index out of range")

// TaskList is an ordered list of tasks with a single selection cursor.
// Tasks have no identity beyond their position.
type TaskList struct {
	items  []string
	cursor int
}

// NewTaskList creates a list holding a copy of items with the cursor on the first one.
func NewTaskList(items []string) *TaskList {
	return &TaskList{items: append([]string(nil), items...)}
}

// Len returns the number of tasks
func (l *TaskList) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list has no tasks
func (l *TaskList) IsEmpty() bool {
	return len(l.items) == 0
}

// Items returns a copy of the tasks in display order
func (l *TaskList) Items() []string {
	return append([]string(nil), l.items...)
}

// At returns the task at index i.
func (l *TaskList) At(i int) (string, error) {
	if i < 0 || i >= len(l.items) {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(l.items))
	}
	return l.items[i], nil
}

// Cursor returns the selected index. It is meaningless while the list is empty.
func (l *TaskList) Cursor() int {
	return l.cursor
}

// SetCursor moves the selection to i, clamped into the list.
func (l *TaskList) SetCursor(i int) {
	l.cursor = i
	l.ClampCursor()
}

// Selected returns the task under the cursor, if any.
func (l *TaskList) Selected() (string, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return "", false
	}
	return l.items[l.cursor], true
}

// RemoveAt removes and returns the task at index i, shifting later tasks left.
// The cursor is left untouched.
func (l *TaskList) RemoveAt(i int) (string, error) {
	task, err := l.At(i)
	if err != nil {
		return "", err
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return task, nil
}

// Append adds a task at the end of the list
func (l *TaskList) Append(task string) {
	l.items = append(l.items, task)
}

// MoveElement removes the task at from and inserts task at to.
// Both indices must be valid; otherwise the list is left unchanged.
func (l *TaskList) MoveElement(from, to int, task string) error {
	n := len(l.items)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from %d not in [0,%d)", ErrIndexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to %d not in [0,%d)", ErrIndexOutOfRange, to, n)
	}

	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items, "")
	copy(l.items[to+1:], l.items[to:])
	l.items[to] = task
	return nil
}

// CursorUp moves the selection one row up, wrapping from the first row to the last.
func (l *TaskList) CursorUp() {
	if len(l.items) == 0 {
		return
	}
	l.cursor--
	if l.cursor < 0 {
		l.cursor = len(l.items) - 1
	}
}

// CursorDown moves the selection one row down, wrapping from the last row to the first.
func (l *TaskList) CursorDown() {
	if len(l.items) == 0 {
		return
	}
	l.cursor++
	if l.cursor > len(l.items)-1 {
		l.cursor = 0
	}
}

// ClampCursor pulls the cursor back into [0, len-1], or to 0 for an empty list.
func (l *TaskList) ClampCursor() {
	switch {
	case len(l.items) == 0, l.cursor < 0:
		l.cursor = 0
	case l.cursor >= len(l.items):
		l.cursor = len(l.items) - 1
	}
}

// repairAfterRemoval keeps the selection on the row above the removed one
// and clamps the result. Every removal from either list goes through here.
func (l *TaskList) repairAfterRemoval() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.ClampCursor()
}
