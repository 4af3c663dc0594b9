package board

// Focus tells which part of the board receives keystrokes
type Focus int

const (
	FocusPending Focus = iota
	FocusCompleted
	FocusNewTask
)

func (f Focus) String() string {
	switch f {
	case FocusPending:
		return "pending"
	case FocusCompleted:
		return "completed"
	case FocusNewTask:
		return "new-task"
	default:
		return "unknown"
	}
}

// IsList reports whether the focus is on one of the two lists
func (f Focus) IsList() bool {
	return f == FocusPending || f == FocusCompleted
}

// Toggled returns the other list focus. NewTask has no counterpart and is returned unchanged.
func (f Focus) Toggled() Focus {
	switch f {
	case FocusPending:
		return FocusCompleted
	case FocusCompleted:
		return FocusPending
	default:
		return f
	}
}
