package board

import (
	"fmt"
	"sort"
)

// Op is one board operation a keystroke can resolve to
type Op int

const (
	OpNone Op = iota
	OpCursorUp
	OpCursorDown
	OpToggleFocus
	OpPromote
	OpDemote
	OpRaise
	OpLower
	OpBeginNewTask
	OpCommitTask
	OpCancelTask
	OpDelete
	OpYank
	OpQuit
)

var opNames = map[Op]string{
	OpNone:         "none",
	OpCursorUp:     "up",
	OpCursorDown:   "down",
	OpToggleFocus:  "toggle",
	OpPromote:      "done",
	OpDemote:       "undo",
	OpRaise:        "raise",
	OpLower:        "lower",
	OpBeginNewTask: "new",
	OpCommitTask:   "commit",
	OpCancelTask:   "cancel",
	OpDelete:       "delete",
	OpYank:         "yank",
	OpQuit:         "quit",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// ParseOp resolves an action name as used in the settings file
func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name && op != OpNone {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("unknown action %q", name)
}

// Description is the short help text shown for an operation
func (o Op) Description() string {
	switch o {
	case OpCursorUp:
		return "move up"
	case OpCursorDown:
		return "move down"
	case OpToggleFocus:
		return "switch list"
	case OpPromote:
		return "mark done"
	case OpDemote:
		return "mark todo"
	case OpRaise:
		return "raise priority"
	case OpLower:
		return "lower priority"
	case OpBeginNewTask:
		return "new task"
	case OpCommitTask:
		return "save task"
	case OpCancelTask:
		return "cancel"
	case OpDelete:
		return "delete"
	case OpYank:
		return "copy"
	case OpQuit:
		return "save & quit"
	}
	return ""
}

// Bindings lists the keys bound to each list operation
type Bindings map[Op][]Key

// DefaultBindings returns the stock key layout
func DefaultBindings() Bindings {
	return Bindings{
		OpCursorUp:     {KeyUp, "k"},
		OpCursorDown:   {KeyDown, "j"},
		OpToggleFocus:  {KeyTab},
		OpPromote:      {KeyEnter, KeySpace},
		OpDemote:       {KeyEnter, KeySpace},
		OpRaise:        {KeyShiftUp, "K"},
		OpLower:        {KeyShiftDown, "J"},
		OpBeginNewTask: {"i", "a"},
		OpDelete:       {"x", "d"},
		OpYank:         {"y"},
		OpQuit:         {"q"},
	}
}

// WithOverrides returns a copy of b where every action named in overrides
// is rebound to the given keys. Actions not mentioned keep their keys.
func (b Bindings) WithOverrides(overrides map[string][]string) (Bindings, error) {
	out := make(Bindings, len(b))
	for op, keys := range b {
		out[op] = append([]Key(nil), keys...)
	}

	for action, names := range overrides {
		op, err := ParseOp(action)
		if err != nil {
			return nil, err
		}
		if op == OpCommitTask || op == OpCancelTask {
			return nil, fmt.Errorf("action %q is fixed while editing and cannot be rebound", action)
		}
		keys := make([]Key, 0, len(names))
		for _, name := range names {
			k, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", action, err)
			}
			keys = append(keys, k)
		}
		out[op] = keys
	}

	if err := out.checkConflicts(); err != nil {
		return nil, err
	}
	return out, nil
}

// sharesKey reports whether two operations may be bound to the same key.
// Only promote and demote may: their focus guards never both pass.
func sharesKey(a, b Op) bool {
	return (a == OpPromote && b == OpDemote) || (a == OpDemote && b == OpPromote)
}

// checkConflicts rejects a key bound to two operations that could both run
// from the same focus.
func (b Bindings) checkConflicts() error {
	km := b.Keymap()

	keys := make([]Key, 0, len(km))
	for k := range km {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, k := range keys {
		ops := km[k]
		for i := 0; i < len(ops); i++ {
			for j := i + 1; j < len(ops); j++ {
				if ops[i] != ops[j] && !sharesKey(ops[i], ops[j]) {
					return fmt.Errorf("key %q is bound to both %q and %q", k, ops[i], ops[j])
				}
			}
		}
	}
	return nil
}

// Keymap is the lookup table from a keystroke to the operations it may trigger.
// Several operations can share a key; the first whose guard passes wins.
type Keymap map[Key][]Op

// Keymap builds the lookup table. Operations sharing a key are kept in Op order
// so resolution is deterministic.
func (b Bindings) Keymap() Keymap {
	ops := make([]Op, 0, len(b))
	for op := range b {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	km := make(Keymap)
	for _, op := range ops {
		for _, k := range b[op] {
			km[k] = append(km[k], op)
		}
	}
	return km
}

// Lookup returns the operations bound to k
func (km Keymap) Lookup(k Key) []Op {
	return km[k]
}
