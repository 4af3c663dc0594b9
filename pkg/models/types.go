package models

// List names as they appear in headers and command output
const (
	ListPending   = "todo"
	ListCompleted = "done"
)

// Snapshot is a copy of both task lists, in display order.
// It is what gets persisted and printed; it never aliases a live list.
type Snapshot struct {
	Pending   []string `json:"pending" yaml:"pending"`
	Completed []string `json:"completed" yaml:"completed"`
}

// Total returns the number of tasks across both lists
func (s Snapshot) Total() int {
	return len(s.Pending) + len(s.Completed)
}
