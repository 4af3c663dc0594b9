package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-todo/internal/cli"
	"github.com/pluqqy/pluqqy-todo/pkg/board"
)

// taskAction describes a headless command that applies one board operation
// to the task at a given position.
type taskAction struct {
	use     string
	short   string
	long    string
	focus   board.Focus
	op      board.Op
	success string
	aliases []string
}

func newTaskActionCommand(action taskAction) *cobra.Command {
	return &cobra.Command{
		Use:     action.use,
		Short:   action.short,
		Long:    action.long,
		Args:    cobra.ExactArgs(2),
		Aliases: action.aliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskAction(cmd, args, action)
		},
	}
}

func runTaskAction(cmd *cobra.Command, args []string, action taskAction) error {
	path := args[0]
	n, err := parsePosition(args[1])
	if err != nil {
		return err
	}

	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	b, err := openBoard(ctx, path)
	if err != nil {
		return err
	}

	if err := selectTask(b, action.focus, n); err != nil {
		return err
	}

	list := b.Pending()
	if action.focus == board.FocusCompleted {
		list = b.Completed()
	}
	task, _ := list.Selected()

	if res := b.Apply(action.op); !res.Changed {
		return fmt.Errorf("could not %s task #%d", action.op, n)
	}

	if err := saveBoard(ctx, path, b); err != nil {
		return err
	}

	cli.PrintSuccess(cmd.OutOrStdout(), action.success, task)
	return nil
}

// NewDoneCommand creates the done command
func NewDoneCommand() *cobra.Command {
	return newTaskActionCommand(taskAction{
		use:   "done <file> <n>",
		short: "Mark pending task n as done",
		long: `Move pending task n to the end of the completed list.

Examples:
  todo done groceries.todo 2`,
		focus:   board.FocusPending,
		op:      board.OpPromote,
		success: "Done: %s",
	})
}

// NewUndoCommand creates the undo command
func NewUndoCommand() *cobra.Command {
	return newTaskActionCommand(taskAction{
		use:   "undo <file> <n>",
		short: "Move completed task n back to the pending list",
		long: `Move completed task n to the end of the pending list.

Examples:
  todo undo groceries.todo 1`,
		focus:   board.FocusCompleted,
		op:      board.OpDemote,
		success: "Reopened: %s",
		aliases: []string{"reopen"},
	})
}

// NewRemoveCommand creates the rm command
func NewRemoveCommand() *cobra.Command {
	return newTaskActionCommand(taskAction{
		use:   "rm <file> <n>",
		short: "Delete completed task n",
		long: `Permanently delete completed task n.

Only completed tasks can be deleted, so nothing still pending is lost by
accident. Mark a task done first to remove it.

Examples:
  todo rm groceries.todo 1`,
		focus:   board.FocusCompleted,
		op:      board.OpDelete,
		success: "Deleted: %s",
		aliases: []string{"delete"},
	})
}
