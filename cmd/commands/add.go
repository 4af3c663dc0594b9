package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-todo/internal/cli"
	"github.com/pluqqy/pluqqy-todo/pkg/board"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <file> <task...>",
		Short: "Add a pending task",
		Long: `Add a task to the pending list of a task file, creating the file if needed.

The new task is appended after the existing ones, exactly as if it had
been typed into the interface.

Examples:
  todo add groceries.todo Buy bread
  todo add work.todo "Call the plumber"`,
		Args: cobra.MinimumNArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateTaskFilePath(args[0]); err != nil {
				return err
			}
			return cli.ValidateTaskText(strings.Join(args[1:], " "))
		},
		RunE: runAdd,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	path := args[0]
	text := strings.Join(args[1:], " ")

	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	b, err := ctx.LoadBoard(path)
	if err != nil {
		return err
	}

	before := b.Pending().Len()
	b.Apply(board.OpBeginNewTask)
	for _, r := range text {
		b.Dispatch(board.Key(string(r)))
	}
	b.Apply(board.OpCommitTask)
	if b.Pending().Len() == before {
		return fmt.Errorf("task text %q has nothing to add", text)
	}

	if err := saveBoard(ctx, path, b); err != nil {
		return err
	}

	cli.PrintSuccess(cmd.OutOrStdout(), "Added %q to %s (%d pending)", text, path, b.Pending().Len())
	return nil
}
