package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-todo/internal/cli"
	"github.com/pluqqy/pluqqy-todo/pkg/board"
)

var (
	copyFromDone bool
	// copyToClipboard is replaced in tests
	copyToClipboard = clipboard.WriteAll
)

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <file> <n>",
		Short: "Copy task n to the clipboard",
		Long: `Copy the text of a task to the system clipboard.

Examples:
  # Copy the first pending task
  todo copy groceries.todo 1

  # Copy a completed task
  todo copy groceries.todo 3 --done`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"clip", "yank"},
		RunE:    runCopy,
	}

	cmd.Flags().BoolVar(&copyFromDone, "done", false, "Pick the task from the completed list")

	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
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

	focus := board.FocusPending
	if copyFromDone {
		focus = board.FocusCompleted
	}
	if err := selectTask(b, focus, n); err != nil {
		return err
	}

	res := b.Apply(board.OpYank)
	if !res.Changed {
		return fmt.Errorf("nothing to copy at #%d", n)
	}

	if err := copyToClipboard(res.Yanked); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess(cmd.OutOrStdout(), "Copied to clipboard: %s", res.Yanked)
	return nil
}
