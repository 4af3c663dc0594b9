package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-todo/internal/cli"
	"github.com/pluqqy/pluqqy-todo/pkg/board"
	"github.com/pluqqy/pluqqy-todo/pkg/files"
)

// newCommandContext loads settings from the --config flag when the root
// command defines it, or from the default location otherwise.
func newCommandContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return cli.NewCommandContext(configPath)
}

// openBoard loads an existing task file. Unlike the TUI, headless commands
// refuse to work on a file they cannot read.
func openBoard(ctx *cli.CommandContext, path string) (*board.Board, error) {
	if err := cli.ValidateTaskFileExists(path); err != nil {
		return nil, err
	}
	b, err := ctx.LoadBoard(path)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func saveBoard(ctx *cli.CommandContext, path string, b *board.Board) error {
	if err := files.Save(path, b.Snapshot(), ctx.Prefixes); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// parsePosition parses a 1-based task number as printed by the list command
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task number %q: must be a positive integer", arg)
	}
	return n, nil
}

// selectTask focuses the requested list and puts its cursor on task n (1-based)
func selectTask(b *board.Board, focus board.Focus, n int) error {
	if b.Focus() != focus {
		b.Apply(board.OpToggleFocus)
	}

	if err := b.Select(n - 1); err != nil {
		return fmt.Errorf("no %s task #%d: %w", focus, n, err)
	}
	return nil
}
