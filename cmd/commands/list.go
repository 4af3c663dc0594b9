package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-todo/internal/cli"
	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

// ListResult represents the output structure for list command
type ListResult struct {
	File      string     `json:"file" yaml:"file"`
	Pending   []ListItem `json:"pending" yaml:"pending"`
	Completed []ListItem `json:"completed" yaml:"completed"`
	Count     int        `json:"count" yaml:"count"`
}

// ListItem represents a single task in the list
type ListItem struct {
	Position int    `json:"position" yaml:"position"`
	Task     string `json:"task" yaml:"task"`
}

var (
	listOutput   string
	listPending  bool
	listComplete bool
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "Print the tasks of a task file",
		Long: `Print both lists of a task file without starting the interface.

Task numbers match the ones accepted by done, undo, rm and copy.

Examples:
  # Show everything
  todo list groceries.todo

  # Only what is still open
  todo list groceries.todo --todo

  # Machine readable output
  todo list groceries.todo -o json`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"ls"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(listOutput)
		},
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutput, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&listPending, "todo", false, "Show only pending tasks")
	cmd.Flags().BoolVar(&listComplete, "done", false, "Show only completed tasks")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	path := args[0]

	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	b, err := openBoard(ctx, path)
	if err != nil {
		return err
	}
	snap := b.Snapshot()

	showPending := listPending || !listComplete
	showCompleted := listComplete || !listPending

	result := ListResult{File: path, Pending: []ListItem{}, Completed: []ListItem{}}
	if showPending {
		result.Pending = toListItems(snap.Pending)
	}
	if showCompleted {
		result.Completed = toListItems(snap.Completed)
	}
	result.Count = len(result.Pending) + len(result.Completed)

	switch listOutput {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), listOutput, result)
	default:
		return outputListText(cmd, result, showPending, showCompleted)
	}
}

func toListItems(tasks []string) []ListItem {
	items := make([]ListItem, 0, len(tasks))
	for i, task := range tasks {
		items = append(items, ListItem{Position: i + 1, Task: task})
	}
	return items
}

func outputListText(cmd *cobra.Command, result ListResult, showPending, showCompleted bool) error {
	out := cmd.OutOrStdout()

	if result.Count == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("#", "LIST", "TASK")
	if showPending {
		for _, item := range result.Pending {
			table.Row(strconv.Itoa(item.Position), models.ListPending, item.Task)
		}
	}
	if showCompleted {
		for _, item := range result.Completed {
			table.Row(strconv.Itoa(item.Position), models.ListCompleted, item.Task)
		}
	}
	table.Flush()

	fmt.Fprintf(out, "\n%d todo, %d done\n", len(result.Pending), len(result.Completed))
	return nil
}
