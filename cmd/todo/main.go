package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-todo/cmd/commands"
	"github.com/pluqqy/pluqqy-todo/internal/cli"
	"github.com/pluqqy/pluqqy-todo/pkg/files"
	"github.com/pluqqy/pluqqy-todo/pkg/models"
	"github.com/pluqqy/pluqqy-todo/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath string
	quietFlag  bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "todo [file]",
	Short: "Keyboard driven TODO/DONE lists in the terminal",
	Long: `todo keeps a pending and a completed task list in one plain text file.

Every line starting with "TODO " is a pending task and every line starting
with "DONE " is a completed one. Run it with a file to open that file, or
without arguments to start a new one with a random name.

Keys: ↑/↓ move, enter mark done (or back to todo), shift+↑/↓ reorder,
i new task, tab switch lists, x delete a completed task, y copy, q save & quit.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, noColor)
	},
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(configPath)
	if err != nil {
		return err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	path = ctx.ResolveTaskFile(path)
	if err := cli.ValidateTaskFilePath(path); err != nil {
		return err
	}

	logger, closeLog, err := cli.NewLogger(ctx.Settings.Log)
	if err != nil {
		cli.PrintWarning("logging disabled: %v", err)
		logger, closeLog, _ = cli.NewLogger(models.LogSettings{})
	}
	defer closeLog()

	bindings, err := ctx.Bindings()
	if err != nil {
		return err
	}

	b, err := ctx.LoadBoard(path)
	if err != nil {
		// Start with empty lists rather than refusing to open.
		logger.Warn("load failed", "path", path, "error", err)
		if !errors.Is(err, files.ErrUnavailable) {
			return err
		}
	}
	logger.Info("opened", "path", path, "pending", b.Pending().Len(), "completed", b.Completed().Len())

	if noColor {
		os.Setenv("NO_COLOR", "1")
	}
	tui.ApplyColorProfile()

	app := tui.NewApp(tui.Options{
		Path:     path,
		Board:    b,
		Bindings: bindings,
		Settings: ctx.Settings,
		Save: func(snap models.Snapshot) error {
			return files.Save(path, snap, ctx.Prefixes)
		},
		Logger: logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if app.Quitting() {
		cli.PrintSuccess(cmd.OutOrStdout(), "Saved %s", path)
	} else {
		cli.PrintWarning("quit without saving %s", path)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/pluqqy-todo/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewDoneCommand())
	rootCmd.AddCommand(commands.NewUndoCommand())
	rootCmd.AddCommand(commands.NewRemoveCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(version))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
