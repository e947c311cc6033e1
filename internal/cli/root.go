package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/salidas/internal/files"
	"github.com/faizmokh/salidas/internal/ui"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
// env is populated from the data directory before any subcommand runs unless
// the caller already filled it in.
func NewRootCommand(ctx context.Context, manager *files.Manager, env *Env) *cobra.Command {
	var (
		storeFlag string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "salidas",
		Short: "Log personal outings against a 12-hour daily budget.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if env.Log != nil {
				env.fillDefaults()
				return nil
			}
			if err := env.open(ctx, manager, storeFlag, verbose); err != nil {
				return err
			}
			return env.checkRestored(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return env.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, ui.Deps{
				Log:     env.Log,
				Adapter: env.Adapter,
				Sink:    env.Sink,
				Logger:  env.Logger,
				Now:     env.Now,
			})
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Store backend: file or sqlite (default: config.yaml, then file)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug entries to salidas.log")

	cmd.AddCommand(
		newAddCommand(ctx, env),
		newListCommand(ctx, env),
		newSummaryCommand(ctx, env),
		newExportCommand(ctx, env),
		newClearCommand(ctx, env),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	env := &Env{}
	defer env.Close()
	cmd := NewRootCommand(ctx, manager, env)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/salidas/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
