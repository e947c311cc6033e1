package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/salidas/internal/outing"
)

func newExportCommand(ctx context.Context, env *Env) *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the outing report to the clipboard.",
		Long:  "export renders one line per outing and copies the report to the system clipboard, or prints it with --stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := env.Log.Records()
			if toStdout {
				return env.Adapter.Export(ctx, records, outing.WriterSink{W: cmd.OutOrStdout()})
			}
			if err := env.Adapter.Export(ctx, records, env.Sink); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d outing%s to the clipboard.\n", len(records), plural(len(records)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the report instead of copying it")

	return cmd
}
