package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/salidas/internal/outing"
)

func newClearCommand(ctx context.Context, env *Env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every outing and reset the budget.",
		Args:  cobra.NoArgs,
		// clear is the way out of stored outings that cannot be restored.
		Annotations: map[string]string{recoversAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.Log == nil {
				return clearUnrestored(ctx, cmd, env, yes)
			}

			count := env.Log.Len()
			if !yes {
				ok, err := env.Confirm(fmt.Sprintf("Borrar %d salida%s registrada%s?", count, plural(count), plural(count)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Clear cancelled.")
					return nil
				}
			}

			if err := env.Log.Clear(ctx); err != nil {
				return err
			}
			env.Logger.Info("outings cleared", zap.Int("records", count))

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d outing%s.\n", count, plural(count))
			printSummary(cmd, env.Log.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// clearUnrestored removes a stored value the log could not be built from and
// starts an empty log over the same adapter.
func clearUnrestored(ctx context.Context, cmd *cobra.Command, env *Env, yes bool) error {
	if !yes {
		ok, err := env.Confirm("Las salidas guardadas no se pueden leer. Borrarlas?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Clear cancelled.")
			return nil
		}
	}

	if err := env.Adapter.Remove(ctx); err != nil {
		return err
	}
	log, err := outing.NewLog(env.Adapter, nil)
	if err != nil {
		return err
	}
	env.Log = log
	env.restoreErr = nil
	env.Logger.Info("unreadable outings removed")

	fmt.Fprintln(cmd.OutOrStdout(), "Cleared unreadable stored outings.")
	printSummary(cmd, env.Log.Summary())
	return nil
}
