package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/salidas/internal/outing"
)

// addInput holds the raw field values of one outing, as typed.
type addInput struct {
	date      string
	departure string
	ret       string
	noReturn  bool
	reason    string
}

func (in addInput) record() outing.Record {
	ret := strings.TrimSpace(in.ret)
	if in.noReturn {
		ret = outing.NoReturn
	}
	return outing.Record{
		Date:      strings.TrimSpace(in.date),
		Departure: strings.TrimSpace(in.departure),
		Return:    ret,
		Reason:    strings.TrimSpace(in.reason),
	}
}

func newAddCommand(ctx context.Context, env *Env) *cobra.Command {
	var (
		in       addInput
		formFlag bool
	)

	cmd := &cobra.Command{
		Use:   "add [reason ...]",
		Short: "Record an outing.",
		Long: "add appends an outing to the log and prints the updated time budget. " +
			"The reason can be passed as arguments or with --reason. Use --form to fill the fields interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := env.Now()

			if len(args) > 0 {
				if in.reason != "" {
					return errors.New("reason given both as --reason and as arguments")
				}
				in.reason = strings.Join(args, " ")
			}

			if formFlag {
				if in.date == "" {
					in.date = now.Format(dateLayout)
				}
				if in.departure == "" {
					in.departure = now.Format(clockLayout)
				}
				if err := env.Form(&in); err != nil {
					return err
				}
			} else if in.ret == "" && !in.noReturn {
				return errors.New("either --return or --no-return is required")
			}

			date, err := resolveDate(now, in.date)
			if err != nil {
				return err
			}
			departure, err := resolveClock(now, in.departure)
			if err != nil {
				return err
			}
			in.date, in.departure = date, departure

			record := in.record()
			if err := env.Log.Append(ctx, record); err != nil {
				return err
			}
			env.Logger.Info("outing appended",
				zap.String("date", record.Date),
				zap.Bool("has_return", record.HasReturn()),
				zap.Int("used_minutes", env.Log.UsedMinutes()))

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatRecord(record))
			printSummary(cmd, env.Log.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&in.date, "date", "", "Date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&in.departure, "departure", "", "Departure time in HH:MM (default: current time)")
	cmd.Flags().StringVar(&in.ret, "return", "", "Return time in HH:MM")
	cmd.Flags().BoolVar(&in.noReturn, "no-return", false, "Record the outing without a return time")
	cmd.Flags().StringVar(&in.reason, "reason", "", "Reason for the outing")
	cmd.Flags().BoolVar(&formFlag, "form", false, "Fill the outing in an interactive form")
	cmd.MarkFlagsMutuallyExclusive("return", "no-return")

	return cmd
}
