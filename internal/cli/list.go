package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/salidas/internal/outing"
)

func newListCommand(ctx context.Context, env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show every recorded outing and the time budget.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printRecords(cmd, env.Log.Records())
			fmt.Fprintln(cmd.OutOrStdout())
			printSummary(cmd, env.Log.Summary())
			return nil
		},
	}

	return cmd
}

type splitDTO struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type summaryDTO struct {
	Records          int      `json:"records"`
	TotalMinutes     int      `json:"total_minutes"`
	UsedMinutes      int      `json:"used_minutes"`
	RemainingMinutes int      `json:"remaining_minutes"`
	Used             splitDTO `json:"used"`
	Remaining        splitDTO `json:"remaining"`
}

func newSummaryDTO(count int, s outing.Summary) summaryDTO {
	uh, um := s.UsedSplit()
	rh, rm := s.RemainingSplit()
	return summaryDTO{
		Records:          count,
		TotalMinutes:     s.Total,
		UsedMinutes:      s.Used,
		RemainingMinutes: s.Remaining,
		Used:             splitDTO{Hours: uh, Minutes: um},
		Remaining:        splitDTO{Hours: rh, Minutes: rm},
	}
}

func newSummaryCommand(ctx context.Context, env *Env) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show used and remaining time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := env.Log.Summary()
			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(newSummaryDTO(env.Log.Len(), summary))
			}
			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the summary as a JSON object")

	return cmd
}
