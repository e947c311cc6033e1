package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/salidas/internal/outing"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func resolveDate(now time.Time, dateFlag string) (string, error) {
	if dateFlag == "" {
		return now.Format(dateLayout), nil
	}

	parsed, err := time.ParseInLocation(dateLayout, dateFlag, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse date: %w", err)
	}
	return parsed.Format(dateLayout), nil
}

func resolveClock(now time.Time, clockFlag string) (string, error) {
	if clockFlag == "" {
		return now.Format(clockLayout), nil
	}

	if _, err := outing.ParseClock(clockFlag); err != nil {
		return "", err
	}
	return strings.TrimSpace(clockFlag), nil
}

func validateDate(s string) error {
	if _, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := outing.ParseClock(s); err != nil {
		return fmt.Errorf("use HH:MM (24-hour)")
	}
	return nil
}

func formatRecord(r outing.Record) string {
	return outing.FormatLine(r)
}

func printSummary(cmd *cobra.Command, summary outing.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, summary.UsedLine())
	fmt.Fprintln(out, summary.RemainingLine())
}

func printRecords(cmd *cobra.Command, records []outing.Record) {
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No outings recorded.")
		return
	}
	for i, r := range records {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatRecord(r))
	}
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
