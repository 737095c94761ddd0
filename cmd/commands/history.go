package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/warmup"
)

var (
	historyLimit int
	historyClear bool
)

// HistoryResult is the structured output of the history command
type HistoryResult struct {
	Count   int             `json:"count" yaml:"count"`
	Records []warmup.Record `json:"records" yaml:"records"`
}

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed warm-ups",
		Long: `List the warm-ups finished in the TUI player, newest first.

Examples:
  baldog history
  baldog history --limit 5 -o json
  baldog history --clear`,
		Args:    cobra.NoArgs,
		PreRunE: requireDataDir,
		RunE:    runHistory,
	}

	cmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show at most this many warm-ups (0 for all)")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the warm-up history")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	if historyClear {
		ok, err := cli.Confirm("Delete the warm-up history?", false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			cli.PrintInfo("Clear cancelled")
			return nil
		}
		if err := cc.History.Clear(cmd.Context()); err != nil {
			return err
		}
		cli.PrintSuccess("Warm-up history cleared")
		return nil
	}

	records, err := cc.History.List(cmd.Context())
	if err != nil {
		return err
	}
	slices.Reverse(records)
	if historyLimit > 0 && len(records) > historyLimit {
		records = records[:historyLimit]
	}

	result := HistoryResult{Count: len(records), Records: records}
	format := outputFormat(cmd)
	if cli.IsStructured(format) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if result.Count == 0 {
		cli.PrintInfo("No warm-ups yet. Start one from an exercise in the TUI with 'w'.")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("COMPLETED", "INTENSITY", "EXERCISES", "TIME")
	for _, rec := range records {
		table.Row(
			rec.CompletedAt.Local().Format("2006-01-02 15:04"),
			rec.Intensity.Label(),
			fmt.Sprint(rec.Exercises),
			cli.FormatSeconds(rec.Seconds),
		)
	}
	table.Flush()
	return nil
}
