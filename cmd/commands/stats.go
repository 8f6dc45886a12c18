package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2extndd/MRS-sub002/internal/cli"
	"github.com/2extndd/MRS-sub002/internal/format"
)

var statsFormat string

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the backend stats snapshot",
		Long: `Fetch the current stats snapshot from the backend: stored item count,
active searches, total API requests and uptime.`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	cmd.Flags().StringVar(&statsFormat, "format", "text", "Output format (text, json, yaml)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	stats, err := client.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %w", err)
	}

	if statsFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, statsFormat, stats)
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("METRIC", "VALUE")
	table.Row("Total items", format.Count(stats.Database.TotalItems))
	table.Row("Active searches", format.Count(stats.Database.ActiveSearches))
	table.Row("API requests", format.Count(stats.TotalAPIRequests))
	table.Row("Uptime", stats.UptimeFormatted)
	table.Row("As of", format.Date(stats.Timestamp))
	table.Flush()
	return nil
}
