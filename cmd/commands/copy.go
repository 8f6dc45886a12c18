package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/2extndd/MRS-sub002/internal/cli"
	"github.com/2extndd/MRS-sub002/internal/format"
	"github.com/2extndd/MRS-sub002/internal/poller"
)

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [stats|items]",
		Short: "Copy a stats or item summary to the clipboard",
		Long: `Copy a plain-text summary to the system clipboard, ready to paste.

Examples:
  # Copy the stats summary (default)
  mrs copy

  # Copy the recent item list
  mrs copy items`,
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"clip"},
		RunE:    runCopy,
	}
}

func runCopy(cmd *cobra.Command, args []string) error {
	what := "stats"
	if len(args) == 1 {
		what = args[0]
	}

	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	var content string
	switch what {
	case "stats":
		stats, err := client.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}
		content = fmt.Sprintf(
			"MRS stats: %s items, %s active searches, %s API requests, uptime %s",
			format.Count(stats.Database.TotalItems),
			format.Count(stats.Database.ActiveSearches),
			format.Count(stats.TotalAPIRequests),
			stats.UptimeFormatted,
		)

	case "items":
		items, err := client.RecentItems(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch recent items: %w", err)
		}
		if len(items) > poller.MaxItems {
			items = items[:poller.MaxItems]
		}
		var lines []string
		for _, item := range items {
			lines = append(lines, fmt.Sprintf("%s - %s",
				format.TruncateTitle(item.Title),
				format.PriceIn(item.Price, cfg.Currency)))
		}
		content = strings.Join(lines, "\n")

	default:
		return fmt.Errorf("unknown copy target %q (must be stats or items)", what)
	}

	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	cli.PrintSuccess("Copied %s to clipboard", what)
	return nil
}
