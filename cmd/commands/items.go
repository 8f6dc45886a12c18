package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2extndd/MRS-sub002/internal/cli"
	"github.com/2extndd/MRS-sub002/internal/format"
	"github.com/2extndd/MRS-sub002/internal/poller"
)

var itemsFormat string

// NewItemsCommand creates the items command
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List recently discovered items",
		Long:  `Fetch the most recently discovered listings, capped at 30.`,
		Args:  cobra.NoArgs,
		RunE:  runItems,
	}

	cmd.Flags().StringVar(&itemsFormat, "format", "text", "Output format (text, json, yaml)")

	return cmd
}

func runItems(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	items, err := client.RecentItems(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch recent items: %w", err)
	}
	if len(items) > poller.MaxItems {
		items = items[:poller.MaxItems]
	}

	if itemsFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, itemsFormat, items)
	}

	if len(items) == 0 {
		cli.PrintInfo("No items yet")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("TITLE", "PRICE", "SEARCH")
	for _, item := range items {
		search := item.SearchName
		if search == "" {
			search = "-"
		}
		table.Row(
			format.TruncateTitle(item.Title),
			format.PriceIn(item.Price, cfg.Currency),
			search,
		)
	}
	table.Flush()
	return nil
}
