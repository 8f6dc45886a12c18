package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2extndd/MRS-sub002/internal/cli"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Force an immediate search-and-ingest cycle",
		Long: `Trigger the backend's search cycle now instead of waiting for its
schedule, and report how many new items it found.`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	newItems, err := client.ForceScan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	cli.PrintSuccess("Scan complete: %d new items", newItems)
	return nil
}
