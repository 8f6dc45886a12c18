package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2extndd/MRS-sub002/internal/cli"
)

// NewTestCommand creates the test command
func NewTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test <url>",
		Short: "Validate and trial-run a search URL",
		Long: `Ask the backend to validate a search URL and run it once, reporting how
many items it finds and a few sample titles.`,
		Args: cobra.ExactArgs(1),
		RunE: runTest,
	}
}

func runTest(cmd *cobra.Command, args []string) error {
	url := strings.TrimSpace(args[0])
	if url == "" {
		cli.PrintWarning("Enter a search URL to test")
		return nil
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.TestSearch(cmd.Context(), url)
	if err != nil {
		return fmt.Errorf("test failed: %w", err)
	}

	// test_error is reported regardless of validity.
	if result.TestError != "" {
		cli.PrintWarning("Test warning: %s", result.TestError)
	}

	if !result.Valid {
		text := result.Error
		if text == "" {
			text = "invalid search URL"
		}
		return fmt.Errorf("%s", text)
	}

	var found int64
	var samples []string
	if result.TestResults != nil {
		found = result.TestResults.ItemsFound
		samples = result.TestResults.SampleTitles
	}
	cli.PrintSuccess("URL is valid: %d items found", found)
	if len(samples) > 0 {
		cli.PrintInfo("Sample titles: %s", strings.Join(samples, ", "))
	}
	return nil
}
