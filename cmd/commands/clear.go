package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2extndd/MRS-sub002/internal/cli"
)

// NewClearCommand creates the clear command
func NewClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored item",
		Long: `Delete all discovered items from the backend. Saved queries are kept.
Prompts twice before doing anything; --yes skips both prompts.`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}
}

func runClear(cmd *cobra.Command, args []string) error {
	confirmed, err := cli.Confirm("Clear ALL stored items? Every discovered item will be deleted", false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Aborted")
		return nil
	}

	confirmed, err = cli.Confirm("Last warning: really delete everything?", false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Aborted")
		return nil
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	message, err := client.ClearAllItems(cmd.Context())
	if err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}
	if message == "" {
		message = "All items cleared"
	}
	cli.PrintSuccess("%s", message)
	return nil
}
