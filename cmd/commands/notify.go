package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2extndd/MRS-sub002/internal/cli"
)

// NewNotifyCommand creates the notify command
func NewNotifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Send a test notification",
		Args:  cobra.NoArgs,
		RunE:  runNotify,
	}
}

func runNotify(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	if err := client.TestNotification(cmd.Context()); err != nil {
		return fmt.Errorf("notification failed: %w", err)
	}
	cli.PrintSuccess("Test notification sent")
	return nil
}
