package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/2extndd/MRS-sub002/internal/cli"
	"github.com/2extndd/MRS-sub002/internal/format"
)

var queriesFormat string

// NewQueriesCommand creates the queries command and its subcommands
func NewQueriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queries",
		Short: "Manage saved search queries",
		Long: `List saved searches, or toggle and delete them by id.

Examples:
  # List saved queries
  mrs queries

  # Disable or re-enable query 3
  mrs queries toggle 3

  # Delete query 3 (prompts for confirmation)
  mrs queries delete 3`,
		Args: cobra.NoArgs,
		RunE: runQueriesList,
	}

	cmd.Flags().StringVar(&queriesFormat, "format", "text", "Output format (text, json, yaml)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Toggle a saved query on or off",
			Args:  cobra.ExactArgs(1),
			RunE:  runQueriesToggle,
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a saved query",
			Args:  cobra.ExactArgs(1),
			RunE:  runQueriesDelete,
		},
	)

	return cmd
}

func runQueriesList(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	queries, err := client.Queries(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch queries: %w", err)
	}

	if queriesFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, queriesFormat, queries)
	}

	if len(queries) == 0 {
		cli.PrintInfo("No saved queries")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("ID", "NAME", "ENABLED", "ITEMS", "URL")
	for _, q := range queries {
		enabled := "no"
		if q.Enabled {
			enabled = "yes"
		}
		table.Row(
			strconv.FormatInt(q.ID, 10),
			q.Name,
			enabled,
			format.Count(q.ItemCount),
			q.URL,
		)
	}
	table.Flush()
	return nil
}

func parseQueryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid query id %q", arg)
	}
	return id, nil
}

func runQueriesToggle(cmd *cobra.Command, args []string) error {
	id, err := parseQueryID(args[0])
	if err != nil {
		return err
	}
	client, _, err := newClient()
	if err != nil {
		return err
	}

	if err := client.ToggleQuery(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to toggle query %d: %w", id, err)
	}
	cli.PrintSuccess("Query %d toggled", id)
	return nil
}

func runQueriesDelete(cmd *cobra.Command, args []string) error {
	id, err := parseQueryID(args[0])
	if err != nil {
		return err
	}

	confirmed, err := cli.Confirm(fmt.Sprintf("Delete query %d?", id), false)
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

	if err := client.DeleteQuery(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete query %d: %w", id, err)
	}
	cli.PrintSuccess("Query %d deleted", id)
	return nil
}
