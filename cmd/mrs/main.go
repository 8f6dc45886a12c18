package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/2extndd/MRS-sub002/cmd/commands"
	"github.com/2extndd/MRS-sub002/internal/api"
	"github.com/2extndd/MRS-sub002/internal/cli"
	"github.com/2extndd/MRS-sub002/internal/config"
	"github.com/2extndd/MRS-sub002/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quietFlag bool
	yesFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "mrs",
	Short: "Terminal dashboard for the MercariSearcher backend",
	Long: `MRS is a terminal dashboard for a MercariSearcher backend. It polls the
backend for stats and recently discovered items, and runs one-shot actions
(test a search URL, force a scan, manage saved queries) against it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, yesFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(commands.ConfigPath)
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logger.Sync()
		logger.Info("starting dashboard", zap.String("base_url", cfg.BaseURL))

		client := api.New(logger, cfg.BaseURL, cfg.Timeout)
		app := tui.NewApp(client, logger, cfg)

		p := tea.NewProgram(app, tea.WithAltScreen())
		app.StartPolling(p.Send)
		defer app.StopPolling()

		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mrs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mrs version %s\n", version)
	},
}

// newLogger writes JSON log lines to path so log output never lands on the
// terminal the TUI is drawing on. An empty path disables logging.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&commands.ConfigPath, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(
		commands.NewStatsCommand(),
		commands.NewItemsCommand(),
		commands.NewQueriesCommand(),
		commands.NewTestCommand(),
		commands.NewScanCommand(),
		commands.NewNotifyCommand(),
		commands.NewClearCommand(),
		commands.NewCopyCommand(),
		versionCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
