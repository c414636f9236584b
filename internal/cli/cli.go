package cli

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/boulder-events/internal/config"
	"github.com/pfrederiksen/boulder-events/internal/logger"
	"github.com/pfrederiksen/boulder-events/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNewEvents = 2
)

var (
	flagConfig  string
	flagDataset string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boulder-events",
		Short: "Aggregate Boulder-area event listings into one dataset",
		Long: `Aggregates event records scraped from venue websites and spreadsheets
into a single canonical JSON dataset: normalized dates, venue and event type
tags, and duplicates collapsed across sources and runs.`,
		SilenceUsage: true,
		// Configure the shared default logger before any subcommand runs,
		// so package-level logging respects --verbose everywhere.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			newLogger()
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (built-in Boulder tables used when omitted)")
	cmd.PersistentFlags().StringVar(&flagDataset, "dataset", "all_boulder_events.json", "Path to the canonical dataset file")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newAggregateCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newTagsCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newPruneCmd())

	return cmd
}

// loadConfig resolves the runtime configuration: the --config file when
// given, the built-in Boulder tables otherwise.
func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	logger.Debug("no config file given, using built-in tables", nil)
	return config.Default(), nil
}

// openStorage opens the canonical dataset location.
func openStorage() (*storage.Storage, error) {
	return storage.New(flagDataset)
}

// newLogger builds the run logger from the verbosity flag and installs it
// as the package default. Logs go to stderr so stdout stays clean for
// command output.
func newLogger() *logger.Logger {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	l := logger.New(level, os.Stderr)
	logger.SetDefault(l)
	return l
}

// outputFormat validates the --format flag
func outputFormat() (OutputFormat, error) {
	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// Execute runs the CLI. Cobra prints the human-readable error line; the
// structured entry is for log collectors watching cron runs.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error("command failed", nil, err)
		os.Exit(ExitError)
	}
}
