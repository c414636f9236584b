package cli

import (
	"os"

	"github.com/pfrederiksen/boulder-events/internal/pipeline"
	"github.com/spf13/cobra"
)

var flagSkipPast bool

func newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Run the aggregation pipeline and update the dataset",
		Long: `Extracts raw records from every configured source, normalizes and tags
them, drops duplicates against the existing dataset, and writes the merged,
sorted result back. The dataset write is the run's only durable side effect.`,
		RunE: runAggregate,
	}

	cmd.Flags().BoolVar(&flagSkipPast, "skip-past", false, "Skip newly extracted events dated before today")

	return cmd
}

func runAggregate(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := openStorage()
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(cfg, store, newLogger())
	runner.SkipPast = flagSkipPast

	summary, err := runner.Run()
	if err != nil {
		return err
	}

	if err := WriteSummary(os.Stdout, summary, format); err != nil {
		return err
	}

	if summary.NewEvents > 0 {
		os.Exit(ExitNewEvents)
	}
	os.Exit(ExitSuccess)
	return nil
}
