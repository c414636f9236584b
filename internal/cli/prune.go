package cli

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/boulder-events/internal/event"
	"github.com/pfrederiksen/boulder-events/internal/logger"
	"github.com/spf13/cobra"
)

var flagPruneDryRun bool

func newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove events dated before today from the dataset",
		Long: `Removes events whose date has passed. Recurring and dateless events are
always kept. Nothing is pruned automatically during aggregation; this is the
manual curation step.`,
		RunE: runPrune,
	}

	cmd.Flags().BoolVar(&flagPruneDryRun, "dry-run", false, "Report what would be removed without writing")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, using UTC", logger.Fields{"timezone": cfg.Timezone})
		loc = time.UTC
	}

	store, err := openStorage()
	if err != nil {
		return err
	}

	ds, err := store.Load()
	if err != nil {
		return err
	}

	kept := make([]*event.Event, 0, len(ds.Events))
	pruned := 0
	for _, evt := range ds.Events {
		if evt.IsPast(loc) {
			pruned++
			continue
		}
		kept = append(kept, evt)
	}

	if pruned == 0 {
		fmt.Println("Nothing to prune.")
		return nil
	}

	if flagPruneDryRun {
		fmt.Printf("Would prune %d past event(s), keeping %d.\n", pruned, len(kept))
		return nil
	}

	ds.Events = kept
	if err := store.Save(ds); err != nil {
		return err
	}

	logger.Info("pruned past events", logger.Fields{"removed": pruned, "remaining": len(kept)})
	fmt.Printf("Pruned %d past event(s), %d remain.\n", pruned, len(kept))
	return nil
}
