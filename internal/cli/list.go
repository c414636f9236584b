package cli

import (
	"os"

	"github.com/pfrederiksen/boulder-events/internal/filter"
	"github.com/spf13/cobra"
)

var (
	flagListVenues    []string
	flagListLocations []string
	flagListTags      []string
	flagListSearch    string
	flagListDates     string
	flagListRecurring bool
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events from the dataset, optionally filtered",
		RunE:  runList,
	}

	cmd.Flags().StringSliceVar(&flagListVenues, "venue", nil, "Filter by venue (substring, repeatable)")
	cmd.Flags().StringSliceVar(&flagListLocations, "location", nil, "Filter by location (substring, repeatable)")
	cmd.Flags().StringSliceVar(&flagListTags, "tag", nil, "Filter by venue or event type tag (repeatable)")
	cmd.Flags().StringVar(&flagListSearch, "search", "", "Free-text search over title, venue, description")
	cmd.Flags().StringVar(&flagListDates, "dates", "", "Date range, e.g. 'Jun 1-15', 'June 20 - July 4', or 'June'")
	cmd.Flags().BoolVar(&flagListRecurring, "recurring", false, "Only recurring events without a fixed date")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	store, err := openStorage()
	if err != nil {
		return err
	}

	ds, err := store.Load()
	if err != nil {
		return err
	}

	f := &filter.Filter{
		Venues:        flagListVenues,
		Locations:     flagListLocations,
		Tags:          flagListTags,
		Text:          flagListSearch,
		RecurringOnly: flagListRecurring,
	}
	if flagListDates != "" {
		from, to, err := filter.ParseDateRange(flagListDates)
		if err != nil {
			return err
		}
		f.DateFrom = from
		f.DateTo = to
	}

	return WriteEvents(os.Stdout, f.Apply(ds.Events), format, flagVerbose)
}
