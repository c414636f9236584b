package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Show the tag vocabulary of the current dataset",
		RunE:  runTags,
	}
}

func runTags(cmd *cobra.Command, args []string) error {
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

	if format == FormatJSON {
		return writeJSON(os.Stdout, ds.Tags)
	}

	printGroup := func(label string, values []string) {
		fmt.Printf("%s (%d)\n", label, len(values))
		for _, v := range values {
			fmt.Printf("  %s\n", v)
		}
		fmt.Println()
	}

	printGroup("Venues", ds.Tags.Venues)
	printGroup("Locations", ds.Tags.Locations)
	printGroup("Venue types", ds.Tags.VenueTypes)
	printGroup("Event types", ds.Tags.EventTypes)
	return nil
}
