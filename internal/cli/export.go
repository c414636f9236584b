package cli

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/boulder-events/internal/calendar"
	"github.com/spf13/cobra"
)

var flagExportOutput string

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export dated events as an iCalendar file",
		RunE:  runExport,
	}

	cmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write the calendar to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}

	ds, err := store.Load()
	if err != nil {
		return err
	}

	ics := calendar.Generate(ds.Events)

	if flagExportOutput == "" {
		fmt.Print(ics)
		return nil
	}

	if err := os.WriteFile(flagExportOutput, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}
	fmt.Printf("Wrote %s\n", flagExportOutput)
	return nil
}
