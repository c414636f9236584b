package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pfrederiksen/boulder-events/internal/event"
	"github.com/pfrederiksen/boulder-events/internal/pipeline"
)

// OutputFormat selects between human-readable and machine-readable output.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteSummary renders an aggregation run summary.
func WriteSummary(w io.Writer, summary *pipeline.Summary, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, summary)
	}

	fmt.Fprintf(w, "Run %s\n\n", summary.RunID)

	nameWidth := runewidth.StringWidth("Source")
	for _, src := range summary.Sources {
		if w := runewidth.StringWidth(src.Name); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Fprintf(w, "%s  %9s  %6s  %7s  %10s\n",
		runewidth.FillRight("Source", nameWidth), "Extracted", "Added", "Invalid", "Duplicates")
	for _, src := range summary.Sources {
		status := ""
		if src.Failed {
			status = "  (failed)"
		}
		fmt.Fprintf(w, "%s  %9d  %6d  %7d  %10d%s\n",
			runewidth.FillRight(src.Name, nameWidth),
			src.Extracted, src.Added, src.Invalid, src.Duplicates, status)
	}

	fmt.Fprintf(w, "\nNew events:     %d\n", summary.NewEvents)
	fmt.Fprintf(w, "Duplicates:     %d\n", summary.Duplicates)
	fmt.Fprintf(w, "Invalid:        %d\n", summary.Invalid)
	fmt.Fprintf(w, "Unparsed dates: %d\n", summary.UnparsedDates)
	if summary.PastSkipped > 0 {
		fmt.Fprintf(w, "Past skipped:   %d\n", summary.PastSkipped)
	}
	fmt.Fprintf(w, "Dataset total:  %d\n", summary.TotalEvents)
	return nil
}

// WriteEvents renders an event list. Verbose text output adds tags and
// links below each entry.
func WriteEvents(w io.Writer, events []*event.Event, format OutputFormat, verbose bool) error {
	if format == FormatJSON {
		return writeJSON(w, events)
	}

	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	dateWidth := 0
	for _, evt := range events {
		if w := runewidth.StringWidth(displayWhen(evt)); w > dateWidth {
			dateWidth = w
		}
	}

	for _, evt := range events {
		fmt.Fprintf(w, "%s  %s", runewidth.FillRight(displayWhen(evt), dateWidth), evt.Title)
		if evt.Venue != "" {
			fmt.Fprintf(w, " @ %s", evt.Venue)
		}
		if evt.Time != "" {
			fmt.Fprintf(w, " (%s)", evt.Time)
		}
		fmt.Fprintln(w)

		if verbose {
			if tags := append(append([]string{}, evt.VenueTypeTags...), evt.EventTypeTags...); len(tags) > 0 {
				fmt.Fprintf(w, "%s  tags: %s\n", strings.Repeat(" ", dateWidth), strings.Join(tags, ", "))
			}
			if evt.Link != "" {
				fmt.Fprintf(w, "%s  %s\n", strings.Repeat(" ", dateWidth), evt.Link)
			}
		}
	}

	fmt.Fprintf(w, "\n%d event(s)\n", len(events))
	return nil
}

// displayWhen is the leading column for an event row: the fixed date when
// one exists, the recurrence text otherwise.
func displayWhen(evt *event.Event) string {
	if evt.HasFixedDate() {
		return evt.NormalizedDate
	}
	if evt.Recurring != "" {
		return evt.Recurring
	}
	return "TBD"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
