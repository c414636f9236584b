// Package filter provides criteria filtering over the canonical dataset.
//
// The `list` command uses it to answer questions like "what's on in Niwot
// this month" without touching the display page. Matching is case-insensitive;
// venue and location match as substrings, tags match exactly against both
// tag vocabularies, and free text searches title, venue, and description.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/boulder-events/internal/event"
)

// Filter represents event filtering criteria. A zero filter matches all events.
type Filter struct {
	// Date range over normalized dates, inclusive.
	DateFrom *time.Time
	DateTo   *time.Time

	// Venue and location matching (case-insensitive substring).
	Venues    []string
	Locations []string

	// Tags match exactly (case-insensitive) against venue type and event
	// type tags.
	Tags []string

	// Text searches title, venue, and description.
	Text string

	// RecurringOnly keeps only events without a fixed date.
	RecurringOnly bool
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Venues) == 0 &&
		len(f.Locations) == 0 &&
		len(f.Tags) == 0 &&
		f.Text == "" &&
		!f.RecurringOnly
}

// Matches checks whether an event passes all active criteria.
func (f *Filter) Matches(evt *event.Event) bool {
	if f.IsEmpty() {
		return true
	}

	if f.RecurringOnly && evt.HasFixedDate() {
		return false
	}

	if f.DateFrom != nil || f.DateTo != nil {
		// Date criteria exclude events without a fixed date
		if !evt.HasFixedDate() {
			return false
		}
		t, err := time.Parse(event.ISODate, evt.NormalizedDate)
		if err != nil {
			return false
		}
		if f.DateFrom != nil && t.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && t.After(*f.DateTo) {
			return false
		}
	}

	if len(f.Venues) > 0 && !containsAny(evt.Venue, f.Venues) {
		return false
	}

	if len(f.Locations) > 0 && !containsAny(evt.Location, f.Locations) {
		return false
	}

	if len(f.Tags) > 0 {
		matched := false
		for _, want := range f.Tags {
			if hasTagFold(evt.VenueTypeTags, want) || hasTagFold(evt.EventTypeTags, want) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		haystack := strings.ToLower(evt.Title + " " + evt.Venue + " " + evt.Description)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	return true
}

// Apply returns the events matching the filter. An empty filter returns the
// input unchanged.
func (f *Filter) Apply(events []*event.Event) []*event.Event {
	if f.IsEmpty() {
		return events
	}

	var filtered []*event.Event
	for _, evt := range events {
		if f.Matches(evt) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

// String returns a human-readable description of the active criteria.
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}
	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}
	if len(f.Venues) > 0 {
		parts = append(parts, fmt.Sprintf("Venues: %s", strings.Join(f.Venues, ", ")))
	}
	if len(f.Locations) > 0 {
		parts = append(parts, fmt.Sprintf("Locations: %s", strings.Join(f.Locations, ", ")))
	}
	if len(f.Tags) > 0 {
		parts = append(parts, fmt.Sprintf("Tags: %s", strings.Join(f.Tags, ", ")))
	}
	if f.Text != "" {
		parts = append(parts, fmt.Sprintf("Text: %q", f.Text))
	}
	if f.RecurringOnly {
		parts = append(parts, "Recurring only")
	}
	return strings.Join(parts, " | ")
}

// containsAny reports whether value contains any of the needles,
// case-insensitively
func containsAny(value string, needles []string) bool {
	lower := strings.ToLower(value)
	for _, needle := range needles {
		if strings.Contains(lower, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

func hasTagFold(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}
