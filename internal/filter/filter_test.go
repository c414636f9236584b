package filter

import (
	"testing"
	"time"

	"github.com/pfrederiksen/boulder-events/internal/event"
)

func sampleEvents() []*event.Event {
	return []*event.Event{
		{
			Title:          "The Sweet Lillies",
			Venue:          "Velvet Elk Lounge",
			Location:       "Boulder",
			NormalizedDate: "2024-06-15",
			Description:    "Americana string band",
			VenueTypeTags:  []string{"Bar", "Live Music", "Music", "Nightlife"},
			EventTypeTags:  []string{"Music"},
		},
		{
			Title:          "Hazel Miller Band",
			Venue:          "Bands on the Bricks",
			Location:       "Niwot",
			NormalizedDate: "2024-07-10",
			VenueTypeTags:  []string{"All Ages", "Free", "Live Music"},
			EventTypeTags:  []string{"Music"},
		},
		{
			Title:         "Trivia Night",
			Venue:         "License No 1",
			Location:      "Boulder",
			Recurring:     "Every Thursday",
			VenueTypeTags: []string{"21+", "Bar", "Nightlife"},
			EventTypeTags: []string{"Trivia"},
		},
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	f := &Filter{}
	events := sampleEvents()

	if !f.IsEmpty() {
		t.Error("expected zero filter to be empty")
	}
	if got := f.Apply(events); len(got) != len(events) {
		t.Errorf("empty filter should pass all events, got %d of %d", len(got), len(events))
	}
}

func TestFilterCriteria(t *testing.T) {
	from := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.July, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name       string
		filter     Filter
		wantTitles []string
	}{
		{
			name:       "venue substring",
			filter:     Filter{Venues: []string{"velvet"}},
			wantTitles: []string{"The Sweet Lillies"},
		},
		{
			name:       "location",
			filter:     Filter{Locations: []string{"Niwot"}},
			wantTitles: []string{"Hazel Miller Band"},
		},
		{
			name:       "tag matches either vocabulary",
			filter:     Filter{Tags: []string{"trivia"}},
			wantTitles: []string{"Trivia Night"},
		},
		{
			name:       "venue type tag",
			filter:     Filter{Tags: []string{"Free"}},
			wantTitles: []string{"Hazel Miller Band"},
		},
		{
			name:       "free text over description",
			filter:     Filter{Text: "americana"},
			wantTitles: []string{"The Sweet Lillies"},
		},
		{
			name:       "date range excludes dateless",
			filter:     Filter{DateFrom: &from, DateTo: &to},
			wantTitles: []string{"Hazel Miller Band"},
		},
		{
			name:       "recurring only",
			filter:     Filter{RecurringOnly: true},
			wantTitles: []string{"Trivia Night"},
		},
		{
			name:       "criteria combine with AND",
			filter:     Filter{Locations: []string{"Boulder"}, Tags: []string{"Music"}},
			wantTitles: []string{"The Sweet Lillies"},
		},
		{
			name:       "no match",
			filter:     Filter{Venues: []string{"Red Rocks"}},
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sampleEvents())
			if len(got) != len(tt.wantTitles) {
				t.Fatalf("expected %d events, got %d", len(tt.wantTitles), len(got))
			}
			for i, want := range tt.wantTitles {
				if got[i].Title != want {
					t.Errorf("position %d: expected %q, got %q", i, want, got[i].Title)
				}
			}
		})
	}
}

func TestFilterString(t *testing.T) {
	f := &Filter{}
	if f.String() != "No active filters" {
		t.Errorf("expected empty description, got %q", f.String())
	}

	f = &Filter{Venues: []string{"Velvet Elk Lounge"}, RecurringOnly: true}
	s := f.String()
	if s == "" || s == "No active filters" {
		t.Errorf("expected active criteria description, got %q", s)
	}
}
