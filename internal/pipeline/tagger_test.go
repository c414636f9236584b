package pipeline

import (
	"testing"

	"github.com/pfrederiksen/boulder-events/internal/config"
	"github.com/pfrederiksen/boulder-events/internal/event"
	"github.com/pfrederiksen/boulder-events/internal/source"
)

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

func TestTagVenueTable(t *testing.T) {
	tagger := NewTagger(config.Default())

	evt := &event.Event{
		Title:    "Hazel Miller Band: Live Music on the Plaza",
		Venue:    "Bands on the Bricks",
		Location: "Niwot",
	}
	tagger.Tag(evt, &source.RawRecord{})

	if evt.VenueTag != "Bands on the Bricks" {
		t.Errorf("expected venue_tag to mirror venue, got %q", evt.VenueTag)
	}
	if evt.LocationTag != "Niwot" {
		t.Errorf("expected location_tag 'Niwot', got %q", evt.LocationTag)
	}
	if !hasTag(evt.VenueTypeTags, "Live Music") || !hasTag(evt.VenueTypeTags, "Free") {
		t.Errorf("expected configured venue type tags, got %v", evt.VenueTypeTags)
	}

	// "music" keyword also fires on the title; the set must not repeat tags
	seen := map[string]int{}
	for _, tag := range evt.EventTypeTags {
		seen[tag]++
		if seen[tag] > 1 {
			t.Errorf("duplicate tag %q in %v", tag, evt.EventTypeTags)
		}
	}
	if !hasTag(evt.EventTypeTags, "Music") {
		t.Errorf("expected 'Music' from keyword rule, got %v", evt.EventTypeTags)
	}
}

func TestTagUnrecognizedVenue(t *testing.T) {
	tagger := NewTagger(config.Default())

	evt := &event.Event{Title: "Pop-up Show", Venue: "Some New Spot", Location: "Erie"}
	tagger.Tag(evt, &source.RawRecord{})

	if len(evt.VenueTypeTags) != 0 {
		t.Errorf("expected empty venue type tags for unknown venue, got %v", evt.VenueTypeTags)
	}
	if evt.LocationTag != "Erie" {
		t.Errorf("expected location retained as given, got %q", evt.LocationTag)
	}
	if evt.VenueTypeTags == nil || evt.EventTypeTags == nil {
		t.Error("tag sets must be empty, not nil")
	}
}

func TestKeywordMatching(t *testing.T) {
	tagger := NewTagger(config.Default())

	tests := []struct {
		name    string
		evt     event.Event
		raw     source.RawRecord
		want    []string
		wantNot []string
	}{
		{
			name: "whole token match",
			evt:  event.Event{Title: "DJ Set with Rotating Guests", Venue: "Rosetta Hall"},
			want: []string{"Music"},
		},
		{
			name:    "no match inside larger word",
			evt:     event.Event{Title: "Adjacent Possibilities: a talk", Venue: "Junkyard Social Club"},
			wantNot: []string{"Music"},
		},
		{
			name: "multi-word keyword substring",
			evt:  event.Event{Title: "Family Fun Day", Venue: "300 Suns Brewing"},
			want: []string{"Family Friendly"},
		},
		{
			name: "case insensitive",
			evt:  event.Event{Title: "TRIVIA NIGHT", Venue: "License No 1"},
			want: []string{"Trivia"},
		},
		{
			name: "category field matches",
			evt:  event.Event{Title: "Thursday Showcase", Venue: "Roots Music Project"},
			raw:  source.RawRecord{Category: "Live Music & Community"},
			want: []string{"Music", "Community"},
		},
		{
			name: "categories list matches",
			evt:  event.Event{Title: "Open Studio", Venue: "Junkyard Social Club"},
			raw:  source.RawRecord{Categories: source.StringList{"Dance", "Educational"}},
			want: []string{"Music", "Educational"},
		},
		{
			name: "explicit source tags unioned",
			evt:  event.Event{Title: "Quiet Reading Hour", Venue: "Trident Booksellers & Cafe"},
			raw:  source.RawRecord{EventTypeTags: source.StringList{"Books & Literary"}},
			want: []string{"Books & Literary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := tt.evt
			tagger.Tag(&evt, &tt.raw)
			for _, want := range tt.want {
				if !hasTag(evt.EventTypeTags, want) {
					t.Errorf("expected tag %q, got %v", want, evt.EventTypeTags)
				}
			}
			for _, not := range tt.wantNot {
				if hasTag(evt.EventTypeTags, not) {
					t.Errorf("did not expect tag %q, got %v", not, evt.EventTypeTags)
				}
			}
		})
	}
}

func TestAgeRestrictionTags(t *testing.T) {
	tagger := NewTagger(config.Default())

	tests := []struct {
		age  string
		want string
	}{
		{"All Ages", "All Ages"},
		{"Family Friendly", "All Ages"},
		{"21+", "21+"},
		{"18+ after 9pm", "21+"},
	}

	for _, tt := range tests {
		t.Run(tt.age, func(t *testing.T) {
			evt := event.Event{Title: "Quiet Show", Venue: "Some Spot", AgeRestriction: tt.age}
			tagger.Tag(&evt, &source.RawRecord{})
			if !hasTag(evt.EventTypeTags, tt.want) {
				t.Errorf("age %q: expected tag %q, got %v", tt.age, tt.want, evt.EventTypeTags)
			}
		})
	}
}
