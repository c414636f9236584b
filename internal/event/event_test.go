package event

import (
	"testing"
)

func TestIdentityKey(t *testing.T) {
	tests := []struct {
		name     string
		a        *Event
		b        *Event
		wantSame bool
	}{
		{
			name:     "same title venue and date collide",
			a:        &Event{Title: "Jazz Night", Venue: "Velvet Elk Lounge", NormalizedDate: "2024-06-15"},
			b:        &Event{Title: "Jazz Night", Venue: "Velvet Elk Lounge", NormalizedDate: "2024-06-15"},
			wantSame: true,
		},
		{
			name:     "case and whitespace are normalized",
			a:        &Event{Title: "Jazz Night", Venue: "Velvet Elk Lounge", NormalizedDate: "2024-06-15"},
			b:        &Event{Title: "  JAZZ NIGHT ", Venue: "velvet elk lounge", NormalizedDate: "2024-06-15"},
			wantSame: true,
		},
		{
			name:     "different date means different event",
			a:        &Event{Title: "Jazz Night", Venue: "Velvet Elk Lounge", NormalizedDate: "2024-06-15"},
			b:        &Event{Title: "Jazz Night", Venue: "Velvet Elk Lounge", NormalizedDate: "2024-06-22"},
			wantSame: false,
		},
		{
			name:     "recurring events distinguished by recurrence text",
			a:        &Event{Title: "Trivia", Venue: "License No 1", Recurring: "Every Thursday"},
			b:        &Event{Title: "Trivia", Venue: "License No 1", Recurring: "Every Monday"},
			wantSame: false,
		},
		{
			name:     "recurring events distinguished by time",
			a:        &Event{Title: "Open Mic", Venue: "Trident Booksellers & Cafe", Time: "7:00 PM"},
			b:        &Event{Title: "Open Mic", Venue: "Trident Booksellers & Cafe", Time: "9:00 PM"},
			wantSame: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			same := tt.a.IdentityKey() == tt.b.IdentityKey()
			if same != tt.wantSame {
				t.Errorf("IdentityKey() collision = %v, want %v (%q vs %q)",
					same, tt.wantSame, tt.a.IdentityKey(), tt.b.IdentityKey())
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	key := (&Event{Title: "Jazz Night", Venue: "Velvet Elk Lounge", NormalizedDate: "2024-06-15"}).IdentityKey()

	id1 := GenerateID(key)
	id2 := GenerateID(key)

	if id1 != id2 {
		t.Errorf("GenerateID should be deterministic, got different IDs: %s vs %s", id1, id2)
	}

	if id1 == "" {
		t.Error("GenerateID should not return empty string")
	}

	if len(id1) != 40 { // SHA1 produces 40 hex characters
		t.Errorf("expected ID length of 40, got %d", len(id1))
	}
}

func TestNormalizeTagSet(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected []string
	}{
		{
			name:     "duplicates collapse",
			tags:     []string{"Music", "Live Music", "Music"},
			expected: []string{"Live Music", "Music"},
		},
		{
			name:     "output is sorted",
			tags:     []string{"Nightlife", "Bar", "Music"},
			expected: []string{"Bar", "Music", "Nightlife"},
		},
		{
			name:     "blank entries dropped",
			tags:     []string{"", "Music", "  "},
			expected: []string{"Music"},
		},
		{
			name:     "nil input yields empty set",
			tags:     nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTagSet(tt.tags)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("got %v, want %v", got, tt.expected)
					break
				}
			}
		})
	}
}
