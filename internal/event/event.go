package event

import (
	"crypto/sha1"
	"fmt"
	"sort"
	"strings"
)

// Event is the canonical, persisted representation of a single listing.
// Field names match the aggregated dataset file consumed by the events page.
type Event struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Venue          string   `json:"venue"`
	Location       string   `json:"location,omitempty"`
	Date           string   `json:"date,omitempty"`
	Recurring      string   `json:"recurring,omitempty"`
	NormalizedDate string   `json:"normalized_date,omitempty"`
	Time           string   `json:"time,omitempty"`
	Description    string   `json:"description,omitempty"`
	Info           string   `json:"info,omitempty"`
	Link           string   `json:"link,omitempty"`
	Image          string   `json:"image,omitempty"`
	SourceURL      string   `json:"source_url,omitempty"`
	AgeRestriction string   `json:"age_restriction,omitempty"`
	VenueTag       string   `json:"venue_tag"`
	LocationTag    string   `json:"location_tag"`
	VenueTypeTags  []string `json:"venue_type_tags"`
	EventTypeTags  []string `json:"event_type_tags"`
}

// IdentityKey derives the duplicate-detection key for an event.
// Two records with the same title, venue, and normalized date are the same
// event. Events with no fixed date fall back to their recurrence and time
// text so that distinct recurring events at one venue don't collapse.
func (e *Event) IdentityKey() string {
	date := e.NormalizedDate
	if date == "" {
		date = "recurring|" + e.Recurring + "|" + e.Time
	}
	parts := []string{e.Title, e.Venue, date}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

// GenerateID creates a deterministic ID from an identity key
func GenerateID(identityKey string) string {
	h := sha1.New()
	h.Write([]byte(identityKey))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// HasFixedDate reports whether the event has a single sortable occurrence
func (e *Event) HasFixedDate() bool {
	return e.NormalizedDate != ""
}

// SetTags assigns the tag fields, deduplicating and sorting the type-tag
// sets so that persisted output is stable across runs.
func (e *Event) SetTags(venueTypeTags, eventTypeTags []string) {
	e.VenueTag = e.Venue
	e.LocationTag = e.Location
	e.VenueTypeTags = NormalizeTagSet(venueTypeTags)
	e.EventTypeTags = NormalizeTagSet(eventTypeTags)
}

// NormalizeTagSet deduplicates a tag list and returns it sorted.
// A nil or empty input yields an empty (non-nil) slice.
func NormalizeTagSet(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
