package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/boulder-events/internal/event"
)

// Dataset is the canonical dataset file: every aggregated event plus the tag
// vocabulary summary the display page builds its filter controls from.
type Dataset struct {
	GeneratedAt string         `json:"generated_at"`
	TotalEvents int            `json:"total_events"`
	Tags        TagSummary     `json:"tags"`
	Events      []*event.Event `json:"events"`
}

// TagSummary lists the distinct tag values present in the dataset.
type TagSummary struct {
	Venues     []string `json:"venues"`
	Locations  []string `json:"locations"`
	VenueTypes []string `json:"venue_types"`
	EventTypes []string `json:"event_types"`
}

// Storage handles persistence of the canonical dataset.
type Storage struct {
	path string
}

// New creates a Storage for the given dataset file path, creating parent
// directories as needed. A leading ~ expands to the home directory.
func New(path string) (*Storage, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	return &Storage{path: path}, nil
}

// Path returns the dataset file location.
func (s *Storage) Path() string {
	return s.path
}

// Load reads the canonical dataset. A missing file yields an empty dataset,
// not an error: first runs start from nothing.
func (s *Storage) Load() (*Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Dataset{Events: make([]*event.Event, 0)}, nil
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	if ds.Events == nil {
		ds.Events = make([]*event.Event, 0)
	}

	return &ds, nil
}

// Save writes the dataset, recomputing the generated timestamp, event count,
// and tag summary. The write goes to a temp file in the same directory and is
// renamed into place, so a failure partway never corrupts the prior dataset.
func (s *Storage) Save(ds *Dataset) error {
	ds.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	ds.TotalEvents = len(ds.Events)
	ds.Tags = CollectTags(ds.Events)

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".dataset-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing dataset: %w", err)
	}

	return nil
}

// CollectTags gathers the distinct tag values across events, sorted.
func CollectTags(events []*event.Event) TagSummary {
	venues := make([]string, 0, len(events))
	locations := make([]string, 0, len(events))
	var venueTypes, eventTypes []string

	for _, evt := range events {
		venues = append(venues, evt.VenueTag)
		locations = append(locations, evt.LocationTag)
		venueTypes = append(venueTypes, evt.VenueTypeTags...)
		eventTypes = append(eventTypes, evt.EventTypeTags...)
	}

	return TagSummary{
		Venues:     event.NormalizeTagSet(venues),
		Locations:  event.NormalizeTagSet(locations),
		VenueTypes: event.NormalizeTagSet(venueTypes),
		EventTypes: event.NormalizeTagSet(eventTypes),
	}
}
