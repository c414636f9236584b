package source

import (
	"encoding/json"
	"fmt"

	"github.com/pfrederiksen/boulder-events/internal/config"
)

// RawRecord is the union of the field shapes the venue extractors produce.
// Each source fills the subset it knows about; the normalizer resolves
// alternates (title vs name, link vs url) into the canonical Event shape.
type RawRecord struct {
	Title          string     `json:"title"`
	Name           string     `json:"name"` // spreadsheet sources use "name"
	Venue          string     `json:"venue"`
	Location       string     `json:"location"`
	City           string     `json:"city"`
	Date           string     `json:"date"`
	Day            string     `json:"day"`
	Time           string     `json:"time"`
	Recurring      string     `json:"recurring"`
	Description    string     `json:"description"`
	Info           string     `json:"info"`
	AdditionalInfo string     `json:"additional_info"`
	Link           string     `json:"link"`
	URL            string     `json:"url"`
	Image          string     `json:"image"`
	SourceURL      string     `json:"source_url"`
	AgeRestriction string     `json:"age_restriction"`
	Category       string     `json:"category"`
	Categories     StringList `json:"categories"`
	EventTypeTags  StringList `json:"event_type_tags"`
}

// EffectiveTitle returns the event name regardless of which field carried it
func (r *RawRecord) EffectiveTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// EffectiveLocation returns the city/area string, preferring the explicit one
func (r *RawRecord) EffectiveLocation() string {
	if r.Location != "" {
		return r.Location
	}
	return r.City
}

// EffectiveLink returns the event URL regardless of which field carried it
func (r *RawRecord) EffectiveLink() string {
	if r.Link != "" {
		return r.Link
	}
	return r.URL
}

// EffectiveInfo returns the free-text notes field
func (r *RawRecord) EffectiveInfo() string {
	if r.Info != "" {
		return r.Info
	}
	return r.AdditionalInfo
}

// IsEmpty reports whether the record carries nothing at all. Fully blank
// records (trailing spreadsheet rows, empty list items) are skipped before
// they reach the normalizer.
func (r *RawRecord) IsEmpty() bool {
	return r.EffectiveTitle() == "" && r.Venue == "" && r.Date == "" &&
		r.Recurring == "" && r.Description == ""
}

// StringList tolerates scraper output that writes a single string where a
// list belongs (the "categories" field appears both ways in the wild).
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*s = nil
		} else {
			*s = StringList{one}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

// Source supplies raw event records for one venue or feed.
type Source interface {
	// Name identifies the source in logs and run summaries.
	Name() string
	// Venue is the default venue for records that omit one, or "".
	Venue() string
	// Extract produces the source's raw records.
	Extract() ([]RawRecord, error)
}

// New builds a Source from its configuration.
func New(cfg config.SourceConfig) (Source, error) {
	switch cfg.Type {
	case "json":
		return &jsonSource{name: cfg.Name, venue: cfg.Venue, path: cfg.Path}, nil
	case "csv":
		return &csvSource{name: cfg.Name, venue: cfg.Venue, path: cfg.Path}, nil
	case "html":
		return &htmlSource{name: cfg.Name, venue: cfg.Venue, path: cfg.Path, selectors: cfg.Selectors}, nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Type)
	}
}
