// Package config provides the static lookup tables and source definitions
// consulted by the aggregation pipeline.
//
// The venue table, city table, and keyword rules are configuration data, not
// code: adding a venue or a tagging rule is a data change. A built-in default
// configuration carries the Boulder-area tables so the tool runs without a
// config file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoSources            = errors.New("at least one source is required")
	ErrSourceMissingName    = errors.New("source name is required")
	ErrSourceMissingPath    = errors.New("source path is required")
	ErrSourceInvalidType    = errors.New("source type must be 'json', 'csv', or 'html'")
	ErrSourceMissingItemSel = errors.New("html source requires selectors.item")
	ErrVenueMissingLocation = errors.New("venue location is required")
)

// Config is the complete aggregator configuration.
type Config struct {
	// DefaultImage is used when a record carries no image of its own
	// and its venue has none configured.
	DefaultImage string `yaml:"default_image"`

	// Timezone for "today" when pruning or skipping past events.
	Timezone string `yaml:"timezone"`

	// Venues maps canonical venue names to their static metadata.
	Venues map[string]VenueConfig `yaml:"venues"`

	// VenueAliases maps scraped venue names to their canonical display names.
	VenueAliases map[string]string `yaml:"venue_aliases"`

	// Cities maps city names to canonical location labels.
	Cities map[string]string `yaml:"cities"`

	// KeywordRules derive event type tags from title/description/category text.
	KeywordRules []KeywordRule `yaml:"keyword_rules"`

	// Sources are processed in listed order; identity-key ties resolve to
	// the earlier source.
	Sources []SourceConfig `yaml:"sources"`
}

// VenueConfig holds the static metadata for one venue.
type VenueConfig struct {
	Location      string   `yaml:"location"`
	VenueTypeTags []string `yaml:"venue_type_tags"`
	Image         string   `yaml:"image"`
}

// KeywordRule adds a tag when its keyword appears in event text.
type KeywordRule struct {
	Keyword string `yaml:"keyword"`
	Tag     string `yaml:"tag"`
}

// SourceConfig describes one extraction source.
type SourceConfig struct {
	Name  string `yaml:"name"`
	Venue string `yaml:"venue"` // default venue when records omit one
	Type  string `yaml:"type"`  // json, csv, or html
	Path  string `yaml:"path"`

	// Selectors drive the HTML extractor; venue-specific markup knowledge
	// lives here rather than in code.
	Selectors HTMLSelectors `yaml:"selectors"`
}

// HTMLSelectors are the CSS selectors for an HTML source.
type HTMLSelectors struct {
	Item        string `yaml:"item"`
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`  // href is read from the matched element
	Image       string `yaml:"image"` // src is read from the matched element
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	cfg.Sources = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return ErrNoSources
	}

	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("source %d: %w", i, ErrSourceMissingName)
		}
		if src.Path == "" {
			return fmt.Errorf("source %q: %w", src.Name, ErrSourceMissingPath)
		}
		switch src.Type {
		case "json", "csv":
		case "html":
			if src.Selectors.Item == "" {
				return fmt.Errorf("source %q: %w", src.Name, ErrSourceMissingItemSel)
			}
		default:
			return fmt.Errorf("source %q: %w", src.Name, ErrSourceInvalidType)
		}
	}

	for name, venue := range c.Venues {
		if venue.Location == "" {
			return fmt.Errorf("venue %q: %w", name, ErrVenueMissingLocation)
		}
	}

	return nil
}

// VenueFor resolves a scraped venue name through the alias table and returns
// its canonical name and config. ok is false when the venue is unrecognized;
// tagging then falls back to defaults rather than failing.
func (c *Config) VenueFor(name string) (canonical string, venue VenueConfig, ok bool) {
	if alias, found := c.VenueAliases[name]; found {
		name = alias
	}
	venue, ok = c.Venues[name]
	return name, venue, ok
}

// LocationFor maps a city to its canonical location label, returning the
// city unchanged when no mapping exists.
func (c *Config) LocationFor(city string) string {
	if loc, ok := c.Cities[city]; ok {
		return loc
	}
	return city
}

// Default returns the built-in Boulder-area configuration.
func Default() *Config {
	return &Config{
		DefaultImage: "images/default.jpg",
		Timezone:     "America/Denver",
		Venues: map[string]VenueConfig{
			"Velvet Elk Lounge": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Music", "Live Music", "Bar", "Nightlife"},
			},
			"Junkyard Social Club": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Community", "Arts", "Performance", "All Ages"},
			},
			"Mountain Sun Pub": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Music", "Pub", "Bar", "Food & Drink"},
			},
			"St Julien Hotel & Spa": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Entertainment", "Hotel", "Upscale"},
			},
			"Trident Booksellers & Cafe": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Books", "Literary", "Cafe", "Arts"},
			},
			"License No 1": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Nightlife", "Bar", "21+"},
			},
			"Jungle": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Music", "Live Music", "Bar", "Nightlife"},
			},
			"Rosetta Hall": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Music", "Nightlife", "Dance", "DJ", "21+"},
			},
			"Gold Hill Inn": {
				Location:      "Gold Hill",
				VenueTypeTags: []string{"Live Music", "Restaurant", "Historic"},
			},
			"300 Suns Brewing": {
				Location:      "Longmont",
				VenueTypeTags: []string{"Brewery", "Live Music", "Family Friendly"},
			},
			"Bricks on Main": {
				Location:      "Longmont",
				VenueTypeTags: []string{"Community", "Retail", "Entertainment"},
			},
			"Roots Music Project": {
				Location:      "Boulder",
				VenueTypeTags: []string{"Live Music", "Community"},
			},
			"Bands on the Bricks": {
				Location:      "Niwot",
				VenueTypeTags: []string{"Live Music", "All Ages", "Free"},
				Image:         "images/bandsonthebricks.jpg",
			},
			"Rock & Rails": {
				Location:      "Niwot",
				VenueTypeTags: []string{"Live Music", "All Ages", "Free"},
				Image:         "images/rocknrails.jpg",
			},
			"Louisville Street Faire": {
				Location:      "Louisville",
				VenueTypeTags: []string{"Live Music", "All Ages", "Free"},
				Image:         "images/streetfaire.jpg",
			},
		},
		VenueAliases: map[string]string{
			"Mountain Sun Pub on Pearl": "Mountain Sun Pub",
			"Mountain Sun Pubs":         "Mountain Sun Pub",
		},
		Cities: map[string]string{
			"Niwot":      "Niwot",
			"Louisville": "Louisville",
			"Lafayette":  "Lafayette",
			"Boulder":    "Boulder",
			"Longmont":   "Longmont",
			"Gold Hill":  "Gold Hill",
		},
		KeywordRules: []KeywordRule{
			{Keyword: "music", Tag: "Music"},
			{Keyword: "dance", Tag: "Music"},
			{Keyword: "dj", Tag: "Music"},
			{Keyword: "concert", Tag: "Music"},
			{Keyword: "community", Tag: "Community"},
			{Keyword: "performance", Tag: "Performance"},
			{Keyword: "educational", Tag: "Educational"},
			{Keyword: "family fun", Tag: "Family Friendly"},
			{Keyword: "entertainment", Tag: "Entertainment"},
			{Keyword: "books", Tag: "Books & Literary"},
			{Keyword: "literary", Tag: "Books & Literary"},
			{Keyword: "nightlife", Tag: "Nightlife"},
			{Keyword: "trivia", Tag: "Trivia"},
			{Keyword: "comedy", Tag: "Comedy"},
		},
	}
}
