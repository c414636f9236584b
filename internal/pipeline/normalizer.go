package pipeline

import (
	"errors"
	"strings"

	"github.com/pfrederiksen/boulder-events/internal/config"
	"github.com/pfrederiksen/boulder-events/internal/event"
	"github.com/pfrederiksen/boulder-events/internal/source"
)

// ErrInvalidRecord marks a raw record without usable identity fields.
// Callers skip the record and continue; one bad record never aborts a batch.
var ErrInvalidRecord = errors.New("record missing title and venue")

// Normalizer converts raw records of any source shape into canonical Events.
type Normalizer struct {
	cfg *config.Config
}

// NewNormalizer creates a Normalizer backed by the given lookup tables.
func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Normalize builds a canonical Event from a raw record. The source supplies
// the venue for records that omit one. Returns ErrInvalidRecord when neither
// a usable title nor venue can be established.
func (n *Normalizer) Normalize(raw *source.RawRecord, src source.Source) (*event.Event, error) {
	title := strings.TrimSpace(raw.EffectiveTitle())

	venue := strings.TrimSpace(raw.Venue)
	if venue == "" {
		venue = strings.TrimSpace(src.Venue())
	}
	if title == "" && venue == "" {
		return nil, ErrInvalidRecord
	}
	// A venue-less record can't be tagged or keyed; it's as unusable as a
	// title-less, venue-less one.
	if venue == "" {
		return nil, ErrInvalidRecord
	}
	if title == "" {
		title = "Untitled Event"
	}

	venue, venueCfg, venueKnown := n.cfg.VenueFor(venue)

	evt := &event.Event{
		Title:          title,
		Venue:          venue,
		Recurring:      strings.TrimSpace(raw.Recurring),
		Time:           strings.TrimSpace(raw.Time),
		Description:    strings.TrimSpace(raw.Description),
		Info:           strings.TrimSpace(raw.EffectiveInfo()),
		Link:           strings.TrimSpace(raw.EffectiveLink()),
		Image:          strings.TrimSpace(raw.Image),
		SourceURL:      strings.TrimSpace(raw.SourceURL),
		AgeRestriction: strings.TrimSpace(raw.AgeRestriction),
	}

	// Some venue pages put a bare clock time where the date belongs.
	dateText := strings.TrimSpace(raw.Date)
	if event.IsTimeOnly(dateText) {
		if evt.Time == "" {
			evt.Time = dateText
		}
		dateText = ""
	}

	display, normalized := event.NormalizeDate(dateText)
	evt.NormalizedDate = normalized
	if display != "" {
		evt.Date = display
	} else {
		// Keep unparseable date text for display; it still means something
		// to a reader ("First Friday of the month").
		evt.Date = dateText
	}

	// Spreadsheet rows carry a weekday column; without a fixed date it is
	// the recurrence ("Thursday" means every Thursday).
	if evt.NormalizedDate == "" && evt.Recurring == "" {
		evt.Recurring = strings.TrimSpace(raw.Day)
	}

	// Location: explicit column first, then the venue table.
	location := strings.TrimSpace(raw.EffectiveLocation())
	if location != "" {
		location = n.cfg.LocationFor(location)
	} else if venueKnown {
		location = venueCfg.Location
	}
	evt.Location = location

	// Image: record, then venue, then the configured default.
	if evt.Image == "" {
		if venueKnown && venueCfg.Image != "" {
			evt.Image = venueCfg.Image
		} else {
			evt.Image = n.cfg.DefaultImage
		}
	}

	evt.ID = event.GenerateID(evt.IdentityKey())
	return evt, nil
}

// DateUnparsed reports whether a record carried date text that could not be
// normalized. Not an error; such events surface as recurring/rolling.
func DateUnparsed(raw *source.RawRecord, evt *event.Event) bool {
	dateText := strings.TrimSpace(raw.Date)
	return dateText != "" && !event.IsTimeOnly(dateText) && evt.NormalizedDate == ""
}
