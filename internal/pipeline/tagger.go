package pipeline

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/pfrederiksen/boulder-events/internal/config"
	"github.com/pfrederiksen/boulder-events/internal/event"
	"github.com/pfrederiksen/boulder-events/internal/source"
)

// Tagger derives venue and event type tags from the static lookup tables.
type Tagger struct {
	cfg *config.Config
}

// NewTagger creates a Tagger backed by the given lookup tables.
func NewTagger(cfg *config.Config) *Tagger {
	return &Tagger{cfg: cfg}
}

// Tag populates the event's tag fields. Venue type tags come from the venue
// table; event type tags are keyword-rule matches over the event's text
// unioned with any tags the source supplied explicitly. An unrecognized
// venue leaves the venue type tags empty — never an error.
func (t *Tagger) Tag(evt *event.Event, raw *source.RawRecord) {
	var venueTypeTags []string
	if _, venueCfg, ok := t.cfg.VenueFor(evt.Venue); ok {
		venueTypeTags = venueCfg.VenueTypeTags
	}

	eventTypeTags := append([]string(nil), raw.EventTypeTags...)
	eventTypeTags = append(eventTypeTags, t.keywordTags(evt, raw)...)
	eventTypeTags = append(eventTypeTags, ageTags(evt.AgeRestriction)...)

	evt.SetTags(venueTypeTags, eventTypeTags)
}

// keywordTags runs the keyword rule set over the event's searchable text.
// Single-word keywords match whole tokens only, so "dj" doesn't fire on
// "adjacent"; multi-word keywords match as case-insensitive substrings.
func (t *Tagger) keywordTags(evt *event.Event, raw *source.RawRecord) []string {
	corpus := strings.ToLower(strings.Join(append([]string{
		evt.Title, evt.Description, raw.Category,
	}, raw.Categories...), " "))

	tokens := tokenize(corpus)

	var tags []string
	for _, rule := range t.cfg.KeywordRules {
		keyword := strings.ToLower(rule.Keyword)
		if keyword == "" {
			continue
		}
		if strings.ContainsRune(keyword, ' ') {
			if strings.Contains(corpus, keyword) {
				tags = append(tags, rule.Tag)
			}
			continue
		}
		if tokens[keyword] {
			tags = append(tags, rule.Tag)
		}
	}
	return tags
}

// tokenize splits text into a set of word tokens (UAX #29 segmentation),
// discarding whitespace and punctuation segments.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	segments := words.FromString(text)
	for segments.Next() {
		tok := segments.Value()
		if !hasAlnum(tok) {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ageTags maps an age restriction string onto the tag vocabulary.
func ageTags(age string) []string {
	switch {
	case age == "":
		return nil
	case strings.Contains(age, "All Ages") || strings.Contains(age, "Family"):
		return []string{"All Ages"}
	case strings.Contains(age, "21+") || strings.Contains(age, "18+"):
		return []string{"21+"}
	}
	return nil
}
