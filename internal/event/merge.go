package event

import (
	"sort"
	"strings"
)

// Merge deduplicates incoming events against existing ones by identity key,
// appends the survivors, and returns the combined list in canonical order.
// First-seen wins: an incoming event whose key is already present is dropped
// entirely, even if it carries more complete fields. Dropped duplicates are
// returned as a count so callers can report them.
func Merge(existing, incoming []*Event) (combined []*Event, duplicates int) {
	seen := make(map[string]bool, len(existing))
	for _, evt := range existing {
		seen[evt.IdentityKey()] = true
	}

	combined = make([]*Event, 0, len(existing)+len(incoming))
	combined = append(combined, existing...)

	for _, evt := range incoming {
		key := evt.IdentityKey()
		if seen[key] {
			duplicates++
			continue
		}
		seen[key] = true
		combined = append(combined, evt)
	}

	Sort(combined)
	return combined, duplicates
}

// Sort orders events ascending by normalized date. Events without a fixed
// date sort after all dated events, ordered by venue then title. Dated ties
// break by title then venue, so the written order is identical for any two
// runs over the same event set.
func Sort(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return compare(events[i], events[j])
	})
}

// compare returns true if event i should come before event j
func compare(i, j *Event) bool {
	di, dj := i.NormalizedDate, j.NormalizedDate

	// Dated events come before dateless ones
	if (di != "") != (dj != "") {
		return di != ""
	}

	if di != dj {
		return di < dj
	}

	// Dateless pairs order by venue first; dated ties by title first
	if di == "" {
		if !strings.EqualFold(i.Venue, j.Venue) {
			return strings.ToLower(i.Venue) < strings.ToLower(j.Venue)
		}
		return strings.ToLower(i.Title) < strings.ToLower(j.Title)
	}

	if !strings.EqualFold(i.Title, j.Title) {
		return strings.ToLower(i.Title) < strings.ToLower(j.Title)
	}
	return strings.ToLower(i.Venue) < strings.ToLower(j.Venue)
}
