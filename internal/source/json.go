package source

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonSource reads the per-venue scraper output files. Each file is a JSON
// array of raw records in that scraper's own field shape.
type jsonSource struct {
	name  string
	venue string
	path  string
}

func (s *jsonSource) Name() string  { return s.name }
func (s *jsonSource) Venue() string { return s.venue }

func (s *jsonSource) Extract() ([]RawRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	out := make([]RawRecord, 0, len(records))
	for _, rec := range records {
		if rec.IsEmpty() {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
