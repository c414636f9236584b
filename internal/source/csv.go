package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// csvSource reads a spreadsheet export. Columns follow the concert-series
// sheet: Event, Venue, City, Day, Date, Time, Info, url. Header matching is
// case-insensitive and unknown columns are ignored.
type csvSource struct {
	name  string
	venue string
	path  string
}

func (s *csvSource) Name() string  { return s.name }
func (s *csvSource) Venue() string { return s.venue }

func (s *csvSource) Extract() ([]RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // sheets export ragged rows

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}

	field := func(row []string, name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := RawRecord{
			Name:      field(row, "event"),
			Venue:     field(row, "venue"),
			City:      field(row, "city"),
			Day:       field(row, "day"),
			Date:      field(row, "date"),
			Time:      field(row, "time"),
			Info:      field(row, "info"),
			URL:       field(row, "url"),
			Recurring: field(row, "recurring"),
		}
		if rec.IsEmpty() {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
