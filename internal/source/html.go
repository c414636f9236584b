package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/boulder-events/internal/config"
)

// htmlSource extracts records from a saved venue page. All markup knowledge
// comes from the configured selectors; the code knows nothing about any
// particular venue's site.
type htmlSource struct {
	name      string
	venue     string
	path      string
	selectors config.HTMLSelectors
}

func (s *htmlSource) Name() string  { return s.name }
func (s *htmlSource) Venue() string { return s.venue }

func (s *htmlSource) Extract() ([]RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	var records []RawRecord
	doc.Find(s.selectors.Item).Each(func(i int, item *goquery.Selection) {
		rec := RawRecord{
			Title:       selectText(item, s.selectors.Title),
			Date:        selectText(item, s.selectors.Date),
			Time:        selectText(item, s.selectors.Time),
			Description: selectText(item, s.selectors.Description),
			Link:        selectAttr(item, s.selectors.Link, "href"),
			Image:       selectAttr(item, s.selectors.Image, "src"),
		}
		// Default venue goes in after the blank-item check so that an
		// element matching the item selector with no content is skipped.
		if rec.IsEmpty() {
			return
		}
		rec.Venue = s.venue
		records = append(records, rec)
	})

	return records, nil
}

// selectText returns the trimmed text of the first match within the item
func selectText(item *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(item.Find(selector).First().Text())
}

// selectAttr returns an attribute of the first match within the item
func selectAttr(item *goquery.Selection, selector, attr string) string {
	if selector == "" {
		return ""
	}
	val, _ := item.Find(selector).First().Attr(attr)
	return strings.TrimSpace(val)
}
