package event

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the layout of a normalized calendar date.
const ISODate = "2006-01-02"

// DisplayDate is the layout of the human-readable date field.
const DisplayDate = "January 2, 2006"

// ordinalPattern matches ordinal day suffixes like "1st", "22nd", "3rd", "15th"
var ordinalPattern = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

// timeOnlyPattern matches strings that are a clock time or time range rather
// than a calendar date, e.g. "7:30 PM" or "6:00 pm-9:00 pm"
var timeOnlyPattern = regexp.MustCompile(`^\d{1,2}:\d{2}\s*([AaPp][Mm])?(\s*[-–]\s*\d{1,2}:\d{2}\s*([AaPp][Mm])?)?$`)

// weekdayPrefixPattern strips a leading weekday like "Friday, " from date text
var weekdayPrefixPattern = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday),?\s+`)

// Scraper output often embeds the date inside longer text ("Doors 7PM,
// June 15, 2024"); these patterns find it when the whole string isn't a date.
var (
	embeddedMonthDatePattern = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:,?\s+(\d{4}))?`)
	embeddedSlashDatePattern = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDate attempts to parse free-text date into a time.Time.
// Returns time.Time{} (zero value) if parsing fails.
// Supports formats: "06/15/2024", "June 15, 2024", "Friday, June 14, 2024",
// "June 15" (current year assumed), "2024-06-15", with ordinal suffixes
// ("June 1st") tolerated everywhere. When the whole string isn't a date,
// a date embedded in surrounding text is extracted.
func ParseDate(dateText string) time.Time {
	cleaned := strings.TrimSpace(dateText)
	if cleaned == "" {
		return time.Time{}
	}

	cleaned = ordinalPattern.ReplaceAllString(cleaned, "$1")
	cleaned = weekdayPrefixPattern.ReplaceAllString(cleaned, "")

	layouts := []string{
		"01/02/2006",
		"1/2/2006",
		"January 2, 2006",
		"Jan 2, 2006",
		"January 2 2006",
		ISODate,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t
		}
	}

	// Month-and-day forms carry no year; assume the current one
	yearless := []string{"January 2", "Jan 2"}
	for _, layout := range yearless {
		if t, err := time.Parse(layout, cleaned); err == nil {
			now := time.Now()
			return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return extractDate(cleaned)
}

// extractDate searches for a date embedded in longer text, so strings like
// "June 15, 2024 8:00 PM" still normalize instead of demoting the event to
// dateless. Yearless matches assume the current year.
func extractDate(text string) time.Time {
	if m := embeddedMonthDatePattern.FindStringSubmatch(text); m != nil {
		month := monthsByPrefix[strings.ToLower(m[1][:3])]
		day, _ := strconv.Atoi(m[2])
		if month != 0 && day >= 1 && day <= 31 {
			year := time.Now().Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
			}
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		}
	}

	if m := embeddedSlashDatePattern.FindString(text); m != "" {
		if t, err := time.Parse("1/2/2006", m); err == nil {
			return t
		}
	}

	return time.Time{}
}

// NormalizeDate parses free-text date and returns its display form
// ("June 15, 2024") and normalized ISO form ("2024-06-15"). Unparseable or
// empty input yields ("", "") — absence of a fixed date is not an error.
func NormalizeDate(dateText string) (display, normalized string) {
	t := ParseDate(dateText)
	if t.IsZero() {
		return "", ""
	}
	return t.Format(DisplayDate), t.Format(ISODate)
}

// IsTimeOnly reports whether a date-position string is actually a clock time
// or time range. Some venue pages put "7:30 PM" where the date belongs.
func IsTimeOnly(dateText string) bool {
	return timeOnlyPattern.MatchString(strings.TrimSpace(dateText))
}

// IsPast reports whether the event's fixed date is before today in the given
// location. Events without a fixed date are never considered past.
func (e *Event) IsPast(loc *time.Location) bool {
	if e.NormalizedDate == "" {
		return false
	}
	t, err := time.ParseInLocation(ISODate, e.NormalizedDate, loc)
	if err != nil {
		return false
	}
	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return t.Before(today)
}
