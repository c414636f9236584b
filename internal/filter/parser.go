package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	monthNames = `jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december`

	sameMonthRange  = regexp.MustCompile(`(?i)^(` + monthNames + `)\s+(\d{1,2})\s*-\s*(\d{1,2})$`)
	crossMonthRange = regexp.MustCompile(`(?i)^(` + monthNames + `)\s+(\d{1,2})\s*-\s*(` + monthNames + `)\s+(\d{1,2})$`)
	wholeMonth      = regexp.MustCompile(`(?i)^(` + monthNames + `)$`)
)

// ParseDateRange parses a human date range into start and end times.
//
// Supported forms:
//   - "Jun 1-15" or "June 1-15" — same month
//   - "June 20 - July 4" — cross-month
//   - "June" — the whole month
//
// Years are inferred: a month already past this year means next year, and a
// cross-month range whose end month precedes its start rolls into the next
// year. Start is at 00:00:00 UTC, end at 23:59:59 UTC.
func ParseDateRange(input string) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	if m := sameMonthRange.FindStringSubmatch(input); m != nil {
		month := parseMonth(m[1])
		day1, err1 := parseDay(m[2])
		day2, err2 := parseDay(m[3])
		if month == 0 || err1 != nil || err2 != nil {
			return nil, nil, fmt.Errorf("invalid date range: %s", input)
		}

		year := yearForMonth(month)
		from := time.Date(year, month, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, month, day2, 23, 59, 59, 0, time.UTC)
		if from.After(to) {
			return nil, nil, fmt.Errorf("start date must be before end date")
		}
		return &from, &to, nil
	}

	if m := crossMonthRange.FindStringSubmatch(input); m != nil {
		month1 := parseMonth(m[1])
		day1, err1 := parseDay(m[2])
		month2 := parseMonth(m[3])
		day2, err2 := parseDay(m[4])
		if month1 == 0 || month2 == 0 || err1 != nil || err2 != nil {
			return nil, nil, fmt.Errorf("invalid date range: %s", input)
		}

		year1 := yearForMonth(month1)
		year2 := year1
		if month2 < month1 {
			year2++
		}

		from := time.Date(year1, month1, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year2, month2, day2, 23, 59, 59, 0, time.UTC)
		if from.After(to) {
			return nil, nil, fmt.Errorf("start date must be before end date")
		}
		return &from, &to, nil
	}

	if m := wholeMonth.FindStringSubmatch(input); m != nil {
		month := parseMonth(m[1])
		if month == 0 {
			return nil, nil, fmt.Errorf("invalid month: %s", m[1])
		}

		year := yearForMonth(month)
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, month+1, 0, 23, 59, 59, 0, time.UTC)
		return &from, &to, nil
	}

	return nil, nil, fmt.Errorf("invalid date range format, use 'Jun 1-15', 'June 20 - July 4', or 'June'")
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("invalid day: %s", s)
	}
	return day, nil
}

// parseMonth converts a month name or abbreviation to time.Month
func parseMonth(name string) time.Month {
	months := map[string]time.Month{
		"jan": time.January, "january": time.January,
		"feb": time.February, "february": time.February,
		"mar": time.March, "march": time.March,
		"apr": time.April, "april": time.April,
		"may": time.May,
		"jun": time.June, "june": time.June,
		"jul": time.July, "july": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "september": time.September,
		"oct": time.October, "october": time.October,
		"nov": time.November, "november": time.November,
		"dec": time.December, "december": time.December,
	}
	return months[strings.ToLower(strings.TrimSpace(name))]
}

// yearForMonth assumes a month already past this year means next year
func yearForMonth(month time.Month) int {
	now := time.Now()
	year := now.Year()
	if month < now.Month() {
		year++
	}
	return year
}
