// Package calendar renders canonical events as iCalendar (RFC 5545) data,
// so aggregated listings can be imported into a personal calendar.
package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pfrederiksen/boulder-events/internal/event"
)

const prodID = "-//Boulder Events//boulder-events//EN"

var startTimePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)`)

// Generate renders a VCALENDAR containing one VEVENT per event that has a
// fixed date. Recurring-only events are skipped: without a concrete date
// there is nothing to put on a calendar.
func Generate(events []*event.Event) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", prodID))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, evt := range events {
		if !evt.HasFixedDate() {
			continue
		}
		writeEvent(&ics, evt, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, evt *event.Event, stamp time.Time) {
	date, err := time.Parse(event.ISODate, evt.NormalizedDate)
	if err != nil {
		return
	}

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s@boulder-events\r\n", evt.ID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))

	start, hasClock := startOfEvent(date, evt.Time)
	if hasClock {
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(start.Add(2*time.Hour))))
	} else {
		// All-day event when no start time is known
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", date.Format("20060102")))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", date.AddDate(0, 0, 1).Format("20060102")))
	}

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(evt.Title)))

	var descParts []string
	if evt.Description != "" {
		descParts = append(descParts, evt.Description)
	}
	if evt.Info != "" {
		descParts = append(descParts, evt.Info)
	}
	if evt.Link != "" {
		descParts = append(descParts, evt.Link)
	}
	if len(descParts) > 0 {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(strings.Join(descParts, "\n"))))
	}

	location := evt.Venue
	if evt.Location != "" {
		location = fmt.Sprintf("%s, %s", evt.Venue, evt.Location)
	}
	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(location)))

	if evt.Link != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", evt.Link))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// startOfEvent combines the event date with its display time, when the time
// text carries a parseable starting clock time.
func startOfEvent(date time.Time, timeText string) (time.Time, bool) {
	m := startTimePattern.FindStringSubmatch(timeText)
	if m == nil {
		return date, false
	}

	hour := atoi(m[1])
	minute := atoi(m[2])
	if strings.EqualFold(m[3], "pm") && hour < 12 {
		hour += 12
	}
	if strings.EqualFold(m[3], "am") && hour == 12 {
		hour = 0
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC), true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
