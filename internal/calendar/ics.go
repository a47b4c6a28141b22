package calendar

import (
	"crypto/sha1"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/luma-events/internal/event"
)

const defaultDurationHours = 3

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)

// GenerateICS renders a scraped event record as an iCalendar (.ics) file.
// The record's best-effort date and time strings are parsed where possible;
// an unparseable date falls back to one week out and a missing time to a
// 6 PM evening window.
func GenerateICS(rec *event.Record) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Luma Events//luma-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	// UID - deterministic per source URL
	ics.WriteString(fmt.Sprintf("UID:%s@luma-events\r\n", uid(rec.URL)))

	// DTSTAMP - when this calendar entry was created
	now := time.Now().UTC()
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))

	start, end := eventWindow(rec)
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))

	summary := rec.Name
	if summary == "" {
		summary = "Event"
	}
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	description := rec.Description
	if rec.Organizer != "" && rec.Organizer != event.NotSpecified {
		description = fmt.Sprintf("Organized by %s\n\n%s", rec.Organizer, description)
	}
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	if rec.Location != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(rec.Location)))
	}

	ics.WriteString(fmt.Sprintf("URL:%s\r\n", rec.URL))
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// eventWindow resolves the record's date and time strings into a concrete
// start/end pair.
func eventWindow(rec *event.Record) (time.Time, time.Time) {
	day := event.ParseDate(rec.Date)
	if day.IsZero() {
		// No usable date, schedule a week out
		day = time.Now().AddDate(0, 0, 7)
	}

	startHour, startMin := 18, 0
	endHour, endMin := startHour+defaultDurationHours, 0

	if m := clockPattern.FindStringSubmatch(rec.Time); m != nil {
		startHour, startMin = to24Hour(m)
		endHour, endMin = startHour+defaultDurationHours, startMin
		rest := rec.Time[len(m[0]):]
		if m2 := clockPattern.FindStringSubmatch(rest); m2 != nil {
			endHour, endMin = to24Hour(m2)
		}
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, time.UTC)
	end := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, time.UTC)
	if !end.After(start) {
		end = start.Add(time.Duration(defaultDurationHours) * time.Hour)
	}
	return start, end
}

// to24Hour converts one clockPattern match to 24-hour values.
func to24Hour(m []string) (hour, min int) {
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		min, _ = strconv.Atoi(m[2])
	}
	if strings.EqualFold(m[3], "PM") && hour < 12 {
		hour += 12
	}
	if strings.EqualFold(m[3], "AM") && hour == 12 {
		hour = 0
	}
	return hour, min
}

func uid(url string) string {
	h := sha1.New()
	h.Write([]byte(url))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
