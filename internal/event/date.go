package event

import (
	"strings"
	"time"
)

// dateLayouts are tried in order against the phrases the extractor emits:
// ISO attribute values ("2025-05-20"), weekday phrases ("Tuesday, May 20"),
// and the month/day orderings matched by the layout heuristics.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"Monday, January 2, 2006",
	"Monday, January 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2 January, 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// dateLayoutsNoYear cover the same phrases without a year; the current year
// is assumed.
var dateLayoutsNoYear = []string{
	"Monday, January 2",
	"January 2",
	"2 January",
	"Jan 2",
}

// ParseDate attempts to parse a best-effort date string into a time.Time.
// Returns the zero time if nothing matches. Phrases without a year are
// resolved against the current year.
func ParseDate(dateText string) time.Time {
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateText); err == nil {
			return t
		}
	}

	for _, layout := range dateLayoutsNoYear {
		if t, err := time.Parse(layout, dateText); err == nil {
			now := time.Now()
			return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return time.Time{}
}
