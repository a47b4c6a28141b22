package scraper

import "regexp"

// Date patterns, applied in order; the first pattern with a match wins.
var datePatterns = []*regexp.Regexp{
	// "Tuesday, May 20" or "Tuesday, May 20, 2025"
	regexp.MustCompile(`(?i)(\w+day),\s+(\w+)\s+(\d{1,2})(?:,?\s+(\d{4}))?`),
	// "20 May" or "20 May, 2025"
	regexp.MustCompile(`(?i)(\d{1,2})\s+(\w+)(?:,?\s+(\d{4}))?`),
	// "May 20" or "May 20, 2025"
	regexp.MustCompile(`(?i)(\w+)\s+(\d{1,2})(?:,?\s+(\d{4}))?`),
}

// Word tests used to pick out elements worth running the date patterns over.
var (
	weekdayWordPattern = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	monthWordPattern   = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`)
)

// Explicit time-range patterns, applied in order.
var (
	// "7:00 PM - 10:00 PM"
	timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s*(?:AM|PM))\s*(?:-|to|–)\s*(\d{1,2}(?::\d{2})?\s*(?:AM|PM))`)
	// "7:00-10:00 PM"
	timeRangeSharedMeridiemPattern = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?)\s*(?:-|to|–)\s*(\d{1,2}(?::\d{2})?)\s*(AM|PM)`)
	// lone start like "7 PM" or "7:00 PM"; minutes are non-capturing so a
	// lone time is never mistaken for a range
	loneTimePattern = regexp.MustCompile(`(?i)\b(\d{1,2}(?::\d{2})?)\s*(AM|PM)\b`)
)

// Phrase patterns for the domain-specific time conventions.
var (
	arriveByPattern = regexp.MustCompile(`(?i)arrive by (\d{1,2})`)
	startAtPattern  = regexp.MustCompile(`(?i)start(?:ing|s)? (?:at|by) (\d{1,2}(?::\d{2})?)`)
)

// City-mention fallbacks for location extraction.
var (
	londonPhrasePattern = regexp.MustCompile(`(?i)join us in london|location.*?london|venue.*?london`)
	cityPatterns        = []*regexp.Regexp{
		// "in London"; case-sensitive so only proper nouns match
		regexp.MustCompile(`in\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		regexp.MustCompile(`(?i)(?:location|venue).*?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	}
)

// Cleanup patterns for organizer text.
var organizerNoisePattern = regexp.MustCompile(`(?i)Contact the Host|Report Event`)

// Reserved labels that disqualify a paragraph from being a description.
var reservedLabelPattern = regexp.MustCompile(`^(Location|Contact|Registration|Hosted By|URL)`)
