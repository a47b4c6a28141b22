package scraper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pfrederiksen/luma-events/internal/config"
	"github.com/pfrederiksen/luma-events/internal/dom"
	"github.com/pfrederiksen/luma-events/internal/event"
)

// strategy is one candidate way to extract a field. Strategies return ""
// when they find nothing; they never fail.
type strategy func() string

// firstNonEmpty evaluates strategies in order and returns the first
// non-empty result.
func firstNonEmpty(strategies ...strategy) string {
	for _, s := range strategies {
		if v := s(); v != "" {
			return v
		}
	}
	return ""
}

// extractFromLayout runs the full layout-heuristic pipeline. It always
// returns a populated record; fields with no signal are left empty or set to
// their sentinel defaults.
func extractFromLayout(doc *dom.Document, url string, cfg *config.Heuristics) *event.Record {
	rec := event.NewRecord(url)
	bodyText := doc.BodyText()

	rec.Name = findTitle(doc)

	rec.Date = firstNonEmpty(
		func() string { return termDateOverride(rec.Name, cfg) },
		func() string { return dateFromAttributes(doc) },
		func() string { return dateFromText(bodyText) },
		func() string { return dateFromElements(doc) },
	)

	// Description before time: the time tiers inspect it.
	rec.Description = findDescription(doc)

	rec.Time = firstNonEmpty(
		func() string { return arriveByTime(bodyText, cfg) },
		func() string { return arriveByTime(rec.Description, cfg) },
		func() string { return startAtTime(bodyText, cfg) },
		func() string { return timeFromElements(doc, "time, [data-time]", cfg) },
		func() string { return timeFromElements(doc, "p, span, div", cfg) },
	)

	rec.Location = cleanupLocation(findLocation(doc, bodyText))
	rec.Organizer = findOrganizer(doc)
	rec.Hosts = findHosts(doc)

	// No organizer found but hosts were: promote the first host.
	if (rec.Organizer == "" || rec.Organizer == event.NotSpecified) && len(rec.Hosts) > 0 {
		rec.Organizer = rec.Hosts[0]
	}

	return rec
}

// findTitle takes the first top-level heading's trimmed text.
func findTitle(doc *dom.Document) string {
	title := ""
	doc.EachUntil("h1", func(e *dom.Element) bool {
		title = e.Text()
		return false
	})
	return title
}

// termDateOverride applies the known term-code date table (e.g. TT25 series
// events all share one published evening).
func termDateOverride(title string, cfg *config.Heuristics) string {
	if title == "" {
		return ""
	}
	if date, ok := cfg.TermDate(title); ok {
		return date
	}
	return ""
}

// dateFromAttributes scans elements carrying a datetime or data-date
// attribute. All matches are visited in document order and the last
// non-empty value wins; this precedence is load-bearing for pages that
// repeat the date in progressively more specific elements.
func dateFromAttributes(doc *dom.Document) string {
	date := ""
	doc.Each("[datetime], time, [data-date]", func(e *dom.Element) {
		attr := e.Attr("datetime")
		if attr == "" {
			attr = e.Attr("data-date")
		}
		if attr != "" {
			date = attr
		}
	})
	return date
}

// dateFromText runs the ordered date patterns over the full body text; the
// first pattern with a match wins.
func dateFromText(text string) string {
	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// dateFromElements scans text-bearing elements mentioning a weekday or month
// and applies the date patterns per element; the first hit stops the scan.
func dateFromElements(doc *dom.Document) string {
	date := ""
	doc.EachUntil("p, span, div, h2, h3, h4, time", func(e *dom.Element) bool {
		text := e.Text()
		if !weekdayWordPattern.MatchString(text) && !monthWordPattern.MatchString(text) {
			return true
		}
		if match := dateFromText(text); match != "" {
			date = match
			return false
		}
		return true
	})
	return date
}

// arriveByTime handles the "arrive by N" convention for evening socials:
// start at N PM, end at the configured fixed evening hour.
func arriveByTime(text string, cfg *config.Heuristics) string {
	if !strings.Contains(strings.ToLower(text), "arrive by") {
		return ""
	}
	m := arriveByPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	startHour, err := strconv.Atoi(m[1])
	if err != nil || startHour <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:00 PM - %d:00 PM", startHour, cfg.ArriveByEndHour)
}

// startAtTime handles explicit "start(s/ing) at/by <time>" phrasing, pairing
// the parsed start with a synthesized default-duration end. Evening events
// are assumed, so the result is labeled PM.
func startAtTime(text string, cfg *config.Heuristics) string {
	m := startAtPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	startHour := leadingHour(m[1])
	if startHour <= 0 {
		return ""
	}
	endHour := synthesizedEnd(startHour, cfg)
	return fmt.Sprintf("%d:00 PM - %d:00 PM", startHour, endHour)
}

// timeFromElements scans elements matching selector for an explicit time
// range or a lone start time; the first element with a hit wins.
func timeFromElements(doc *dom.Document, selector string, cfg *config.Heuristics) string {
	result := ""
	doc.EachUntil(selector, func(e *dom.Element) bool {
		if t := timeFromString(e.Text(), cfg); t != "" {
			result = t
			return false
		}
		return true
	})
	return result
}

// timeFromString applies the three explicit time patterns in order against
// one piece of text.
func timeFromString(text string, cfg *config.Heuristics) string {
	if m := timeRangePattern.FindStringSubmatch(text); m != nil {
		return m[1] + " - " + m[2]
	}
	if m := timeRangeSharedMeridiemPattern.FindStringSubmatch(text); m != nil {
		return m[1] + " - " + m[2]
	}
	if m := loneTimePattern.FindStringSubmatch(text); m != nil {
		startHour := leadingHour(m[1])
		if startHour <= 0 {
			return ""
		}
		endHour := synthesizedEnd(startHour, cfg)
		ampm := strings.ToUpper(m[2])
		return fmt.Sprintf("%s - %d:00 %s", m[1], endHour, ampm)
	}
	return ""
}

// leadingHour parses the hour component of strings like "7" or "7:30".
func leadingHour(s string) int {
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}
	hour, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return hour
}

// synthesizedEnd adds the default event duration to a start hour, capped on
// the 12-hour clock.
func synthesizedEnd(startHour int, cfg *config.Heuristics) int {
	end := startHour + cfg.DefaultDurationHours
	if end > cfg.MaxEndHour {
		end = cfg.MaxEndHour
	}
	return end
}

// cleanupLocation normalizes a composed location string: the leading
// "Location" label is dropped and any part already contained in an earlier
// kept part is removed, so "Location, London, England, London" becomes
// "London, England". Parts of 3 characters or fewer are kept even when
// repeated (short region codes legitimately recur).
func cleanupLocation(location string) string {
	if location == "" || !strings.Contains(location, ",") {
		return location
	}

	location = strings.TrimPrefix(location, "Location, ")

	parts := strings.Split(location, ",")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		redundant := false
		if len(part) > 3 {
			for _, existing := range kept {
				if strings.Contains(existing, part) {
					redundant = true
					break
				}
			}
		}
		if !redundant {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}
