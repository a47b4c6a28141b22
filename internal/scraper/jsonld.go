package scraper

import (
	"encoding/json"
	"strings"

	"github.com/pfrederiksen/luma-events/internal/dom"
	"github.com/pfrederiksen/luma-events/internal/event"
)

// jsonLDEvent covers the schema.org Event fields this platform emits.
// Location and organizer stay raw because their shapes vary: plain string,
// Place object, or VirtualLocation.
type jsonLDEvent struct {
	Type        string          `json:"@type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    json.RawMessage `json:"location"`
	Organizer   json.RawMessage `json:"organizer"`
}

type jsonLDPlace struct {
	Type    string          `json:"@type"`
	Name    string          `json:"name"`
	Address json.RawMessage `json:"address"`
}

// postalAddressKeys is the fixed concatenation order for structured
// addresses.
var postalAddressKeys = []string{
	"streetAddress",
	"addressLocality",
	"addressRegion",
	"postalCode",
	"addressCountry",
}

// extractStructuredEvent scans application/ld+json script blocks for the
// first schema.org Event and maps it to a record. Malformed blocks are
// skipped, never fatal. Returns nil when no block describes an Event.
func extractStructuredEvent(doc *dom.Document, url string) *event.Record {
	var found *event.Record
	doc.EachUntil(`script[type="application/ld+json"]`, func(e *dom.Element) bool {
		evt, ok := decodeEventBlock(e.Text())
		if !ok {
			return true
		}
		found = processStructuredEvent(evt, url)
		return false
	})
	return found
}

// decodeEventBlock parses one script payload, accepting either a top-level
// Event object or an array containing one.
func decodeEventBlock(content string) (*jsonLDEvent, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, false
	}

	var single jsonLDEvent
	if err := json.Unmarshal([]byte(content), &single); err == nil {
		if single.Type == "Event" {
			return &single, true
		}
		return nil, false
	}

	var list []jsonLDEvent
	if err := json.Unmarshal([]byte(content), &list); err == nil {
		for i := range list {
			if list[i].Type == "Event" {
				return &list[i], true
			}
		}
	}
	return nil, false
}

// processStructuredEvent maps a decoded Event to a record. Hosts stay empty:
// this platform's structured data does not enumerate hosts separately from
// the organizer.
func processStructuredEvent(evt *jsonLDEvent, url string) *event.Record {
	rec := event.NewRecord(url)
	rec.Name = evt.Name
	rec.Description = evt.Description
	rec.Location = normalizeLocation(evt.Location)
	rec.Organizer = normalizeOrganizer(evt.Organizer)
	return rec
}

// normalizeLocation flattens the polymorphic schema.org location value to a
// display string.
func normalizeLocation(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return event.OnlineOrNotSpecified
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var place jsonLDPlace
	if err := json.Unmarshal(raw, &place); err != nil {
		return event.OnlineOrNotSpecified
	}
	if place.Type == "VirtualLocation" {
		return "Online Event"
	}

	addr := normalizeAddress(place.Address)
	switch {
	case place.Name != "" && addr != "":
		return place.Name + ", " + addr
	case place.Name != "":
		return place.Name
	case addr != "":
		return addr
	}
	return event.LocationNotSpecified
}

// normalizeAddress flattens a postal address: structured objects are joined
// in fixed field order, sub-objects contribute their name, and a plain
// string is used verbatim.
func normalizeAddress(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}

	parts := make([]string, 0, len(postalAddressKeys))
	for _, key := range postalAddressKeys {
		val, ok := obj[key]
		if !ok {
			continue
		}
		if part := addressPart(val); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// addressPart resolves one address sub-field: a string is used directly, an
// object contributes its name (e.g. {"@type":"Country","name":"UK"}).
func addressPart(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &named); err == nil {
		return named.Name
	}
	return ""
}

// normalizeOrganizer flattens a string or Person/Organization organizer to a
// name.
func normalizeOrganizer(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return event.NotSpecified
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &named); err == nil && named.Name != "" {
		return named.Name
	}
	return event.NotSpecified
}
