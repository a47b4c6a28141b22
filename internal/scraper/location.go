package scraper

import (
	"github.com/pfrederiksen/luma-events/internal/dom"
	"github.com/pfrederiksen/luma-events/internal/event"
)

// Class fragments marking location containers and their venue/address
// children. fw-medium, text-tinted, and fs-sm are Lu.ma utility classes.
var (
	locationContainerFragments = []string{"location", "venue", "place"}
	venueClassFragments        = []string{"venue", "title", "name", "fw-medium", "bold"}
	addressClassFragments      = []string{"address", "location", "text-tinted", "fs-sm"}
)

// findLocation composes a venue/address string from location containers,
// falling back to city mentions in the body text.
func findLocation(doc *dom.Document, bodyText string) string {
	containers := locationContainers(doc)

	venue := ""
	address := ""
	for _, container := range containers {
		// Venue name: last sufficiently long match wins, so the most
		// specific (innermost) candidate survives.
		container.Each("div, h3, h4, strong, b", func(e *dom.Element) {
			if !e.ClassContains(venueClassFragments...) {
				return
			}
			if text := e.Text(); len(text) > 5 {
				venue = text
			}
		})

		container.Each("div, p, span", func(e *dom.Element) {
			if !e.ClassContains(addressClassFragments...) {
				return
			}
			if text := e.Text(); len(text) > 5 {
				address = text
			}
		})
	}

	switch {
	case venue != "" && address != "":
		return venue + ", " + address
	case venue != "":
		return venue
	case address != "":
		return address
	}

	// No markup signal: look for city mentions in the page text.
	if londonPhrasePattern.MatchString(bodyText) {
		return "London"
	}
	for _, pattern := range cityPatterns {
		if m := pattern.FindStringSubmatch(bodyText); m != nil && m[1] != "" {
			return m[1]
		}
	}

	return event.NotSpecified
}

// locationContainers collects candidate containers two ways: divs whose
// class mentions a location fragment, and the grandparent of any element
// labeled exactly "Location" when that ancestor is a div or section.
func locationContainers(doc *dom.Document) []*dom.Element {
	var containers []*dom.Element

	doc.Each("div", func(e *dom.Element) {
		if e.ClassContains(locationContainerFragments...) {
			containers = append(containers, e)
		}
	})

	doc.EachWithExactText("*", "Location", func(e *dom.Element) {
		ancestor := e.Ancestor(2)
		if ancestor != nil && ancestor.IsTag("div", "section") {
			containers = append(containers, ancestor)
		}
	})

	return containers
}
