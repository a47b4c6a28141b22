package scraper

import (
	"strings"

	"github.com/pfrederiksen/luma-events/internal/dom"
	"github.com/pfrederiksen/luma-events/internal/event"
)

// findOrganizer tries four tiers of organizer markup in order, stopping at
// the first success, then strips boilerplate action labels from the result.
func findOrganizer(doc *dom.Document) string {
	organizer := firstNonEmpty(
		func() string { return organizerFromPresentedBy(doc) },
		func() string { return organizerFromLabelSibling(doc) },
		func() string { return organizerFromHostedBySection(doc) },
		func() string { return organizerFromHostedByPrefix(doc) },
	)

	if organizer != "" {
		organizer = strings.TrimSpace(organizerNoisePattern.ReplaceAllString(organizer, ""))
	}
	if organizer == "" {
		return event.NotSpecified
	}
	return organizer
}

// organizerFromPresentedBy finds the innermost "Presented by" label and
// takes the first div/span/p under its parent that names the presenter.
func organizerFromPresentedBy(doc *dom.Document) string {
	organizer := ""
	doc.EachDeepestWithText("Presented by", func(e *dom.Element) {
		if organizer != "" {
			return
		}
		parent := e.Parent()
		if parent == nil {
			return
		}
		parent.EachUntil("div, span, p", func(c *dom.Element) bool {
			text := c.Text()
			if text == "" || strings.Contains(text, "Presented by") {
				return true
			}
			organizer = text
			return false
		})
	})
	return organizer
}

// organizerFromLabelSibling finds an exact "Organizer" or "Presenter" label
// and walks up to 5 siblings of its parent for the first non-trivial text.
func organizerFromLabelSibling(doc *dom.Document) string {
	organizer := ""
	for _, label := range []string{"Organizer", "Presenter"} {
		if organizer != "" {
			break
		}
		doc.EachWithExactText("*", label, func(e *dom.Element) {
			if organizer != "" {
				return
			}
			parent := e.Parent()
			if parent == nil {
				return
			}
			sibling := parent.Next()
			for i := 0; i < 5 && sibling != nil; i++ {
				text := sibling.Text()
				if len(text) > 2 && !strings.Contains(text, "Contact") && !strings.Contains(text, "Report") {
					organizer = text
					break
				}
				sibling = sibling.Next()
			}
		})
	}
	return organizer
}

// organizerFromHostedBySection finds the exact "Hosted By" label, walks up
// two parents, and takes the first name-classed element inside; failing
// that, the container's next sibling stripped of action labels.
func organizerFromHostedBySection(doc *dom.Document) string {
	organizer := ""
	doc.EachWithExactText("*", "Hosted By", func(e *dom.Element) {
		if organizer != "" {
			return
		}
		container := e.Ancestor(2)
		if container == nil {
			return
		}

		container.EachUntil(`div[class*="name"], div[class*="host-name"], div[class*="person"]`, func(c *dom.Element) bool {
			organizer = c.Text()
			return false
		})
		if organizer != "" {
			return
		}

		if sibling := container.Next(); sibling != nil {
			text := sibling.Text()
			if text != "" {
				text = strings.ReplaceAll(text, "Contact", "")
				text = strings.ReplaceAll(text, "Report", "")
				organizer = strings.TrimSpace(text)
			}
		}
	})
	return organizer
}

// organizerFromHostedByPrefix handles inline "Hosted by Name & Name" text:
// the remainder after the label, cut at the first " & ".
func organizerFromHostedByPrefix(doc *dom.Document) string {
	organizer := ""
	doc.EachDeepestWithText("Hosted by", func(e *dom.Element) {
		if organizer != "" {
			return
		}
		text := e.Text()
		if !strings.HasPrefix(text, "Hosted by") {
			return
		}
		rest := strings.TrimSpace(strings.TrimPrefix(text, "Hosted by"))
		if len(rest) > 2 {
			organizer = strings.TrimSpace(strings.SplitN(rest, " & ", 2)[0])
		}
	})
	return organizer
}
