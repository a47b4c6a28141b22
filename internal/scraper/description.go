package scraper

import (
	"strings"

	"github.com/pfrederiksen/luma-events/internal/dom"
	"github.com/pfrederiksen/luma-events/internal/event"
)

// descriptionKeyPhrases are scanned in order by the second-priority finder;
// the first phrase that yields anything stops the scan.
var descriptionKeyPhrases = []string{
	"arrive by",
	"start at",
	"event details",
	"about this event",
}

// findDescription locates the event description through five priority tiers,
// from the explicit "About Event" section down to any sufficiently long leaf
// container. Collected texts are joined with blank lines.
func findDescription(doc *dom.Document) string {
	collected := []string{}
	seen := map[string]bool{}

	collect := func(text string) {
		if text != "" && !seen[text] {
			seen[text] = true
			collected = append(collected, text)
		}
	}

	// Priority 1: paragraphs under an "About Event" header's container.
	doc.Each("h2, h3, div", func(e *dom.Element) {
		if !strings.Contains(e.Text(), "About Event") {
			return
		}
		parent := e.Parent()
		if parent == nil {
			return
		}
		parent.Each("p", func(p *dom.Element) {
			collect(p.Text())
		})
	})

	// Priority 2: paragraphs or divs carrying one of the key phrases.
	if len(collected) == 0 {
		for _, phrase := range descriptionKeyPhrases {
			doc.Each("p, div", func(e *dom.Element) {
				text := e.Text()
				if len(text) > 20 && strings.Contains(strings.ToLower(text), phrase) {
					collect(text)
				}
			})
			if len(collected) > 0 {
				break
			}
		}
	}

	// Priority 3: an agenda block's full text.
	if len(collected) == 0 {
		doc.EachUntil("div", func(e *dom.Element) bool {
			text := e.Text()
			if strings.Contains(text, "Agenda:") {
				collect(text)
				return false
			}
			return true
		})
	}

	// Priority 4: the first substantial paragraph that is not a field label.
	if len(collected) == 0 {
		doc.EachUntil("p", func(e *dom.Element) bool {
			text := e.Text()
			if len(text) > 40 && !reservedLabelPattern.MatchString(text) {
				collect(text)
				return false
			}
			return true
		})
	}

	// Priority 5: the first long leaf container.
	if len(collected) == 0 {
		doc.EachUntil("div", func(e *dom.Element) bool {
			if e.HasChildren("p, div") {
				return true
			}
			text := e.Text()
			if len(text) > 50 && !reservedLabelPattern.MatchString(text) {
				collect(text)
				return false
			}
			return true
		})
	}

	if len(collected) == 0 {
		return event.NoDescription
	}
	return strings.Join(collected, "\n\n")
}
