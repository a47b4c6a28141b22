package scraper

import (
	"strings"

	"github.com/pfrederiksen/luma-events/internal/dom"
)

// nameSeparators are checked in priority order; the first one present in a
// host string is the one split on.
var nameSeparators = []string{", ", " & ", " and "}

// findHosts collects individual host names through four strategies of
// decreasing markup specificity. A single seen set spans all strategies, so
// a name surfacing in more than one container is kept once.
func findHosts(doc *dom.Document) []string {
	hosts := []string{}
	seen := map[string]bool{}

	add := func(name string) {
		name = strings.TrimSpace(name)
		if len(name) > 2 && !seen[name] {
			seen[name] = true
			hosts = append(hosts, name)
		}
	}
	addSplit := func(text string) {
		for _, name := range SplitHostNames(text) {
			add(name)
		}
	}

	// Strategy A: name-classed elements inside the "Hosted By" section.
	// These are already individual names, so no splitting.
	doc.EachWithExactText("*", "Hosted By", func(e *dom.Element) {
		container := e.Ancestor(2)
		if container == nil {
			return
		}
		container.Each(`div[class*="name"], div[class*="host"], div[class*="person"]`, func(h *dom.Element) {
			add(h.Text())
		})
	})

	// Strategy B: siblings following the "Hosted By" label, split in case
	// several names share one node.
	if len(hosts) == 0 {
		doc.EachWithExactText("*", "Hosted By", func(e *dom.Element) {
			sibling := e.Next()
			for i := 0; i < 10 && sibling != nil; i++ {
				text := sibling.Text()
				if len(text) > 2 && !seen[text] {
					addSplit(text)
				}
				sibling = sibling.Next()
			}
		})
	}

	// Strategy C: a "Host"/"Hosts"/"Hosted By" heading's parent, scanning
	// every other text-bearing descendant.
	if len(hosts) == 0 {
		doc.Each("h3, h4, div", func(e *dom.Element) {
			text := e.Text()
			if text != "Host" && text != "Hosts" && text != "Hosted By" {
				return
			}
			parent := e.Parent()
			if parent == nil {
				return
			}
			parent.Each("div, span, p", func(c *dom.Element) {
				if c.Equals(e) {
					return
				}
				name := c.Text()
				if len(name) > 2 && !strings.Contains(name, "Contact") &&
					!strings.Contains(name, "Report") && !seen[name] {
					addSplit(name)
				}
			})
		})
	}

	// Strategy D: last resort, every div under the "Hosted By" section's
	// grandparent.
	if len(hosts) == 0 {
		doc.EachWithExactText("div", "Hosted By", func(e *dom.Element) {
			container := e.Ancestor(2)
			if container == nil {
				return
			}
			container.Each("div", func(c *dom.Element) {
				text := c.Text()
				if text != "Hosted By" && len(text) > 2 && !seen[text] {
					addSplit(text)
				}
			})
		})
	}

	return hosts
}

// SplitHostNames splits a string that may hold several host names: on the
// first matching separator if one is present, or by de-concatenating
// PascalCase runs like "SeyiOluwasanmiKofiSiaw" into two-word "First Last"
// groups. A string with no recognizable structure comes back as-is.
func SplitHostNames(text string) []string {
	if text == "" {
		return []string{}
	}

	for _, sep := range nameSeparators {
		if !strings.Contains(text, sep) {
			continue
		}
		parts := strings.Split(text, sep)
		names := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
		return names
	}

	if words := splitPascalCase(text); words != nil {
		return groupNamePairs(words)
	}

	return []string{text}
}

// splitPascalCase splits concatenated capitalized names at every
// lowercase-to-uppercase boundary. Returns nil unless the text starts like a
// name (capital then lowercase) and carries more than two capitals overall.
func splitPascalCase(text string) []string {
	runes := []rune(text)
	if len(runes) < 2 || !isUpper(runes[0]) || !isLower(runes[1]) {
		return nil
	}
	uppers := 0
	for _, r := range runes {
		if isUpper(r) {
			uppers++
		}
	}
	if uppers <= 2 {
		return nil
	}

	var b strings.Builder
	for i, r := range runes {
		if i > 0 && isUpper(r) && isLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	words := strings.Fields(b.String())
	if len(words) <= 1 {
		return nil
	}
	return words
}

// groupNamePairs joins a word list two at a time into likely "First Last"
// names; a trailing odd word stands alone.
func groupNamePairs(words []string) []string {
	names := make([]string, 0, (len(words)+1)/2)
	for i := 0; i < len(words); i += 2 {
		if i+1 < len(words) {
			names = append(names, words[i]+" "+words[i+1])
		} else {
			names = append(names, words[i])
		}
	}
	return names
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
