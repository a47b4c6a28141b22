package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed HTML page. All queries walk the tree in document
// order, which several heuristics rely on (last-writer-wins scans).
type Document struct {
	doc *goquery.Document
}

// Element is a single node in the document.
type Element struct {
	sel *goquery.Selection
}

// Parse parses raw HTML into a Document.
func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// BodyText returns the full visible text of the page body.
func (d *Document) BodyText() string {
	return d.doc.Find("body").Text()
}

// Each visits every element matching the CSS selector in document order.
func (d *Document) Each(selector string, fn func(*Element)) {
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		fn(&Element{sel: sel})
	})
}

// EachUntil visits matching elements in document order until fn returns
// false.
func (d *Document) EachUntil(selector string, fn func(*Element) bool) {
	d.doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		return fn(&Element{sel: sel})
	})
}

// EachWithExactText visits every element matching selector whose trimmed
// text equals text.
func (d *Document) EachWithExactText(selector, text string, fn func(*Element)) {
	d.Each(selector, func(e *Element) {
		if e.Text() == text {
			fn(e)
		}
	})
}

// EachDeepestWithText visits, in document order, every element whose text
// contains substr while none of its child elements' text does, i.e. the
// innermost elements actually carrying the phrase. Without the depth check a
// phrase anywhere on the page would match html, body, and every wrapper
// above it.
func (d *Document) EachDeepestWithText(substr string, fn func(*Element)) {
	d.doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if !strings.Contains(sel.Text(), substr) {
			return
		}
		childHas := false
		sel.Children().Each(func(_ int, child *goquery.Selection) {
			if strings.Contains(child.Text(), substr) {
				childHas = true
			}
		})
		if !childHas {
			fn(&Element{sel: sel})
		}
	})
}

// Text returns the element's trimmed text content.
func (e *Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	return e.sel.AttrOr(name, "")
}

// ClassContains reports whether the element's class attribute contains any
// of the given fragments (case-insensitive substring match).
func (e *Element) ClassContains(fragments ...string) bool {
	class := strings.ToLower(e.Attr("class"))
	for _, f := range fragments {
		if strings.Contains(class, f) {
			return true
		}
	}
	return false
}

// Tag returns the element's lowercase tag name, or "" for non-element nodes.
func (e *Element) Tag() string {
	if len(e.sel.Nodes) == 0 {
		return ""
	}
	return strings.ToLower(e.sel.Nodes[0].Data)
}

// IsTag reports whether the element's tag name is one of the given names.
func (e *Element) IsTag(names ...string) bool {
	tag := e.Tag()
	for _, n := range names {
		if tag == n {
			return true
		}
	}
	return false
}

// Parent returns the element's parent, or nil at the tree root.
func (e *Element) Parent() *Element {
	p := e.sel.Parent()
	if p.Length() == 0 {
		return nil
	}
	return &Element{sel: p}
}

// Ancestor walks up n parent levels, or returns nil if the tree runs out.
func (e *Element) Ancestor(n int) *Element {
	cur := e
	for i := 0; i < n; i++ {
		cur = cur.Parent()
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Next returns the element's next sibling element, or nil.
func (e *Element) Next() *Element {
	n := e.sel.Next()
	if n.Length() == 0 {
		return nil
	}
	return &Element{sel: n}
}

// Each visits every descendant matching the CSS selector in document order.
func (e *Element) Each(selector string, fn func(*Element)) {
	e.sel.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		fn(&Element{sel: sel})
	})
}

// EachUntil visits matching descendants in document order until fn returns
// false.
func (e *Element) EachUntil(selector string, fn func(*Element) bool) {
	e.sel.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		return fn(&Element{sel: sel})
	})
}

// HasChildren reports whether the element has any descendant matching the
// selector.
func (e *Element) HasChildren(selector string) bool {
	return e.sel.Find(selector).Length() > 0
}

// Equals reports whether both handles reference the same underlying node.
func (e *Element) Equals(other *Element) bool {
	if other == nil {
		return false
	}
	return len(e.sel.Nodes) > 0 && len(other.sel.Nodes) > 0 &&
		e.sel.Nodes[0] == other.sel.Nodes[0]
}
