// Package dom wraps goquery behind the narrow "queryable document"
// capability the extraction heuristics need: tag queries, class-fragment
// matching, text predicates, trimmed text, and ancestor/sibling walking.
// Keeping the extractors off the parser API directly makes each heuristic
// testable against in-memory fixtures.
package dom
