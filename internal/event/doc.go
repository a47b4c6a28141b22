// Package event defines the Record type produced by the Lu.ma scraper and the
// merge controller that reconciles structured-data and layout-heuristic
// extraction results.
//
// A Record is best-effort: absent fields mean "not detected", not
// "failed". Exactly one of {a populated record} or {Error set with empty
// Hosts} is ever produced for a scrape, and Records are not mutated after
// being returned.
package event
