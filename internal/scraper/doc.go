// Package scraper extracts a normalized event record from a Lu.ma event
// page. It runs two independent extraction passes over the same parsed
// document, one reading structured data (JSON-LD) and one applying layout
// heuristics, and merges them, preferring structured values when present.
//
// The heuristics are tuned to Lu.ma's markup conventions (utility class
// fragments, "Hosted By" sections, "arrive by" phrasing) and are not a
// general-purpose scraper. Every extraction step is total: a step that finds
// nothing leaves its field unset, and only the top-level fetch can fail,
// which is converted to the record's error field rather than returned.
package scraper
