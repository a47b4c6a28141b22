// Package server exposes the scraper over a minimal JSON API:
// POST /api/scrape-event with {"url": "..."} returns the extracted event
// record. Scrape failures come back as 400 with an error body, never as a
// panic or a 500, since the extractor itself cannot fail.
package server
