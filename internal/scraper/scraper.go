package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pfrederiksen/luma-events/internal/config"
	"github.com/pfrederiksen/luma-events/internal/dom"
	"github.com/pfrederiksen/luma-events/internal/event"
)

const (
	// UserAgent mimics a desktop browser; Lu.ma serves a reduced page to
	// obvious bots.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	Timeout   = 30 * time.Second
)

// Scraper fetches Lu.ma event pages and extracts normalized event records.
// It holds no per-call state, so one Scraper is safe for concurrent use.
type Scraper struct {
	client *http.Client
	cfg    *config.Heuristics
}

// New creates a Scraper with the default heuristics.
func New() *Scraper {
	return NewWithConfig(config.Default())
}

// NewWithConfig creates a Scraper with custom heuristic tuning.
func NewWithConfig(cfg *config.Heuristics) *Scraper {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		cfg: cfg,
	}
}

// SetTimeout overrides the default fetch timeout.
func (s *Scraper) SetTimeout(d time.Duration) {
	s.client.Timeout = d
}

// ScrapeEvent fetches url and extracts its event record. It never returns an
// error: fetch or parse failures are surfaced on the record's Error field
// with Hosts empty, and a page with no extractable signal at all yields the
// "No event data found" shape.
func (s *Scraper) ScrapeEvent(url string) *event.Record {
	html, err := s.fetch(url)
	if err != nil {
		return event.ErrorRecord(url, "Failed to fetch page: "+err.Error())
	}
	return s.Extract(url, html)
}

// Extract runs both extraction passes over an already-fetched page. Exposed
// separately so callers with their own fetch layer (and tests) can feed raw
// HTML.
func (s *Scraper) Extract(url, html string) *event.Record {
	doc, err := dom.Parse(html)
	if err != nil {
		return event.ErrorRecord(url, "Failed to fetch page: "+err.Error())
	}

	// Both passes run independently over the same parsed document; the
	// heuristic record is the base and structured values win when present.
	structured := extractStructuredEvent(doc, url)
	heuristic := extractFromLayout(doc, url, s.cfg)

	merged := event.Merge(heuristic, structured)
	if merged.IsEmpty() {
		return event.ErrorRecord(url, "No event data found")
	}
	return merged
}

// fetch retrieves the raw HTML for url.
func (s *Scraper) fetch(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(body), nil
}
