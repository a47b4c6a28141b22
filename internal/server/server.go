package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pfrederiksen/luma-events/internal/event"
	"github.com/pfrederiksen/luma-events/internal/logger"
)

// EventScraper is the capability the server needs from the extractor.
type EventScraper interface {
	ScrapeEvent(url string) *event.Record
}

// Server handles scrape requests over HTTP.
type Server struct {
	scraper EventScraper
}

// ScrapeRequest is the POST /api/scrape-event body.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ErrorResponse is the body of 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// New creates a Server around the given scraper.
func New(scraper EventScraper) *Server {
	return &Server{scraper: scraper}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scrape-event", s.handleScrapeEvent)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// handleScrapeEvent scrapes the requested URL and returns the record as
// JSON. A record carrying an extraction error maps to 400, matching the
// never-throws contract of the scraper itself.
func (s *Server) handleScrapeEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	start := time.Now()
	rec := s.scraper.ScrapeEvent(req.URL)
	logger.RecordTiming("scrape.duration", time.Since(start))

	if rec.Error != "" {
		logger.IncrCounter("scrape.error")
		logger.Warn("Scrape returned no event", logger.Fields{
			"url":   req.URL,
			"error": rec.Error,
		})
		writeError(w, http.StatusBadRequest, rec.Error)
		return
	}

	logger.IncrCounter("scrape.success")
	logger.Info("Scraped event page", logger.Fields{
		"url":   req.URL,
		"name":  rec.Name,
		"hosts": len(rec.Hosts),
	})
	writeJSON(w, http.StatusOK, rec)
}

// handleHealth reports liveness and current scrape metrics.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"metrics": logger.GetMetricsSnapshot(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Encoding response failed", nil, err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
