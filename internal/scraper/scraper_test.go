package scraper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "fixtures", name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return string(data)
}

func TestExtractSampleEvent(t *testing.T) {
	html := loadFixture(t, "sample_event.html")
	rec := New().Extract("https://lu.ma/launch-night", html)

	if rec.Error != "" {
		t.Fatalf("unexpected error: %q", rec.Error)
	}
	if rec.Name != "Launch Night" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Date != "Tuesday, May 20, 2025" {
		t.Errorf("Date = %q", rec.Date)
	}
	if rec.Time != "7:00 PM - 10:00 PM" {
		t.Errorf("Time = %q", rec.Time)
	}
	if rec.Location != "Shoreditch Studios, London" {
		t.Errorf("Location = %q", rec.Location)
	}
	if rec.Organizer != "Acme Labs" {
		t.Errorf("Organizer = %q", rec.Organizer)
	}
	if !strings.Contains(rec.Description, "arrive by 7") {
		t.Errorf("Description = %q", rec.Description)
	}
	if rec.Hosts == nil || len(rec.Hosts) != 0 {
		t.Errorf("Hosts = %#v, expected empty non-nil slice", rec.Hosts)
	}
}

func TestExtractStructuredWinsOverLayout(t *testing.T) {
	// The structured block names the event; a conflicting page heading loses.
	html := `<html><head>
	<script type="application/ld+json">{"@type": "Event", "name": "Launch Night"}</script>
	</head><body><h1>You're Invited</h1></body></html>`

	rec := New().Extract("https://lu.ma/x", html)
	if rec.Name != "Launch Night" {
		t.Errorf("Name = %q, expected structured value to win", rec.Name)
	}
}

func TestExtractLayoutFillsStructuredGaps(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{"@type": "Event", "name": "Launch Night"}</script>
	</head><body>
	<h1>Launch Night</h1>
	<p>Please arrive by 7 so we can start the demos on time.</p>
	</body></html>`

	rec := New().Extract("https://lu.ma/x", html)
	if rec.Time != "7:00 PM - 10:00 PM" {
		t.Errorf("Time = %q, expected layout value to fill the gap", rec.Time)
	}
}

func TestExtractNoData(t *testing.T) {
	rec := New().Extract("https://lu.ma/empty", "<html><body></body></html>")

	if rec.Error != "No event data found" {
		t.Errorf("Error = %q", rec.Error)
	}
	if rec.URL != "https://lu.ma/empty" {
		t.Errorf("URL = %q", rec.URL)
	}
	if rec.Hosts == nil || len(rec.Hosts) != 0 {
		t.Errorf("Hosts = %#v, expected empty non-nil slice", rec.Hosts)
	}
}

func TestExtractDeterministic(t *testing.T) {
	html := loadFixture(t, "sample_event.html")
	s := New()

	first := s.Extract("https://lu.ma/launch-night", html)
	for i := 0; i < 5; i++ {
		next := s.Extract("https://lu.ma/launch-night", html)
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d diverged:\nfirst: %+v\nnext:  %+v", i, first, next)
		}
	}
}

func TestScrapeEvent(t *testing.T) {
	html := loadFixture(t, "sample_event.html")
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(html))
	}))
	defer srv.Close()

	rec := New().ScrapeEvent(srv.URL)
	if rec.Error != "" {
		t.Fatalf("unexpected error: %q", rec.Error)
	}
	if rec.Name != "Launch Night" {
		t.Errorf("Name = %q", rec.Name)
	}
	if gotAgent != UserAgent {
		t.Errorf("User-Agent = %q", gotAgent)
	}
}

func TestScrapeEventServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := New().ScrapeEvent(srv.URL)
	if !strings.HasPrefix(rec.Error, "Failed to fetch page:") {
		t.Errorf("Error = %q", rec.Error)
	}
	if !strings.Contains(rec.Error, "500") {
		t.Errorf("Error = %q, expected the status code", rec.Error)
	}
	if rec.Hosts == nil || len(rec.Hosts) != 0 {
		t.Errorf("Hosts = %#v, expected empty non-nil slice", rec.Hosts)
	}
}

func TestScrapeEventUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := New().ScrapeEvent(url)
	if !strings.HasPrefix(rec.Error, "Failed to fetch page:") {
		t.Errorf("Error = %q", rec.Error)
	}
}
