package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Heuristics tunes the platform-specific extraction rules.
type Heuristics struct {
	// TermDates maps a term code appearing in an event title to a fixed
	// date phrase for that event series. Lu.ma pages for term-coded series
	// often omit the date from the markup entirely.
	TermDates map[string]string `yaml:"term_dates"`

	// ArriveByEndHour is the end hour (PM) assumed for evening socials that
	// say "arrive by N" instead of publishing an end time.
	ArriveByEndHour int `yaml:"arrive_by_end_hour"`

	// DefaultDurationHours is added to a lone start time to synthesize an
	// end time.
	DefaultDurationHours int `yaml:"default_duration_hours"`

	// MaxEndHour caps synthesized end hours on the 12-hour clock.
	MaxEndHour int `yaml:"max_end_hour"`
}

// Default returns the built-in heuristics matching the Lu.ma pages this
// scraper was tuned against.
func Default() *Heuristics {
	return &Heuristics{
		TermDates: map[string]string{
			// Trinity Term 2025 series events all ran on the same evening.
			"TT25": "Tuesday, May 20",
		},
		ArriveByEndHour:      10,
		DefaultDurationHours: 3,
		MaxEndHour:           12,
	}
}

// Load reads a YAML heuristics file and overlays it on the defaults. Zero or
// missing values keep their defaults; term_dates replaces the default table
// entirely when present.
func Load(path string) (*Heuristics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading heuristics config: %w", err)
	}

	var loaded Heuristics
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing heuristics config: %w", err)
	}

	cfg := Default()
	if loaded.TermDates != nil {
		cfg.TermDates = loaded.TermDates
	}
	if loaded.ArriveByEndHour > 0 {
		cfg.ArriveByEndHour = loaded.ArriveByEndHour
	}
	if loaded.DefaultDurationHours > 0 {
		cfg.DefaultDurationHours = loaded.DefaultDurationHours
	}
	if loaded.MaxEndHour > 0 {
		cfg.MaxEndHour = loaded.MaxEndHour
	}
	return cfg, nil
}

// TermDate returns the fixed date for the first term code contained in
// title, if any. Codes are checked in sorted order so the result is
// deterministic when several codes match.
func (h *Heuristics) TermDate(title string) (string, bool) {
	codes := make([]string, 0, len(h.TermDates))
	for code := range h.TermDates {
		if code != "" {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	for _, code := range codes {
		if strings.Contains(title, code) {
			return h.TermDates[code], true
		}
	}
	return "", false
}
