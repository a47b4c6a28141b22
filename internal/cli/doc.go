// Package cli implements the command-line interface for luma-events.
//
// The cli package provides the Cobra-based CLI that scrapes a single Lu.ma
// event page, prints the extracted record as text or JSON, and optionally
// exports it as an iCalendar file. Heuristic tuning (term-date overrides,
// synthesized durations) can be loaded from a YAML file.
package cli
