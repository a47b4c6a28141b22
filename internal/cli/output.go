package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/luma-events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteRecord writes the record in the specified format
func WriteRecord(w io.Writer, rec *event.Record, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rec)
	case FormatText:
		return writeText(w, rec)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the record as indented JSON
func writeJSON(w io.Writer, rec *event.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rec)
}

// writeText outputs the record as human-readable text
func writeText(w io.Writer, rec *event.Record) error {
	if rec.Error != "" {
		fmt.Fprintf(w, "URL:   %s\n", rec.URL)
		fmt.Fprintf(w, "Error: %s\n", rec.Error)
		return nil
	}

	fmt.Fprintf(w, "URL:       %s\n", rec.URL)
	writeField(w, "Name", rec.Name)
	writeField(w, "Date", rec.Date)
	writeField(w, "Time", rec.Time)
	writeField(w, "Location", rec.Location)
	writeField(w, "Organizer", rec.Organizer)

	if len(rec.Hosts) > 0 {
		fmt.Fprintf(w, "Hosts:     %s\n", strings.Join(rec.Hosts, ", "))
	}

	if rec.Description != "" {
		fmt.Fprintf(w, "\n%s\n", rec.Description)
	}
	return nil
}

// writeField prints one labeled field, skipping absent values.
func writeField(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%-10s %s\n", label+":", value)
}
