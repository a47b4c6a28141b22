package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pfrederiksen/luma-events/internal/event"
)

func sampleRecord() *event.Record {
	rec := event.NewRecord("https://lu.ma/launch-night")
	rec.Name = "Launch Night"
	rec.Date = "Tuesday, May 20"
	rec.Time = "7:00 PM - 10:00 PM"
	rec.Location = "Shoreditch Studios, London"
	rec.Organizer = "Acme Labs"
	rec.Hosts = []string{"Jane Doe", "John Smith"}
	rec.Description = "Demos from six early-stage teams."
	return rec
}

func TestWriteRecordText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecord(&buf, sampleRecord(), FormatText); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"URL:       https://lu.ma/launch-night",
		"Name:      Launch Night",
		"Date:      Tuesday, May 20",
		"Time:      7:00 PM - 10:00 PM",
		"Location:  Shoreditch Studios, London",
		"Organizer: Acme Labs",
		"Hosts:     Jane Doe, John Smith",
		"Demos from six early-stage teams.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestWriteRecordTextSkipsAbsentFields(t *testing.T) {
	rec := event.NewRecord("https://lu.ma/x")
	rec.Name = "Launch Night"

	var buf bytes.Buffer
	if err := WriteRecord(&buf, rec, FormatText); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Date:") || strings.Contains(out, "Hosts:") {
		t.Errorf("absent fields should be skipped:\n%s", out)
	}
}

func TestWriteRecordTextError(t *testing.T) {
	rec := event.ErrorRecord("https://lu.ma/x", "Failed to fetch page: boom")

	var buf bytes.Buffer
	if err := WriteRecord(&buf, rec, FormatText); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Error: Failed to fetch page: boom") {
		t.Errorf("missing error line:\n%s", out)
	}
	if strings.Contains(out, "Name:") {
		t.Errorf("error output should not include event fields:\n%s", out)
	}
}

func TestWriteRecordJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecord(&buf, sampleRecord(), FormatJSON); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	var decoded event.Record
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Name != "Launch Night" {
		t.Errorf("Name = %q", decoded.Name)
	}
	if len(decoded.Hosts) != 2 {
		t.Errorf("Hosts = %v", decoded.Hosts)
	}
}

func TestWriteRecordUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecord(&buf, sampleRecord(), OutputFormat("yaml")); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
