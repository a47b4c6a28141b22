package event

import "testing"

func TestMergePrefersStructuredWhenPresent(t *testing.T) {
	base := NewRecord("https://lu.ma/x")
	base.Location = "A"
	base.Name = "Heuristic Title"

	overlay := NewRecord("https://lu.ma/other")
	overlay.Location = "B"

	merged := Merge(base, overlay)

	if merged.Location != "B" {
		t.Errorf("expected structured location to win, got %q", merged.Location)
	}
	if merged.Name != "Heuristic Title" {
		t.Errorf("expected heuristic name to survive, got %q", merged.Name)
	}
	if merged.URL != "https://lu.ma/x" {
		t.Errorf("input URL must never be overwritten, got %q", merged.URL)
	}
}

func TestMergeKeepsHeuristicWhenStructuredEmpty(t *testing.T) {
	base := NewRecord("https://lu.ma/x")
	base.Location = "A"

	overlay := NewRecord("https://lu.ma/x")
	overlay.Location = ""

	if merged := Merge(base, overlay); merged.Location != "A" {
		t.Errorf("expected heuristic location kept, got %q", merged.Location)
	}
}

func TestMergeTreatsSentinelsAsAbsent(t *testing.T) {
	base := NewRecord("https://lu.ma/x")
	base.Organizer = "Acme Labs"
	base.Location = "London"

	overlay := NewRecord("https://lu.ma/x")
	overlay.Organizer = NotSpecified
	overlay.Location = OnlineOrNotSpecified

	merged := Merge(base, overlay)
	if merged.Organizer != "Acme Labs" {
		t.Errorf("sentinel organizer should not clobber a real one, got %q", merged.Organizer)
	}
	if merged.Location != "London" {
		t.Errorf("sentinel location should not clobber a real one, got %q", merged.Location)
	}
}

func TestMergeHostsAreHeuristicOnly(t *testing.T) {
	base := NewRecord("https://lu.ma/x")
	base.Hosts = []string{"Jane Doe", "John Smith"}

	overlay := NewRecord("https://lu.ma/x")

	merged := Merge(base, overlay)
	if len(merged.Hosts) != 2 {
		t.Errorf("hosts must be untouched by merge, got %v", merged.Hosts)
	}
}

func TestMergeNilOverlay(t *testing.T) {
	base := NewRecord("https://lu.ma/x")
	base.Name = "Launch Night"

	if merged := Merge(base, nil); merged.Name != "Launch Night" {
		t.Errorf("nil overlay should return the base, got %+v", merged)
	}
}
