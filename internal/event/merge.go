package event

// Merge combines a layout-heuristic base record with a structured-data
// overlay. Overlay fields win only when they carry real signal; the base is
// never fully discarded. URL is always the base's (the input URL is never
// overwritten) and Hosts are heuristic-only, since structured data on this
// platform does not enumerate hosts separately from the organizer.
func Merge(base, overlay *Record) *Record {
	if base == nil {
		base = NewRecord("")
	}
	if overlay == nil {
		return base
	}

	merged := *base
	if meaningful(overlay.Name) {
		merged.Name = overlay.Name
	}
	if meaningful(overlay.Date) {
		merged.Date = overlay.Date
	}
	if meaningful(overlay.Time) {
		merged.Time = overlay.Time
	}
	if meaningful(overlay.Location) {
		merged.Location = overlay.Location
	}
	if meaningful(overlay.Description) {
		merged.Description = overlay.Description
	}
	if meaningful(overlay.Organizer) {
		merged.Organizer = overlay.Organizer
	}
	return &merged
}
