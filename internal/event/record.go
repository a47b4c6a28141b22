package event

// Sentinel values the extractors emit when a field is probed but carries no
// real signal. They count as empty for merge precedence and for the
// no-data check.
const (
	NotSpecified         = "Not specified"
	NoDescription        = "No description available"
	LocationNotSpecified = "Location not specified"
	OnlineOrNotSpecified = "Online or Not specified"
)

// Record is the normalized output of one scrape. Date and Time are
// best-effort strings, not guaranteed ISO; callers interpret them further.
type Record struct {
	URL         string   `json:"url"`
	Name        string   `json:"name,omitempty"`
	Date        string   `json:"date,omitempty"`
	Time        string   `json:"time,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Organizer   string   `json:"organizer,omitempty"`
	Hosts       []string `json:"hosts"`
	Error       string   `json:"error,omitempty"`
}

// NewRecord creates an empty Record for url. Hosts is always a non-nil slice
// so the JSON shape carries [] rather than null.
func NewRecord(url string) *Record {
	return &Record{
		URL:   url,
		Hosts: []string{},
	}
}

// ErrorRecord creates the failure shape: url, the error message, empty hosts,
// all other fields absent.
func ErrorRecord(url, msg string) *Record {
	return &Record{
		URL:   url,
		Hosts: []string{},
		Error: msg,
	}
}

// meaningful reports whether value carries real signal, i.e. is neither empty
// nor one of the sentinel defaults.
func meaningful(value string) bool {
	switch value {
	case "", NotSpecified, NoDescription, LocationNotSpecified, OnlineOrNotSpecified:
		return false
	}
	return true
}

// IsEmpty reports whether the record carries no usable event data at all.
// Sentinel defaults ("Not specified" etc.) do not count as data.
func (r *Record) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Name == "" &&
		r.Date == "" &&
		r.Time == "" &&
		!meaningful(r.Location) &&
		!meaningful(r.Description) &&
		!meaningful(r.Organizer) &&
		len(r.Hosts) == 0
}
