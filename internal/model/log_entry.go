package model

// DateLayout is the calendar date format used for log dates on the wire.
const DateLayout = "2006-01-02"

// DefaultMood is applied when an entry is created without a mood.
const DefaultMood = "neutral"

// LogEntry is one journal record. The remote log API owns it; the client
// only caches it.
type LogEntry struct {
	ID        string   // server-assigned, immutable
	Title     string   // non-empty short text
	Entries   string   // free-text body, "-" prefixed lines are bullets
	LogDate   string   // calendar date in DateLayout
	Mood      string   // short label
	Tags      []string // trimmed, non-empty, lower-cased
	CreatedAt string   // server timestamp, display only
	UpdatedAt string   // server timestamp, display only
}

// Clone returns a deep copy so callers can't alias the tag slice.
func (e LogEntry) Clone() LogEntry {
	if e.Tags != nil {
		e.Tags = append(make([]string, 0, len(e.Tags)), e.Tags...)
	}
	return e
}
