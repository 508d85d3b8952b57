package journal

import "looking-glass/internal/model"

// DeletePrompt is the question shown before a delete.
const DeletePrompt = "Are you sure you want to delete this entry?"

// --- Local state ---

// Snapshot is an immutable copy of the client collection. Version grows by
// one with every local change.
type Snapshot struct {
	Version uint64
	Entries []model.LogEntry
}

// Find returns the entry with id, if present.
func (s Snapshot) Find(id string) (model.LogEntry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.LogEntry{}, false
}

// --- Raw input, as collected by a view ---

// RawEntryInput holds unvalidated strings for a new entry. Tags is the
// comma-delimited user input; Date may be empty or a date expression.
type RawEntryInput struct {
	Title   string
	Entries string
	Mood    string
	Tags    string
	Date    string
}

// RawUpdateInput holds unvalidated strings for revising an entry.
type RawUpdateInput struct {
	Title   string
	Entries string
	Mood    string
	Tags    string
}

// ValidatedEntry is a candidate entry ready to be sent.
type ValidatedEntry struct {
	Title   string
	Entries string
	Mood    string
	Tags    []string
	LogDate string
}

// ValidatedUpdate holds the revised fields of an entry.
type ValidatedUpdate struct {
	Title   string
	Entries string
	Mood    string
	Tags    []string
}

// --- UseCase Inputs ---

type CreateInput struct {
	Raw RawEntryInput
}

type UpdateInput struct {
	ID  string
	Raw RawUpdateInput
}

type DeleteInput struct {
	ID        string
	Confirmer Confirmer
}

// --- UseCase Outputs ---

// CreateOutcomeKind tags how the server answered a successful create.
type CreateOutcomeKind int

const (
	// CreatedWithBody: the server returned the created entry, which was prepended.
	CreatedWithBody CreateOutcomeKind = iota + 1
	// CreatedEmptyBody: no body came back, the collection was reloaded.
	CreatedEmptyBody
	// CreatedUndecodable: the body was not an entry, the collection was reloaded.
	CreatedUndecodable
)

func (k CreateOutcomeKind) String() string {
	switch k {
	case CreatedWithBody:
		return "created-with-body"
	case CreatedEmptyBody:
		return "created-empty-body"
	case CreatedUndecodable:
		return "created-undecodable"
	default:
		return "unknown"
	}
}

// NeedsResync reports whether the local collection must be reloaded.
func (k CreateOutcomeKind) NeedsResync() bool {
	return k == CreatedEmptyBody || k == CreatedUndecodable
}

// CreateOutcome is what the remote side reported for a create.
// Entry is set only for CreatedWithBody.
type CreateOutcome struct {
	Kind  CreateOutcomeKind
	Entry model.LogEntry
}

type CreateOutput struct {
	Outcome  CreateOutcome
	Resynced bool // a reload after an ambiguous answer succeeded
	Snapshot Snapshot
}

type UpdateOutput struct {
	Entry    model.LogEntry
	Snapshot Snapshot
}

// APIInfo describes the remote API.
type APIInfo struct {
	Name        string
	Version     string
	Description string
	Status      string
	BaseURL     string
}

// TagCount is one tag and how many entries carry it.
type TagCount struct {
	Tag   string
	Count int
}
