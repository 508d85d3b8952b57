package usecase

import (
	"looking-glass/internal/journal"
	"looking-glass/internal/model"
)

func indexOf(entries []model.LogEntry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// uniqueByID keeps the first occurrence of every id so the collection never
// holds duplicates, even if the server sends some.
func uniqueByID(entries []model.LogEntry) ([]model.LogEntry, int) {
	seen := make(map[string]bool, len(entries))
	out := make([]model.LogEntry, 0, len(entries))
	dropped := 0
	for _, e := range entries {
		if seen[e.ID] {
			dropped++
			continue
		}
		seen[e.ID] = true
		out = append(out, e.Clone())
	}
	return out, dropped
}

// prepend puts e first. An entry with the same id is removed from its old position.
func prepend(entries []model.LogEntry, e model.LogEntry) []model.LogEntry {
	out := make([]model.LogEntry, 0, len(entries)+1)
	out = append(out, e.Clone())
	for _, cur := range entries {
		if cur.ID != e.ID {
			out = append(out, cur)
		}
	}
	return out
}

func cloneSnapshot(s journal.Snapshot) journal.Snapshot {
	entries := make([]model.LogEntry, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = e.Clone()
	}
	return journal.Snapshot{Version: s.Version, Entries: entries}
}
