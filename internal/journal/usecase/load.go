package usecase

import (
	"context"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
)

// Load replaces the collection with the server's, in server order. On
// failure the collection is left as it was and the error is only logged
// here; callers decide whether to show it.
func (uc *implUseCase) Load(ctx context.Context) (journal.Snapshot, error) {
	entries, err := uc.repo.ListLogs(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Load ListLogs: %v", err)
		return uc.Snapshot(), err
	}

	fresh, dropped := uniqueByID(entries)
	if dropped > 0 {
		uc.l.Warnf(ctx, "uc.Load: dropped %d entries with duplicate ids", dropped)
	}

	snap, _ := uc.commit(func([]model.LogEntry) ([]model.LogEntry, bool) {
		return fresh, true
	})
	uc.l.Debugf(ctx, "uc.Load: %d entries at version %d", len(snap.Entries), snap.Version)
	return snap, nil
}
