package usecase

import (
	"sync"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
)

// Snapshot returns a copy of the current collection.
func (uc *implUseCase) Snapshot() journal.Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// Subscribe registers fn to receive the collection after every change.
// Listeners run on the goroutine that made the change, after the store lock
// is released; use Snapshot.Version to drop stale deliveries.
func (uc *implUseCase) Subscribe(fn func(journal.Snapshot)) func() {
	uc.mu.Lock()
	id := uc.nextID
	uc.nextID++
	uc.listeners[id] = fn
	uc.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			uc.mu.Lock()
			delete(uc.listeners, id)
			uc.mu.Unlock()
		})
	}
}

// commit applies mutate to the collection. When mutate reports a change the
// version is bumped and listeners are notified.
func (uc *implUseCase) commit(mutate func([]model.LogEntry) ([]model.LogEntry, bool)) (journal.Snapshot, bool) {
	uc.mu.Lock()
	next, changed := mutate(uc.entries)
	if !changed {
		snap := uc.snapshotLocked()
		uc.mu.Unlock()
		return snap, false
	}
	uc.entries = next
	uc.version++
	snap := uc.snapshotLocked()
	listeners := make([]func(journal.Snapshot), 0, len(uc.listeners))
	for _, fn := range uc.listeners {
		listeners = append(listeners, fn)
	}
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn(cloneSnapshot(snap))
	}
	return snap, true
}

func (uc *implUseCase) find(id string) (model.LogEntry, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if i := indexOf(uc.entries, id); i >= 0 {
		return uc.entries[i].Clone(), true
	}
	return model.LogEntry{}, false
}

// snapshotLocked must be called with mu held.
func (uc *implUseCase) snapshotLocked() journal.Snapshot {
	return cloneSnapshot(journal.Snapshot{Version: uc.version, Entries: uc.entries})
}
