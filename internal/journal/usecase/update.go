package usecase

import (
	"context"

	"looking-glass/internal/journal"
	repo "looking-glass/internal/journal/repository"
	"looking-glass/internal/model"
	"looking-glass/pkg/log"
)

// Update sends a full replacement for a known entry, keeping its log date.
// The local copy changes only after the server confirms.
func (uc *implUseCase) Update(ctx context.Context, input journal.UpdateInput) (journal.UpdateOutput, error) {
	ctx = log.WithFields(ctx, "id", input.ID)
	revised, err := journal.ValidateUpdateInput(input.Raw)
	if err != nil {
		return journal.UpdateOutput{}, err
	}

	current, ok := uc.find(input.ID)
	if !ok {
		return journal.UpdateOutput{}, journal.ErrEntryNotFound
	}

	returned, err := uc.repo.UpdateLog(ctx, repo.UpdateLogOptions{
		ID:      input.ID,
		Title:   revised.Title,
		Entries: revised.Entries,
		Mood:    revised.Mood,
		Tags:    revised.Tags,
		LogDate: current.LogDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateLog: %v", err)
		return journal.UpdateOutput{}, err
	}

	var merged model.LogEntry
	snap, changed := uc.commit(func(cur []model.LogEntry) ([]model.LogEntry, bool) {
		i := indexOf(cur, input.ID)
		if i < 0 {
			return cur, false
		}
		next := append([]model.LogEntry(nil), cur...)
		merged = mergeUpdate(next[i], revised, returned)
		next[i] = merged
		return next, true
	})
	if !changed {
		// Removed locally while the request was in flight.
		merged = mergeUpdate(current, revised, returned)
		uc.l.Warnf(ctx, "uc.Update: entry %s left the collection during update", input.ID)
	}

	return journal.UpdateOutput{Entry: merged.Clone(), Snapshot: snap}, nil
}

// mergeUpdate applies the submitted fields over the local copy. Fields not in
// the payload are kept; a server echo only contributes its updated_at.
func mergeUpdate(local model.LogEntry, revised journal.ValidatedUpdate, returned model.LogEntry) model.LogEntry {
	local.Title = revised.Title
	local.Entries = revised.Entries
	local.Mood = revised.Mood
	local.Tags = append([]string{}, revised.Tags...)
	if returned.ID == local.ID && returned.UpdatedAt != "" {
		local.UpdatedAt = returned.UpdatedAt
	}
	return local
}
