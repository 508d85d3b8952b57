package usecase

import (
	"context"

	"looking-glass/internal/journal"
	repo "looking-glass/internal/journal/repository"
	"looking-glass/internal/model"
	"looking-glass/pkg/log"
)

// Create validates the raw input, sends it, and reconciles the collection
// according to the outcome tag: an echoed entry is prepended, anything
// ambiguous triggers a full reload.
func (uc *implUseCase) Create(ctx context.Context, input journal.CreateInput) (journal.CreateOutput, error) {
	entry, err := journal.ValidateEntryInput(input.Raw, uc.dates, uc.now())
	if err != nil {
		return journal.CreateOutput{}, err
	}

	outcome, err := uc.repo.CreateLog(ctx, repo.CreateLogOptions{
		Title:   entry.Title,
		Entries: entry.Entries,
		Mood:    entry.Mood,
		Tags:    entry.Tags,
		LogDate: entry.LogDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateLog: %v", err)
		return journal.CreateOutput{}, err
	}

	ctx = log.WithFields(ctx, "outcome", outcome.Kind.String())
	out := journal.CreateOutput{Outcome: outcome}

	if !outcome.Kind.NeedsResync() {
		out.Snapshot, _ = uc.commit(func(cur []model.LogEntry) ([]model.LogEntry, bool) {
			return prepend(cur, outcome.Entry), true
		})
		return out, nil
	}

	uc.l.Infof(ctx, "uc.Create: %s, reloading collection", outcome.Kind)
	snap, err := uc.Load(ctx)
	if err != nil {
		// The entry exists remotely; only the local view is stale.
		out.Snapshot = snap
		return out, nil
	}
	out.Resynced = true
	out.Snapshot = snap
	return out, nil
}
