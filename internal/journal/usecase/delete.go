package usecase

import (
	"context"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
	"looking-glass/pkg/log"
)

// Delete asks for confirmation, then removes the entry remotely and locally.
func (uc *implUseCase) Delete(ctx context.Context, input journal.DeleteInput) error {
	ctx = log.WithFields(ctx, "id", input.ID)
	if input.Confirmer == nil {
		return journal.ErrConfirmationRequired
	}

	ok, err := input.Confirmer.Confirm(ctx, journal.DeletePrompt)
	if err != nil {
		return err
	}
	if !ok {
		return journal.ErrCancelled
	}

	if err := uc.repo.DeleteLog(ctx, input.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteLog: %v", err)
		return err
	}

	uc.commit(func(cur []model.LogEntry) ([]model.LogEntry, bool) {
		i := indexOf(cur, input.ID)
		if i < 0 {
			return cur, false
		}
		next := make([]model.LogEntry, 0, len(cur)-1)
		next = append(next, cur[:i]...)
		return append(next, cur[i+1:]...), true
	})
	return nil
}
