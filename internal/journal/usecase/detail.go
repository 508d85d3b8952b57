package usecase

import (
	"context"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
	"looking-glass/pkg/log"
)

// Detail fetches one entry from the server. It never touches the collection.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.LogEntry, error) {
	ctx = log.WithFields(ctx, "id", id)
	e, err := uc.repo.GetLog(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetLog: %v", err)
		return model.LogEntry{}, err
	}
	if e.ID == "" {
		return model.LogEntry{}, journal.ErrEntryNotFound
	}
	return e, nil
}

// Info describes the remote API.
func (uc *implUseCase) Info(ctx context.Context) (journal.APIInfo, error) {
	info, err := uc.repo.Info(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Info: %v", err)
		return journal.APIInfo{}, err
	}
	return info, nil
}
