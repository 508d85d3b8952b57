package remote

import (
	"context"
	"fmt"

	"looking-glass/internal/journal"
	repo "looking-glass/internal/journal/repository"
	"looking-glass/internal/model"
	"looking-glass/pkg/logsapi"
)

// ListLogs fetches the whole collection in server order and refreshes the detail cache.
func (r *implRepository) ListLogs(ctx context.Context) ([]model.LogEntry, error) {
	logs, err := r.client.ListLogs(ctx)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("ListLogs"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}

	entries := make([]model.LogEntry, 0, len(logs))
	for _, l := range logs {
		e := toEntry(l)
		r.remember(e)
		entries = append(entries, e)
	}
	return entries, nil
}

// GetLog returns the entry by id, serving from the detail cache when possible.
// Not found → zero-value entry, no error.
func (r *implRepository) GetLog(ctx context.Context, id string) (model.LogEntry, error) {
	if e, ok := r.cached(id); ok {
		return e, nil
	}

	l, err := r.client.GetLog(ctx, id)
	if logsapi.IsNotFound(err) {
		r.forget(id)
		return model.LogEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLog"), err)
		return model.LogEntry{}, fmt.Errorf("%w: %w", repo.ErrFailedToGet, err)
	}

	e := toEntry(*l)
	r.remember(e)
	return e, nil
}

// CreateLog sends a new entry and reports how the answer could be read.
func (r *implRepository) CreateLog(ctx context.Context, opt repo.CreateLogOptions) (journal.CreateOutcome, error) {
	res, err := r.client.CreateLog(ctx, logsapi.LogRequest{
		Title:   opt.Title,
		Entries: opt.Entries,
		Mood:    opt.Mood,
		Tags:    nonNilTags(opt.Tags),
		LogDate: opt.LogDate,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLog"), err)
		return journal.CreateOutcome{}, fmt.Errorf("%w: %w", repo.ErrFailedToCreate, err)
	}

	switch res.Kind {
	case logsapi.CreatedWithBody:
		e := toEntry(*res.Log)
		r.remember(e)
		return journal.CreateOutcome{Kind: journal.CreatedWithBody, Entry: e}, nil
	case logsapi.CreatedEmptyBody:
		return journal.CreateOutcome{Kind: journal.CreatedEmptyBody}, nil
	default:
		r.l.Debugf(ctx, "%s: status %d body is not a log entry", r.dsn("CreateLog"), res.StatusCode)
		return journal.CreateOutcome{Kind: journal.CreatedUndecodable}, nil
	}
}

// UpdateLog replaces an entry. The cached copy is dropped either way.
func (r *implRepository) UpdateLog(ctx context.Context, opt repo.UpdateLogOptions) (model.LogEntry, error) {
	r.forget(opt.ID)

	l, err := r.client.UpdateLog(ctx, opt.ID, logsapi.LogRequest{
		Title:   opt.Title,
		Entries: opt.Entries,
		Mood:    opt.Mood,
		Tags:    nonNilTags(opt.Tags),
		LogDate: opt.LogDate,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLog"), err)
		return model.LogEntry{}, fmt.Errorf("%w: %w", repo.ErrFailedToUpdate, err)
	}
	if l == nil {
		return model.LogEntry{}, nil
	}

	e := toEntry(*l)
	r.remember(e)
	return e, nil
}

// DeleteLog removes an entry by id.
func (r *implRepository) DeleteLog(ctx context.Context, id string) error {
	r.forget(id)

	if err := r.client.DeleteLog(ctx, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteLog"), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToDelete, err)
	}
	return nil
}

// Info describes the remote API.
func (r *implRepository) Info(ctx context.Context) (journal.APIInfo, error) {
	info, err := r.client.Info(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Info"), err)
		return journal.APIInfo{}, fmt.Errorf("%w: %w", repo.ErrFailedToInfo, err)
	}
	return journal.APIInfo{
		Name:        info.Name,
		Version:     info.Version,
		Description: info.Description,
		Status:      info.Status,
		BaseURL:     r.client.BaseURL(),
	}, nil
}

// toEntry converts the wire Log to the internal model.LogEntry.
func toEntry(l logsapi.Log) model.LogEntry {
	tags := make([]string, 0, len(l.Tags))
	for _, t := range l.Tags {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return model.LogEntry{
		ID:        l.ID,
		Title:     l.Title,
		Entries:   l.Entries,
		LogDate:   l.LogDate,
		Mood:      l.Mood,
		Tags:      tags,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// nonNilTags keeps "tags": [] on the wire instead of null.
func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
