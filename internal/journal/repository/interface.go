package repository

import (
	"context"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
)

// Repository is the composed interface for the remote log collection.
type Repository interface {
	LogRepository
	InfoRepository
}

// LogRepository defines all data access methods for log entries.
type LogRepository interface {
	ListLogs(ctx context.Context) ([]model.LogEntry, error)
	// GetLog returns a zero-value entry (ID == "") when the server has no such log.
	GetLog(ctx context.Context, id string) (model.LogEntry, error)
	CreateLog(ctx context.Context, opt CreateLogOptions) (journal.CreateOutcome, error)
	// UpdateLog returns a zero-value entry when the server answered without a body.
	UpdateLog(ctx context.Context, opt UpdateLogOptions) (model.LogEntry, error)
	DeleteLog(ctx context.Context, id string) error
}

// InfoRepository describes the remote API itself.
type InfoRepository interface {
	Info(ctx context.Context) (journal.APIInfo, error)
}
