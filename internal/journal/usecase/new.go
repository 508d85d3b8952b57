package usecase

import (
	"sync"
	"time"

	"looking-glass/internal/journal"
	"looking-glass/internal/journal/repository"
	"looking-glass/internal/model"
	"looking-glass/pkg/datemath"
	"looking-glass/pkg/log"
)

var _ journal.UseCase = (*implUseCase)(nil)

// implUseCase is the private implementation of journal.UseCase. It owns
// the client collection; the remote API is the source of truth.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	dates *datemath.Parser
	now   func() time.Time

	mu        sync.Mutex
	entries   []model.LogEntry
	version   uint64
	listeners map[uint64]func(journal.Snapshot)
	nextID    uint64
}

// New creates a new journal UseCase implementation with an empty collection.
func New(repo repository.Repository, l log.Logger, dates *datemath.Parser) *implUseCase {
	if dates == nil {
		dates, _ = datemath.NewParser("UTC")
	}
	return &implUseCase{
		repo:      repo,
		l:         l,
		dates:     dates,
		now:       time.Now,
		listeners: make(map[uint64]func(journal.Snapshot)),
	}
}

// SetClock overrides the time source used for default log dates.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
