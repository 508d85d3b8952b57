package remote

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"looking-glass/internal/journal/repository"
	"looking-glass/internal/model"
	"looking-glass/pkg/log"
	"looking-glass/pkg/logsapi"
)

// Options controls the detail cache. A zero CacheSize disables it.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implRepository struct {
	client *logsapi.Client
	cache  *expirable.LRU[string, model.LogEntry] // nil when disabled
	l      log.Logger
}

// New creates a Repository backed by the remote log API.
func New(client *logsapi.Client, l log.Logger, opt Options) repository.Repository {
	if client == nil {
		panic("journal/repository/remote: client is required")
	}

	r := &implRepository{client: client, l: l}
	if opt.CacheSize > 0 {
		r.cache = expirable.NewLRU[string, model.LogEntry](opt.CacheSize, nil, opt.CacheTTL)
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("journal/repository/remote.%s", method)
}

func (r *implRepository) remember(e model.LogEntry) {
	if r.cache != nil && e.ID != "" {
		r.cache.Add(e.ID, e.Clone())
	}
}

func (r *implRepository) forget(id string) {
	if r.cache != nil {
		r.cache.Remove(id)
	}
}

func (r *implRepository) cached(id string) (model.LogEntry, bool) {
	if r.cache == nil {
		return model.LogEntry{}, false
	}
	e, ok := r.cache.Get(id)
	if !ok {
		return model.LogEntry{}, false
	}
	return e.Clone(), true
}
