package remote_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"looking-glass/internal/journal"
	"looking-glass/internal/journal/repository"
	"looking-glass/internal/journal/repository/remote"
	"looking-glass/pkg/log"
	"looking-glass/pkg/logsapi"
	"looking-glass/pkg/logsapi/logsapitest"
)

func newRepo(t *testing.T, cacheSize int) (repository.Repository, *logsapitest.Server) {
	t.Helper()
	srv := logsapitest.NewServer(t)
	client := logsapi.NewClient(srv.URL, logsapi.Options{})
	return remote.New(client, log.NewNop(), remote.Options{CacheSize: cacheSize, CacheTTL: time.Minute}), srv
}

func TestRemoteRepository(t *testing.T) {
	repo, srv := newRepo(t, 16)
	ctx := context.Background()
	seeded := srv.Seed(logsapi.Log{Title: "A", Entries: "a", LogDate: "2025-01-01", Mood: "ok", Tags: []string{"x", ""}})

	t.Run("ListLogs", func(t *testing.T) {
		got, err := repo.ListLogs(ctx)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 1 || got[0].ID != seeded[0].ID {
			t.Fatalf("unexpected entries: %+v", got)
		}
		if len(got[0].Tags) != 1 || got[0].Tags[0] != "x" {
			t.Errorf("empty wire tags should be dropped, got %v", got[0].Tags)
		}
	})

	t.Run("GetLog From Cache", func(t *testing.T) {
		srv.ResetCalls()
		got, err := repo.GetLog(ctx, seeded[0].ID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Title != "A" {
			t.Errorf("unexpected entry: %+v", got)
		}
		if n := len(srv.Calls()); n != 0 {
			t.Errorf("expected cached detail, saw %d calls", n)
		}
	})

	t.Run("GetLog Not Found", func(t *testing.T) {
		got, err := repo.GetLog(ctx, "missing")
		if err != nil {
			t.Fatalf("not found should not be an error: %v", err)
		}
		if got.ID != "" {
			t.Errorf("expected zero value, got %+v", got)
		}
	})

	t.Run("UpdateLog Invalidates Cache", func(t *testing.T) {
		_, err := repo.UpdateLog(ctx, repository.UpdateLogOptions{ID: seeded[0].ID, Title: "A2", Entries: "a", Mood: "ok", LogDate: "2025-01-01"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		srv.ResetCalls()
		got, err := repo.GetLog(ctx, seeded[0].ID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Title != "A2" {
			t.Errorf("expected fresh title, got %q", got.Title)
		}
		if srv.CallCount(http.MethodGet) != 1 {
			t.Errorf("expected a remote fetch after update, calls: %v", srv.Calls())
		}
	})

	t.Run("CreateLog Outcomes", func(t *testing.T) {
		opt := repository.CreateLogOptions{Title: "T", Entries: "E", Mood: "m", LogDate: "2025-01-02"}

		srv.SetCreateMode(logsapitest.CreateEcho)
		out, err := repo.CreateLog(ctx, opt)
		if err != nil || out.Kind != journal.CreatedWithBody || out.Entry.ID == "" {
			t.Fatalf("expected entry outcome, got %+v, %v", out, err)
		}
		if out.Entry.Tags == nil {
			t.Errorf("tags should decode as an empty slice")
		}

		srv.SetCreateMode(logsapitest.CreateEmpty)
		out, err = repo.CreateLog(ctx, opt)
		if err != nil || out.Kind != journal.CreatedEmptyBody {
			t.Fatalf("expected empty outcome, got %+v, %v", out, err)
		}

		srv.SetCreateMode(logsapitest.CreateGarbage)
		out, err = repo.CreateLog(ctx, opt)
		if err != nil || out.Kind != journal.CreatedUndecodable {
			t.Fatalf("expected undecodable outcome, got %+v, %v", out, err)
		}

		srv.FailNext(http.MethodPost, http.StatusInternalServerError)
		_, err = repo.CreateLog(ctx, opt)
		if !errors.Is(err, repository.ErrFailedToCreate) {
			t.Errorf("expected ErrFailedToCreate, got %v", err)
		}
		var apiErr *logsapi.APIError
		if !errors.As(err, &apiErr) {
			t.Errorf("expected the API error to stay reachable, got %v", err)
		}
	})

	t.Run("DeleteLog", func(t *testing.T) {
		if err := repo.DeleteLog(ctx, seeded[0].ID); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if err := repo.DeleteLog(ctx, seeded[0].ID); !errors.Is(err, repository.ErrFailedToDelete) {
			t.Errorf("expected ErrFailedToDelete on second delete, got %v", err)
		}
		got, err := repo.GetLog(ctx, seeded[0].ID)
		if err != nil || got.ID != "" {
			t.Errorf("deleted entry must not be served from cache: %+v, %v", got, err)
		}
	})

	t.Run("Info", func(t *testing.T) {
		info, err := repo.Info(ctx)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if info.Name != "LookingGlassAPI" || info.BaseURL != srv.URL {
			t.Errorf("unexpected info: %+v", info)
		}
	})
}

func TestRemoteRepositoryWithoutCache(t *testing.T) {
	repo, srv := newRepo(t, 0)
	ctx := context.Background()
	seeded := srv.Seed(logsapi.Log{Title: "A", Entries: "a"})

	if _, err := repo.ListLogs(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	srv.ResetCalls()
	if _, err := repo.GetLog(ctx, seeded[0].ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if srv.CallCount(http.MethodGet) != 1 {
		t.Errorf("expected a remote fetch with cache disabled")
	}
}
