package logsapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"looking-glass/pkg/logsapi"
	"looking-glass/pkg/logsapi/logsapitest"
)

func TestLogsClient(t *testing.T) {
	srv := logsapitest.NewServer(t)
	seeded := srv.Seed(
		logsapi.Log{Title: "First", Entries: "- a", LogDate: "2025-01-02", Mood: "chill", Tags: []string{"x"}},
		logsapi.Log{Title: "Second", Entries: "b", LogDate: "2025-01-01", Mood: "tired", Tags: []string{}},
	)

	client := logsapi.NewClient(srv.URL+"/", logsapi.Options{Timeout: 5 * time.Second})
	ctx := context.Background()

	t.Run("ListLogs", func(t *testing.T) {
		got, err := client.ListLogs(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(seeded, got); diff != "" {
			t.Errorf("ListLogs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("GetLog", func(t *testing.T) {
		got, err := client.GetLog(ctx, seeded[1].ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "Second" {
			t.Errorf("unexpected log: %+v", got)
		}

		_, err = client.GetLog(ctx, "missing")
		if !logsapi.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("CreateLog With Body", func(t *testing.T) {
		srv.SetCreateMode(logsapitest.CreateEcho)
		res, err := client.CreateLog(ctx, logsapi.LogRequest{Title: "T", Entries: "E", Mood: "m", Tags: []string{"a"}, LogDate: "2025-01-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Kind != logsapi.CreatedWithBody || res.Log == nil {
			t.Fatalf("expected created-with-body, got %v", res.Kind)
		}
		if res.Log.ID == "" || res.Log.Title != "T" || res.StatusCode != http.StatusCreated {
			t.Errorf("unexpected create result: %+v %+v", res, res.Log)
		}
	})

	t.Run("CreateLog Ambiguous Bodies", func(t *testing.T) {
		cases := []struct {
			mode logsapitest.CreateMode
			want logsapi.CreateKind
		}{
			{logsapitest.CreateEmpty, logsapi.CreatedEmptyBody},
			{logsapitest.CreateGarbage, logsapi.CreatedUndecodable},
			{logsapitest.CreateNoID, logsapi.CreatedUndecodable},
		}
		for _, tc := range cases {
			srv.SetCreateMode(tc.mode)
			res, err := client.CreateLog(ctx, logsapi.LogRequest{Title: "T", Entries: "E"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Kind != tc.want || res.Log != nil {
				t.Errorf("mode %v: expected %v, got %v", tc.mode, tc.want, res.Kind)
			}
		}
	})

	t.Run("UpdateLog", func(t *testing.T) {
		srv.SetUpdateEcho(false)
		got, err := client.UpdateLog(ctx, seeded[0].ID, logsapi.LogRequest{Title: "New", Entries: "E", Mood: "m", LogDate: "2025-01-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected no echoed log on 204, got %+v", got)
		}

		srv.SetUpdateEcho(true)
		got, err = client.UpdateLog(ctx, seeded[0].ID, logsapi.LogRequest{Title: "Newer", Entries: "E", Mood: "m", LogDate: "2025-01-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.Title != "Newer" {
			t.Errorf("expected echoed log, got %+v", got)
		}

		_, err = client.UpdateLog(ctx, "missing", logsapi.LogRequest{Title: "x"})
		var apiErr *logsapi.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 APIError, got %v", err)
		}
		if apiErr.Message != "No log found with ID missing" {
			t.Errorf("expected server message, got %q", apiErr.Message)
		}
	})

	t.Run("DeleteLog", func(t *testing.T) {
		if err := client.DeleteLog(ctx, seeded[1].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, l := range srv.Logs() {
			if l.ID == seeded[1].ID {
				t.Errorf("log still present after delete")
			}
		}
		if err := client.DeleteLog(ctx, ""); !errors.Is(err, logsapi.ErrEmptyID) {
			t.Errorf("expected ErrEmptyID, got %v", err)
		}
	})

	t.Run("Injected Failure", func(t *testing.T) {
		srv.FailNext(http.MethodGet, http.StatusInternalServerError)
		_, err := client.ListLogs(ctx)
		var apiErr *logsapi.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500 APIError, got %v", err)
		}

		if _, err := client.ListLogs(ctx); err != nil {
			t.Errorf("failure should only apply once: %v", err)
		}
	})

	t.Run("Info", func(t *testing.T) {
		info, err := client.Info(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.Name != "LookingGlassAPI" || info.Status != "OK" {
			t.Errorf("unexpected info: %+v", info)
		}
	})

	// Server Down
	t.Run("Server Down", func(t *testing.T) {
		badClient := logsapi.NewClient("http://localhost:59999", logsapi.Options{})
		_, err := badClient.ListLogs(ctx)
		if err == nil {
			t.Errorf("expected connection refused error")
		}
		var apiErr *logsapi.APIError
		if errors.As(err, &apiErr) {
			t.Errorf("transport failure should not be an APIError: %v", err)
		}
	})
}

func TestClientPlainTextError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer ts.Close()

	client := logsapi.NewClient(ts.URL, logsapi.Options{})
	err := client.DeleteLog(context.Background(), "abc")

	var apiErr *logsapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestClientRateLimitHonoursContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	client := logsapi.NewClient(ts.URL, logsapi.Options{RateLimitPerSec: 0.001, Burst: 1})

	if _, err := client.ListLogs(context.Background()); err != nil {
		t.Fatalf("first request should use the burst: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := client.ListLogs(ctx); err == nil {
		t.Errorf("expected pacing to give up when the context deadline is too short")
	}
}

func TestClientEscapesID(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := logsapi.NewClient(ts.URL, logsapi.Options{})
	if err := client.DeleteLog(context.Background(), "a/b c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/logs/a%2Fb%20c" {
		t.Errorf("unexpected escaped path %q", gotPath)
	}
}
