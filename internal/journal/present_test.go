package journal_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
)

func TestBulletLines(t *testing.T) {
	got := journal.BulletLines("Morning\n- wrote tests\n  -shipped\r\nplain - dash")
	want := []string{"Morning", "• wrote tests", "  • shipped", "plain - dash"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BulletLines mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectTags(t *testing.T) {
	entries := []model.LogEntry{
		{ID: "1", Tags: []string{"work", "api"}},
		{ID: "2", Tags: []string{"work"}},
		{ID: "3", Tags: []string{"home"}},
	}
	want := []journal.TagCount{{Tag: "work", Count: 2}, {Tag: "api", Count: 1}, {Tag: "home", Count: 1}}
	if diff := cmp.Diff(want, journal.CollectTags(entries)); diff != "" {
		t.Errorf("CollectTags mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterByTag(t *testing.T) {
	entries := []model.LogEntry{
		{ID: "1", Tags: []string{"work"}},
		{ID: "2", Tags: []string{"home"}},
	}
	got := journal.FilterByTag(entries, " WORK ")
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("unexpected filter result: %+v", got)
	}
	if len(journal.FilterByTag(entries, "")) != 2 {
		t.Errorf("empty tag should keep everything")
	}
}

func TestSnapshotFind(t *testing.T) {
	s := journal.Snapshot{Entries: []model.LogEntry{{ID: "a", Title: "A"}}}
	if e, ok := s.Find("a"); !ok || e.Title != "A" {
		t.Errorf("expected to find a")
	}
	if _, ok := s.Find("b"); ok {
		t.Errorf("did not expect to find b")
	}
}
