package journal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
	"looking-glass/pkg/datemath"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "trim, filter and lower-case", input: " Work, API , ", want: []string{"work", "api"}},
		{name: "empty", input: "", want: []string{}},
		{name: "only commas", input: ", ,,", want: []string{}},
		{name: "duplicates keep first", input: "b, a, B", want: []string{"b", "a"}},
		{name: "single", input: "Focus", want: []string{"focus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, journal.ParseTags(tt.input)); diff != "" {
				t.Errorf("ParseTags(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestValidateEntryInput(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     journal.RawEntryInput
		want    journal.ValidatedEntry
		wantErr bool
	}{
		{
			name: "defaults mood and date",
			raw:  journal.RawEntryInput{Title: " T ", Entries: "- did things", Tags: "A, b"},
			want: journal.ValidatedEntry{Title: "T", Entries: "- did things", Mood: model.DefaultMood, Tags: []string{"a", "b"}, LogDate: "2025-01-01"},
		},
		{
			name: "explicit mood and relative date",
			raw:  journal.RawEntryInput{Title: "T", Entries: "E", Mood: "tired", Date: "yesterday"},
			want: journal.ValidatedEntry{Title: "T", Entries: "E", Mood: "tired", Tags: []string{}, LogDate: "2024-12-31"},
		},
		{
			name: "keeps body indentation",
			raw:  journal.RawEntryInput{Title: "T", Entries: "  indented first line\n- item\n\n"},
			want: journal.ValidatedEntry{Title: "T", Entries: "  indented first line\n- item", Mood: model.DefaultMood, Tags: []string{}, LogDate: "2025-01-01"},
		},
		{name: "whitespace body", raw: journal.RawEntryInput{Title: "T", Entries: " \n\t "}, wantErr: true},
		{name: "missing title", raw: journal.RawEntryInput{Entries: "E"}, wantErr: true},
		{name: "blank title", raw: journal.RawEntryInput{Title: "   ", Entries: "E"}, wantErr: true},
		{name: "missing body", raw: journal.RawEntryInput{Title: "T"}, wantErr: true},
		{name: "bad date", raw: journal.RawEntryInput{Title: "T", Entries: "E", Date: "someday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := journal.ValidateEntryInput(tt.raw, parser, now)
			if tt.wantErr {
				if !errors.Is(err, journal.ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateUpdateInput(t *testing.T) {
	got, err := journal.ValidateUpdateInput(journal.RawUpdateInput{Title: "New", Entries: "E", Mood: "calm", Tags: "X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := journal.ValidatedUpdate{Title: "New", Entries: "E", Mood: "calm", Tags: []string{"x"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = journal.ValidateUpdateInput(journal.RawUpdateInput{Title: "T", Entries: "\t- nested\n", Mood: "m"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Entries != "\t- nested" {
		t.Errorf("expected leading indentation kept, got %q", got.Entries)
	}

	for _, raw := range []journal.RawUpdateInput{
		{Title: "T", Entries: "  \n", Mood: "m"},
		{Entries: "E", Mood: "m"},
		{Title: "T", Mood: "m"},
		{Title: "T", Entries: "E"},
	} {
		if _, err := journal.ValidateUpdateInput(raw); !errors.Is(err, journal.ErrValidation) {
			t.Errorf("expected ErrValidation for %+v, got %v", raw, err)
		}
	}
}
