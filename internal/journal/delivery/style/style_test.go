package style

import (
	"strings"
	"testing"
)

func TestBadges(t *testing.T) {
	if got := Badges(nil); got != "" {
		t.Errorf("expected empty output for no tags, got %q", got)
	}

	got := Badges([]string{"work", "api"})
	for _, tag := range []string{"work", "api"} {
		if !strings.Contains(got, tag) {
			t.Errorf("badge for %q missing in %q", tag, got)
		}
	}
	if strings.Contains(got, "[") {
		t.Errorf("tags must not be bracket-joined: %q", got)
	}
}

func TestBody(t *testing.T) {
	got := Body("intro\n- one\n- two")
	want := "intro\n• one\n• two"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
