package datemath_test

import (
	"testing"
	"time"

	"looking-glass/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expr    string
		want    time.Time
		wantErr bool
	}{
		{name: "Empty", expr: "", want: startOfBase},
		{name: "Today", expr: " Today ", want: startOfBase},
		{name: "Yesterday", expr: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "Tomorrow", expr: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "ISO date", expr: "2025-01-01", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "3 days ago", expr: "3 days ago", want: startOfBase.AddDate(0, 0, -3)},
		{name: "1 week ago", expr: "1 week ago", want: startOfBase.AddDate(0, 0, -7)},
		{name: "2 months ago", expr: "2 months ago", want: startOfBase.AddDate(0, -2, 0)},
		{name: "In 2 weeks", expr: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "Last Monday", expr: "last monday", want: time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC)},
		{name: "Last Wednesday is a week back", expr: "last wednesday", want: time.Date(2024, 4, 24, 0, 0, 0, 0, time.UTC)},
		{name: "Next Friday", expr: "next friday", want: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
		{name: "Next Wednesday is a week ahead", expr: "next wednesday", want: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)},
		{name: "Unknown weekday", expr: "last funday", wantErr: true},
		{name: "Garbage", expr: "whenever", wantErr: true},
		{name: "Bad ISO", expr: "2025-13-40", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.expr, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatUsesParserTimezone(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 20:00 UTC on Jan 1 is already Jan 2 in Tokyo.
	base := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	if got := parser.Today(base); got != "2025-01-02" {
		t.Errorf("Today() = %q, want 2025-01-02", got)
	}
}
