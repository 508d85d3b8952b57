package cli

import (
	"fmt"
	"io"
	"strings"

	"looking-glass/internal/journal"
	"looking-glass/internal/journal/delivery/style"
	"looking-glass/internal/model"
)

func printSummary(w io.Writer, e model.LogEntry) {
	line := fmt.Sprintf("%s  %s  %s", style.Date.Render(e.LogDate), style.Title.Render(e.Title), style.Mood.Render(e.Mood))
	if badges := style.Badges(e.Tags); badges != "" {
		line += "  " + badges
	}
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "  "+style.Muted.Render(e.ID))
}

func printEntry(w io.Writer, e model.LogEntry) {
	fmt.Fprintln(w, style.Title.Render(e.Title))
	fmt.Fprintf(w, "ID:      %s\n", e.ID)
	fmt.Fprintf(w, "Date:    %s\n", style.Date.Render(e.LogDate))
	fmt.Fprintf(w, "Mood:    %s\n", style.Mood.Render(e.Mood))
	if len(e.Tags) > 0 {
		fmt.Fprintf(w, "Tags:    %s\n", style.Badges(e.Tags))
	}
	if e.CreatedAt != "" {
		fmt.Fprintf(w, "Created: %s\n", style.Muted.Render(e.CreatedAt))
	}
	if e.UpdatedAt != "" && e.UpdatedAt != e.CreatedAt {
		fmt.Fprintf(w, "Updated: %s\n", style.Muted.Render(e.UpdatedAt))
	}
	fmt.Fprintln(w)
	for _, line := range journal.BulletLines(e.Entries) {
		fmt.Fprintln(w, "  "+line)
	}
}

func printTags(w io.Writer, tags []journal.TagCount) {
	width := 0
	for _, t := range tags {
		width = max(width, len(t.Tag))
	}
	for _, t := range tags {
		fmt.Fprintf(w, "%s%s %d\n", style.Badge.Render(t.Tag), strings.Repeat(" ", width-len(t.Tag)), t.Count)
	}
}
