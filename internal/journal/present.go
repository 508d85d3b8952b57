package journal

import (
	"sort"
	"strings"

	"looking-glass/internal/model"
)

// BulletLines splits a body into display lines, turning the "-" bullet
// convention into "•".
func BulletLines(body string) []string {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "-") {
			indent := line[:len(line)-len(trimmed)]
			lines[i] = indent + "• " + strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		}
	}
	return lines
}

// CollectTags counts tag usage, most used first, ties alphabetical.
func CollectTags(entries []model.LogEntry) []TagCount {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, t := range e.Tags {
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// FilterByTag keeps entries carrying tag (case-insensitive). An empty tag keeps all.
func FilterByTag(entries []model.LogEntry, tag string) []model.LogEntry {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return entries
	}
	var out []model.LogEntry
	for _, e := range entries {
		for _, t := range e.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
