package journal

import (
	"fmt"
	"strings"
	"time"

	"looking-glass/internal/model"
	"looking-glass/pkg/datemath"
)

// ParseTags splits comma-delimited input into trimmed, lower-cased,
// non-empty tags. Repeats are dropped, keeping the first position.
func ParseTags(input string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, raw := range strings.Split(input, ",") {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// JoinTags is the inverse of ParseTags, used to prefill edit inputs.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// ValidateEntryInput checks a new entry. Title and body are required; a
// blank mood becomes model.DefaultMood and a blank date becomes the day of
// now in the parser's timezone.
func ValidateEntryInput(raw RawEntryInput, dates *datemath.Parser, now time.Time) (ValidatedEntry, error) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return ValidatedEntry{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(raw.Entries) == "" {
		return ValidatedEntry{}, fmt.Errorf("%w: entries are required", ErrValidation)
	}
	body := trimBody(raw.Entries)

	mood := strings.TrimSpace(raw.Mood)
	if mood == "" {
		mood = model.DefaultMood
	}

	logDate := dates.Today(now)
	if expr := strings.TrimSpace(raw.Date); expr != "" {
		day, err := dates.Parse(expr, now)
		if err != nil {
			return ValidatedEntry{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		logDate = dates.Format(day)
	}

	return ValidatedEntry{
		Title:   title,
		Entries: body,
		Mood:    mood,
		Tags:    ParseTags(raw.Tags),
		LogDate: logDate,
	}, nil
}

// ValidateUpdateInput checks revised fields. Title, body and mood are all
// required; there is no mood default on update.
func ValidateUpdateInput(raw RawUpdateInput) (ValidatedUpdate, error) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return ValidatedUpdate{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(raw.Entries) == "" {
		return ValidatedUpdate{}, fmt.Errorf("%w: entries are required", ErrValidation)
	}
	body := trimBody(raw.Entries)
	mood := strings.TrimSpace(raw.Mood)
	if mood == "" {
		return ValidatedUpdate{}, fmt.Errorf("%w: mood is required", ErrValidation)
	}

	return ValidatedUpdate{
		Title:   title,
		Entries: body,
		Mood:    mood,
		Tags:    ParseTags(raw.Tags),
	}, nil
}

// trimBody drops trailing whitespace only, so indentation of the first line
// survives.
func trimBody(body string) string {
	return strings.TrimRight(body, " \t\r\n")
}
