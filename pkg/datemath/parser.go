package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	agoPattern = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
	inPattern  = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
)

// Parser resolves date expressions ("today", "3 days ago", "2025-01-01")
// to calendar days in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a date expression to midnight of the resolved day.
// The baseTime is used as the reference point (usually time.Now()).
// An empty expression means today.
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "", "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation(ISODate, expr, p.location); err == nil {
		return t, nil
	}

	if m := agoPattern.FindStringSubmatch(expr); m != nil {
		return p.shift(baseTime, m[1], m[2], -1)
	}
	if m := inPattern.FindStringSubmatch(expr); m != nil {
		return p.shift(baseTime, m[1], m[2], 1)
	}

	if strings.HasPrefix(expr, "last ") {
		return p.parseWeekday(strings.TrimPrefix(expr, "last "), baseTime, -1)
	}
	if strings.HasPrefix(expr, "next ") {
		return p.parseWeekday(strings.TrimPrefix(expr, "next "), baseTime, 1)
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", expr)
}

// Format renders t as an ISO calendar date in the parser's timezone.
func (p *Parser) Format(t time.Time) string {
	return t.In(p.location).Format(ISODate)
}

// Today returns the ISO calendar date of baseTime in the parser's timezone.
func (p *Parser) Today(baseTime time.Time) string {
	return p.Format(baseTime)
}

// shift moves baseTime by amount units in direction dir (+1 or -1).
func (p *Parser) shift(baseTime time.Time, rawAmount, unit string, dir int) (time.Time, error) {
	amount, err := strconv.Atoi(rawAmount)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid amount %q: %w", rawAmount, err)
	}
	amount *= dir

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

// parseWeekday resolves "last <weekday>" (dir -1) and "next <weekday>" (dir +1).
// The result is always 1..7 days away from baseTime, never baseTime itself.
func (p *Parser) parseWeekday(dayName string, baseTime time.Time, dir int) (time.Time, error) {
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	current := int(baseTime.In(p.location).Weekday())
	days := (target - current) * dir
	if days <= 0 {
		days += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, days*dir)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
