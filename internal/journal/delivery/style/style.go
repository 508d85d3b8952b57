// Package style holds the lipgloss styles shared by the terminal views.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"looking-glass/internal/journal"
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color("#CBA6F7")).
		Padding(0, 1)

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA"))

	Date    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	Mood    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#94E2D5"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	Failure = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))

	Badge = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color("#F5C2E7")).
		Padding(0, 1)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#585B70")).
		Padding(0, 1)
)

// Badges renders one badge per tag, separated by a space. No tags, no output.
func Badges(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = Badge.Render(t)
	}
	return strings.Join(parts, " ")
}

// Body renders an entry body with bullet lines.
func Body(body string) string {
	return strings.Join(journal.BulletLines(body), "\n")
}
