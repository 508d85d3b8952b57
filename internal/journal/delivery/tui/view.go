package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"looking-glass/internal/journal"
	"looking-glass/internal/journal/delivery/style"
)

const (
	listHelp    = "j/k move • enter view • n new • e edit • d delete • r reload • q quit"
	detailHelp  = "esc back"
	formHelp    = "tab next field • enter next/save • ctrl+s save • esc cancel"
	confirmHelp = "y delete • n cancel"
)

// View renders the TUI interface
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(style.Header.Render("LookingGlass"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.renderForm())
	case modeDetail:
		b.WriteString(m.renderDetail())
	case modeConfirm:
		b.WriteString(m.renderList())
		b.WriteString("\n")
		b.WriteString(style.Failure.Render(journal.DeletePrompt))
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(style.Failure.Render(m.status))
		} else {
			b.WriteString(style.Success.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(style.Muted.Render(m.help()))
	return b.String()
}

func (m Model) help() string {
	switch m.mode {
	case modeForm:
		return formHelp
	case modeConfirm:
		return confirmHelp
	case modeDetail:
		return detailHelp
	default:
		return listHelp
	}
}

func (m Model) renderList() string {
	if m.loading {
		return style.Muted.Render("Loading...") + "\n"
	}
	if len(m.entries) == 0 {
		return style.Muted.Render("No logs yet. Press n to write one.") + "\n"
	}

	var b strings.Builder
	for i, e := range m.entries {
		cursor := "  "
		title := style.Title.Render(e.Title)
		if i == m.cursor {
			cursor = style.Selected.Render("> ")
			title = style.Selected.Render(e.Title)
		}

		line := fmt.Sprintf("%s%s  %s  %s", cursor, style.Date.Render(e.LogDate), title, style.Mood.Render(e.Mood))
		if badges := style.Badges(e.Tags); badges != "" {
			line += "  " + badges
		}
		b.WriteString(line + "\n")

		if i == m.cursor && strings.TrimSpace(e.Entries) != "" {
			b.WriteString(style.Panel.MarginLeft(4).Render(style.Body(e.Entries)) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderDetail() string {
	e := m.detail
	var b strings.Builder
	b.WriteString(style.Title.Render(e.Title) + "\n\n")
	fmt.Fprintf(&b, "%s %s\n", style.Muted.Width(10).Render("ID"), e.ID)
	fmt.Fprintf(&b, "%s %s\n", style.Muted.Width(10).Render("Date"), style.Date.Render(e.LogDate))
	fmt.Fprintf(&b, "%s %s\n", style.Muted.Width(10).Render("Mood"), style.Mood.Render(e.Mood))
	if badges := style.Badges(e.Tags); badges != "" {
		fmt.Fprintf(&b, "%s %s\n", style.Muted.Width(10).Render("Tags"), badges)
	}
	if m.detailLoading {
		b.WriteString(style.Muted.Render("Loading...") + "\n")
	} else {
		if e.CreatedAt != "" {
			fmt.Fprintf(&b, "%s %s\n", style.Muted.Width(10).Render("Created"), style.Muted.Render(e.CreatedAt))
		}
		if e.UpdatedAt != "" {
			fmt.Fprintf(&b, "%s %s\n", style.Muted.Width(10).Render("Updated"), style.Muted.Render(e.UpdatedAt))
		}
	}
	b.WriteString("\n" + style.Panel.Render(style.Body(e.Entries)) + "\n")
	return b.String()
}

func (m Model) renderForm() string {
	heading := "New log"
	if m.form.editing() {
		heading = "Edit log"
	}

	rows := []string{
		style.Title.Render(heading),
		"",
		m.field("Title", m.form.title.View(), fieldTitle),
		m.field("Entries", m.form.body.View(), fieldBody),
		m.field("Mood", m.form.mood.View(), fieldMood),
		m.field("Tags", m.form.tags.View(), fieldTags),
	}
	if !m.form.editing() {
		rows = append(rows, m.field("Date", m.form.date.View(), fieldDate))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) field(label, input string, idx int) string {
	l := style.Muted.Width(10).Render(label)
	if m.form.focus == idx {
		l = style.Selected.Width(10).Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, l, input)
}
