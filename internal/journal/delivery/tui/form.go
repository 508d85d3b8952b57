package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
)

const (
	fieldTitle = iota
	fieldBody
	fieldMood
	fieldTags
	fieldDate
)

// form collects the fields of a new or revised entry. Editing keeps the
// log date, so the date field only exists for new entries.
type form struct {
	editID string

	title textinput.Model
	body  textarea.Model
	mood  textinput.Model
	tags  textinput.Model
	date  textinput.Model

	focus int
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

func newForm(width int) form {
	body := textarea.New()
	body.Placeholder = "What did you do? Lines starting with - become bullets."
	body.ShowLineNumbers = false
	body.SetHeight(6)

	f := form{
		title: newInput("Title", 200),
		body:  body,
		mood:  newInput(model.DefaultMood, 50),
		tags:  newInput("comma, separated, tags", 200),
		date:  newInput("today, yesterday, 3 days ago, 2025-01-31", 40),
	}
	f.setWidth(width)
	f.focusField(fieldTitle)
	return f
}

func newEditForm(e model.LogEntry, width int) form {
	f := newForm(width)
	f.editID = e.ID
	f.title.SetValue(e.Title)
	f.body.SetValue(e.Entries)
	f.mood.SetValue(e.Mood)
	f.tags.SetValue(journal.JoinTags(e.Tags))
	return f
}

func (f form) editing() bool { return f.editID != "" }

func (f form) fieldCount() int {
	if f.editing() {
		return fieldTags + 1
	}
	return fieldDate + 1
}

func (f *form) setWidth(width int) {
	if width <= 0 {
		width = 80
	}
	w := width - 16
	if w < 20 {
		w = 20
	}
	f.title.Width = w
	f.mood.Width = w
	f.tags.Width = w
	f.date.Width = w
	f.body.SetWidth(w)
}

func (f *form) focusField(i int) tea.Cmd {
	f.title.Blur()
	f.body.Blur()
	f.mood.Blur()
	f.tags.Blur()
	f.date.Blur()

	f.focus = i
	switch i {
	case fieldTitle:
		return f.title.Focus()
	case fieldBody:
		return f.body.Focus()
	case fieldMood:
		return f.mood.Focus()
	case fieldTags:
		return f.tags.Focus()
	default:
		return f.date.Focus()
	}
}

func (f *form) next() tea.Cmd {
	return f.focusField((f.focus + 1) % f.fieldCount())
}

func (f *form) prev() tea.Cmd {
	n := f.fieldCount()
	return f.focusField((f.focus + n - 1) % n)
}

func (f form) lastField() bool {
	return f.focus == f.fieldCount()-1
}

// update forwards a message to the focused field.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldBody:
		f.body, cmd = f.body.Update(msg)
	case fieldMood:
		f.mood, cmd = f.mood.Update(msg)
	case fieldTags:
		f.tags, cmd = f.tags.Update(msg)
	default:
		f.date, cmd = f.date.Update(msg)
	}
	return f, cmd
}

func (f form) rawEntry() journal.RawEntryInput {
	return journal.RawEntryInput{
		Title:   f.title.Value(),
		Entries: f.body.Value(),
		Mood:    f.mood.Value(),
		Tags:    f.tags.Value(),
		Date:    f.date.Value(),
	}
}

func (f form) rawUpdate() journal.RawUpdateInput {
	return journal.RawUpdateInput{
		Title:   f.title.Value(),
		Entries: f.body.Value(),
		Mood:    f.mood.Value(),
		Tags:    f.tags.Value(),
	}
}
