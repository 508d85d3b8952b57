package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"looking-glass/internal/journal"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.setWidth(msg.Width)
		return m, nil

	case snapshotMsg:
		m.apply(journal.Snapshot(msg))
		return m, nil

	case loadFailedMsg:
		m.loading = false
		return m, nil

	case mutationMsg:
		return m.finish(msg), nil

	case detailMsg:
		if m.mode != modeDetail || msg.id != m.detail.ID {
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.mode = modeList
			m.setStatus(fmt.Sprintf("Error: %v", msg.err), true)
			return m, nil
		}
		m.detail = msg.entry
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "r":
		m.setStatus("", false)
		return m, m.load()

	case "enter", "v":
		e, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeDetail
		m.detail = e
		m.detailLoading = true
		m.setStatus("", false)
		return m, m.showDetail(e.ID)

	case "n":
		if m.busy {
			return m, nil
		}
		m.form = newForm(m.width)
		m.mode = modeForm
		m.setStatus("", false)

	case "e":
		e, ok := m.selected()
		if !ok || m.busy {
			return m, nil
		}
		m.form = newEditForm(e, m.width)
		m.mode = modeForm
		m.setStatus("", false)

	case "d":
		e, ok := m.selected()
		if !ok || m.busy {
			return m, nil
		}
		m.pendingDelete = e.ID
		m.mode = modeConfirm
		m.setStatus("", false)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeList
		m.setStatus("", false)
		return m, nil

	case "tab", "down":
		if m.form.focus != fieldBody || msg.String() == "tab" {
			return m, m.form.next()
		}

	case "shift+tab", "up":
		if m.form.focus != fieldBody || msg.String() == "shift+tab" {
			return m, m.form.prev()
		}

	case "ctrl+s":
		return m.submit()

	case "enter":
		// Enter adds a line inside the body; elsewhere it advances or submits.
		if m.form.focus != fieldBody {
			if m.form.lastField() {
				return m.submit()
			}
			return m, m.form.next()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.setStatus("Saving...", false)
	if m.form.editing() {
		return m, m.update(m.form.editID, m.form.rawUpdate())
	}
	return m, m.create(m.form.rawEntry())
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "enter", "v", "backspace":
		m.mode = modeList
		m.detailLoading = false
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.pendingDelete
		m.pendingDelete = ""
		m.mode = modeList
		m.busy = true
		m.setStatus("Deleting...", false)
		return m, m.remove(id)

	case "n", "N", "esc":
		m.pendingDelete = ""
		m.mode = modeList
		m.setStatus("Delete cancelled.", false)

	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// finish applies the result of a mutation. On failure an open form stays
// open so the input can be fixed and resubmitted.
func (m Model) finish(msg mutationMsg) Model {
	m.busy = false
	if msg.err != nil {
		text := fmt.Sprintf("Error: %v", msg.err)
		if errors.Is(msg.err, journal.ErrValidation) {
			text = fmt.Sprintf("Check the form: %v", msg.err)
		}
		m.setStatus(text, true)
		return m
	}

	wasCreate := m.mode == modeForm && !m.form.editing()
	m.mode = modeList
	m.apply(msg.snapshot)
	if wasCreate {
		m.cursor = 0
	}
	m.setStatus(msg.action, false)
	return m
}
