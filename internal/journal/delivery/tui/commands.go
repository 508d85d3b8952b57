package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"looking-glass/internal/journal"
)

// load failures stay out of the view; the store already logged them.
func (m Model) load() tea.Cmd {
	ctx, uc := m.ctx, m.uc
	return func() tea.Msg {
		snap, err := uc.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return snapshotMsg(snap)
	}
}

// showDetail asks the store for one entry; repeat views are served from the
// repository cache.
func (m Model) showDetail(id string) tea.Cmd {
	ctx, uc := m.ctx, m.uc
	return func() tea.Msg {
		e, err := uc.Detail(ctx, id)
		return detailMsg{id: id, entry: e, err: err}
	}
}

func (m Model) create(raw journal.RawEntryInput) tea.Cmd {
	ctx, uc := m.ctx, m.uc
	return func() tea.Msg {
		out, err := uc.Create(ctx, journal.CreateInput{Raw: raw})
		if err != nil {
			return mutationMsg{err: err}
		}
		action := "Log created."
		if out.Outcome.Kind.NeedsResync() && !out.Resynced {
			action = "Log created. Press r to reload."
		}
		return mutationMsg{action: action, snapshot: out.Snapshot}
	}
}

func (m Model) update(id string, raw journal.RawUpdateInput) tea.Cmd {
	ctx, uc := m.ctx, m.uc
	return func() tea.Msg {
		out, err := uc.Update(ctx, journal.UpdateInput{ID: id, Raw: raw})
		if err != nil {
			return mutationMsg{err: err}
		}
		return mutationMsg{action: "Log updated.", snapshot: out.Snapshot}
	}
}

// remove runs after the user already answered y, so the store gets an
// approving confirmer.
func (m Model) remove(id string) tea.Cmd {
	ctx, uc := m.ctx, m.uc
	return func() tea.Msg {
		if err := uc.Delete(ctx, journal.DeleteInput{ID: id, Confirmer: journal.AlwaysConfirm}); err != nil {
			return mutationMsg{err: err}
		}
		return mutationMsg{action: "Log deleted.", snapshot: uc.Snapshot()}
	}
}
