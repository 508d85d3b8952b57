// Package tui is the interactive terminal view of the journal. It renders
// store snapshots and turns key presses into use case calls.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"looking-glass/internal/journal"
	"looking-glass/internal/model"
	"looking-glass/pkg/log"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
	modeDetail
)

// Model is the bubbletea model for the journal view.
type Model struct {
	ctx context.Context
	uc  journal.UseCase
	l   log.Logger

	entries []model.LogEntry
	version uint64
	cursor  int
	loading bool

	mode          mode
	form          form
	pendingDelete string
	busy          bool // a mutation is in flight

	detail        model.LogEntry
	detailLoading bool

	status    string
	statusErr bool

	width  int
	height int
}

// Message types for the bubbletea update loop
type snapshotMsg journal.Snapshot

type loadFailedMsg struct {
	err error
}

type detailMsg struct {
	id    string
	entry model.LogEntry
	err   error
}

type mutationMsg struct {
	action   string
	err      error
	snapshot journal.Snapshot
}

// New creates the view. Nothing is fetched until Init runs.
func New(ctx context.Context, uc journal.UseCase, l log.Logger) Model {
	return Model{
		ctx:     ctx,
		uc:      uc,
		l:       l,
		loading: true,
	}
}

// Init loads the collection once at view start.
func (m Model) Init() tea.Cmd {
	return m.load()
}

// Run starts the program and keeps it in sync with the store until the user quits.
func Run(ctx context.Context, uc journal.UseCase, l log.Logger) error {
	p := tea.NewProgram(New(ctx, uc, l), tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := uc.Subscribe(func(s journal.Snapshot) {
		p.Send(snapshotMsg(s))
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}

func (m Model) selected() (model.LogEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return model.LogEntry{}, false
	}
	return m.entries[m.cursor], true
}

// apply renders a newer snapshot, keeping the cursor on the same entry when it survives.
func (m *Model) apply(s journal.Snapshot) {
	m.loading = false
	if s.Version < m.version {
		return
	}
	prev, hadPrev := m.selected()

	m.entries = s.Entries
	m.version = s.Version

	if hadPrev {
		for i, e := range m.entries {
			if e.ID == prev.ID {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}
