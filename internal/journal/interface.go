package journal

import (
	"context"

	"looking-glass/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Collection sync
	Load(ctx context.Context) (Snapshot, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) error

	// Read-only remote lookups
	Detail(ctx context.Context, id string) (model.LogEntry, error)
	Info(ctx context.Context) (APIInfo, error)

	// Local state
	Snapshot() Snapshot
	Subscribe(fn func(Snapshot)) (unsubscribe func())
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, message string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

// AlwaysConfirm approves without asking, for non-interactive use.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })
