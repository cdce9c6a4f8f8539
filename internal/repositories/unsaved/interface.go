package unsaved

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/eventswipe/internal/repositories/unsaved Repository

import (
	"context"
)

// Repository is the durable ledger of identifiers whose check-in has not
// reached the booking system yet. Entries keep insertion order.
type Repository interface {
	// Push appends an identifier to an event's ledger
	Push(ctx context.Context, input *PushInput) error

	// List returns every identifier in the ledger, including a replay in flight
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Count returns the number of identifiers in the ledger
	Count(ctx context.Context, input *CountInput) (*CountOutput, error)

	// BeginReplay atomically moves the ledger aside and returns it for replay.
	// A replay interrupted by a crash is picked up again by the next call.
	BeginReplay(ctx context.Context, input *BeginReplayInput) (*BeginReplayOutput, error)

	// CommitReplay ends a replay, putting the remaining identifiers back
	// ahead of anything pushed while the replay ran
	CommitReplay(ctx context.Context, input *CommitReplayInput) error

	// Drain atomically removes and returns every identifier in the ledger
	Drain(ctx context.Context, input *DrainInput) (*DrainOutput, error)

	// Restore puts identifiers back at the head of the ledger
	Restore(ctx context.Context, input *RestoreInput) error

	// Clear empties the ledger
	Clear(ctx context.Context, input *ClearInput) error
}
