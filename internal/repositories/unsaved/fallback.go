package unsaved

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrHeld reports that an identifier could not reach the ledger and is held
// in memory until a later call flushes it
var ErrHeld = errors.New("unsaved ledger unavailable, identifier held in memory")

// fallbackRepository wraps a Repository and holds identifiers in memory while
// the wrapped ledger rejects writes. Held identifiers are flushed ahead of the
// next write and are included in every read, replay and drain.
type fallbackRepository struct {
	next Repository

	mu sync.Mutex
	// held identifiers per event, in push order
	held map[string][]string
	// held identifiers handed out by BeginReplay and not yet committed
	replaying map[string][]string
}

// NewFallback wraps next with an in-memory hold for failed writes
func NewFallback(next Repository) (*fallbackRepository, error) {
	if next == nil {
		return nil, errors.New("repository cannot be nil")
	}

	return &fallbackRepository{
		next:      next,
		held:      make(map[string][]string),
		replaying: make(map[string][]string),
	}, nil
}

// flush pushes held identifiers to the wrapped ledger in order, stopping at the
// first failure. Callers must hold mu.
func (f *fallbackRepository) flush(ctx context.Context, eventID string) error {
	held := f.held[eventID]
	for len(held) > 0 {
		if err := f.next.Push(ctx, &PushInput{EventID: eventID, Identifier: held[0]}); err != nil {
			f.held[eventID] = held
			return err
		}
		held = held[1:]
	}
	delete(f.held, eventID)

	return nil
}

// Push flushes anything held for the event and then appends the identifier.
// When the ledger rejects the write the identifier is held and the returned
// error wraps ErrHeld.
func (f *fallbackRepository) Push(ctx context.Context, input *PushInput) error {
	if input == nil || input.EventID == "" {
		return ErrEmptyEventID
	}

	if input.Identifier == "" {
		return ErrEmptyIdentifier
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	err := f.flush(ctx, input.EventID)
	if err == nil {
		err = f.next.Push(ctx, input)
	}
	if err != nil {
		f.held[input.EventID] = append(f.held[input.EventID], input.Identifier)
		log.Printf("Holding %s in memory, %d held for event %s: %v",
			input.Identifier, len(f.held[input.EventID]), input.EventID, err)
		return fmt.Errorf("%w: %v", ErrHeld, err)
	}

	return nil
}

// List returns the wrapped ledger followed by held identifiers
func (f *fallbackRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	out, err := f.next.List(ctx, input)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	identifiers := append(out.Identifiers, f.replaying[input.EventID]...)
	identifiers = append(identifiers, f.held[input.EventID]...)

	return &ListOutput{
		Identifiers: identifiers,
	}, nil
}

// Count includes held identifiers
func (f *fallbackRepository) Count(ctx context.Context, input *CountInput) (*CountOutput, error) {
	out, err := f.next.Count(ctx, input)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return &CountOutput{
		Count: out.Count + len(f.replaying[input.EventID]) + len(f.held[input.EventID]),
	}, nil
}

// BeginReplay flushes held identifiers and begins the wrapped replay. Anything
// the flush could not write is appended to the batch and tracked until commit.
func (f *fallbackRepository) BeginReplay(ctx context.Context, input *BeginReplayInput) (*BeginReplayOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEmptyEventID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.flush(ctx, input.EventID); err != nil {
		log.Printf("Failed to flush held identifiers for event %s: %v", input.EventID, err)
	}

	out, err := f.next.BeginReplay(ctx, input)
	if err != nil {
		return nil, err
	}

	taken := f.held[input.EventID]
	delete(f.held, input.EventID)
	f.replaying[input.EventID] = append(f.replaying[input.EventID], taken...)

	return &BeginReplayOutput{
		Identifiers: append(out.Identifiers, taken...),
	}, nil
}

// CommitReplay commits the wrapped replay. When that fails, held identifiers
// from the batch that are still remaining go back on hold.
func (f *fallbackRepository) CommitReplay(ctx context.Context, input *CommitReplayInput) error {
	if input == nil || input.EventID == "" {
		return ErrEmptyEventID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	taken := f.replaying[input.EventID]
	delete(f.replaying, input.EventID)

	err := f.next.CommitReplay(ctx, input)
	if err == nil {
		return nil
	}

	remaining := make(map[string]bool, len(input.Remaining))
	for _, identifier := range input.Remaining {
		remaining[identifier] = true
	}

	var rehold []string
	for _, identifier := range taken {
		if remaining[identifier] {
			rehold = append(rehold, identifier)
		}
	}
	f.held[input.EventID] = append(rehold, f.held[input.EventID]...)

	return err
}

// Drain flushes held identifiers and drains the wrapped ledger. Held
// identifiers the flush could not write are drained along with it.
func (f *fallbackRepository) Drain(ctx context.Context, input *DrainInput) (*DrainOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEmptyEventID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.flush(ctx, input.EventID); err != nil {
		log.Printf("Failed to flush held identifiers for event %s: %v", input.EventID, err)
	}

	out, err := f.next.Drain(ctx, input)
	if err != nil {
		return nil, err
	}

	identifiers := append(out.Identifiers, f.held[input.EventID]...)
	delete(f.held, input.EventID)

	return &DrainOutput{
		Identifiers: identifiers,
	}, nil
}

// Restore puts identifiers back in the wrapped ledger, holding them in memory
// when it rejects the write
func (f *fallbackRepository) Restore(ctx context.Context, input *RestoreInput) error {
	if input == nil || input.EventID == "" {
		return ErrEmptyEventID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.next.Restore(ctx, input); err != nil {
		f.held[input.EventID] = append(append([]string{}, input.Identifiers...), f.held[input.EventID]...)
		return fmt.Errorf("%w: %v", ErrHeld, err)
	}

	return nil
}

// Clear empties the wrapped ledger and drops held identifiers
func (f *fallbackRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil || input.EventID == "" {
		return ErrEmptyEventID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.next.Clear(ctx, input); err != nil {
		return err
	}

	delete(f.held, input.EventID)
	delete(f.replaying, input.EventID)

	return nil
}
