package submission

import "context"

// Queue sends check-ins to the booking system off the interactive path
//
//go:generate mockgen -package=mocks -destination=mocks/mock_queue.go github.com/KirkDiggler/eventswipe/internal/services/submission Queue
type Queue interface {
	// Start launches one worker per entry lane
	Start(ctx context.Context) error

	// Enqueue hands a booking to the workers without waiting.
	// It fails with ErrQueueFull or ErrQueueClosed, never blocks.
	Enqueue(input *EnqueueInput) error

	// Submit sends one booking synchronously, without touching the unsaved ledger
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// Results delivers the outcome of every enqueued booking.
	// It is closed once Stop has drained the workers.
	Results() <-chan *Result

	// Stop refuses new work and waits for queued work to finish
	Stop(ctx context.Context) error
}
