package submission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/common/clock"
	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/monitoring"
	"github.com/KirkDiggler/eventswipe/internal/repositories/unsaved"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
	"github.com/KirkDiggler/eventswipe/internal/services/snapshot"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
)

type task struct {
	eventID string
	booking models.Booking
}

// queue implements the Queue interface with a fixed worker pool
type queue struct {
	provider      booking.Provider
	ledger        unsaved.Repository
	snapshot      snapshot.Snapshot
	mode          *mode.Controller
	clock         clock.Clock
	workers       int
	submitTimeout time.Duration

	mu      sync.Mutex
	started bool
	closed  bool
	tasks   chan task
	results chan *Result
	group   *errgroup.Group
}

// New creates a submission queue. Workers are launched by Start.
func New(cfg *Config) (*queue, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Provider == nil {
		return nil, ErrNilProvider
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.Snapshot == nil {
		return nil, ErrNilSnapshot
	}

	if cfg.Mode == nil {
		return nil, ErrNilMode
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}

	return &queue{
		provider:      cfg.Provider,
		ledger:        cfg.Ledger,
		snapshot:      cfg.Snapshot,
		mode:          cfg.Mode,
		clock:         cfg.Clock,
		workers:       workers,
		submitTimeout: cfg.SubmitTimeout,
		tasks:         make(chan task, size),
		results:       make(chan *Result, size),
	}, nil
}

// Start launches the workers. Work in flight is not cancelled with ctx;
// Stop waits for it instead.
func (q *queue) Start(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	if q.started {
		return ErrAlreadyStarted
	}
	q.started = true

	workCtx := context.WithoutCancel(ctx)
	q.group = &errgroup.Group{}
	for i := 0; i < q.workers; i++ {
		q.group.Go(func() error {
			for t := range q.tasks {
				q.process(workCtx, t)
			}
			return nil
		})
	}

	log.Printf("Submission queue started with %d workers", q.workers)

	return nil
}

func (q *queue) Enqueue(input *EnqueueInput) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.tasks <- task{eventID: input.EventID, booking: input.Booking}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *queue) Results() <-chan *Result {
	return q.results
}

func (q *queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.tasks)
	group := q.group
	q.mu.Unlock()

	if group == nil {
		close(q.results)
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- group.Wait()
	}()

	select {
	case err := <-done:
		close(q.results)
		return err
	case <-ctx.Done():
		return fmt.Errorf("waiting for submissions: %w", ctx.Err())
	}
}

// process submits one booking and queues its identifier when that fails
func (q *queue) process(ctx context.Context, t task) {
	callCtx := ctx
	if q.submitTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, q.submitTimeout)
		defer cancel()
	}

	out, err := q.Submit(callCtx, &SubmitInput{EventID: t.eventID, Booking: t.booking})

	result := &Result{
		EventID: t.eventID,
		Booking: out.Booking,
		Err:     err,
	}

	if err != nil {
		log.Printf("Submission of %s failed: %v", t.booking.Identifier, err)
		result.Unsaved = true
		pushErr := q.mode.RecordUnsaved(func() error {
			return q.ledger.Push(ctx, &unsaved.PushInput{EventID: t.eventID, Identifier: t.booking.Identifier})
		})
		if pushErr != nil {
			log.Printf("Failed to queue %s as unsaved: %v", t.booking.Identifier, pushErr)
			result.Held = errors.Is(pushErr, unsaved.ErrHeld)
		}
	}

	monitoring.TrackSubmission("queue", Outcome(err))

	q.results <- result
}

// Submit creates the booking when it has no remote id yet and marks it attended
func (q *queue) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	out := &SubmitOutput{Booking: input.Booking}
	identifier := input.Booking.Identifier

	summary := q.snapshot.Summary()
	if input.EventID == "" || summary.IsOffline {
		return out, ErrNoRemoteEvent
	}

	if summary.ID != input.EventID {
		return out, fmt.Errorf("%w: loaded %s, submitting for %s", ErrEventChanged, summary.ID, input.EventID)
	}

	now := q.clock.Now()
	if q.snapshot.BeforeRegistration(now) {
		q.setStatus(&out.Booking, models.BookingStatusEarly)
		return out, fmt.Errorf("check-in %s: %w", identifier, booking.ErrEarlyRegistration)
	}

	if out.Booking.BookingID == "" {
		session, ok := q.snapshot.EffectiveSession(now)
		if !ok {
			return out, ErrNoSession
		}

		created, err := q.provider.CreateBooking(ctx, &booking.CreateBookingInput{
			Identifier: identifier,
			EventKey:   input.EventID,
			SessionKey: session.ID,
		})
		if err != nil {
			if errors.Is(err, booking.ErrEventFull) {
				q.setStatus(&out.Booking, models.BookingStatusEventFull)
			}
			return out, err
		}

		merge(&out.Booking, created.Booking)
		out.Booking.SessionID = session.ID
		q.snapshot.AddBooking(out.Booking)
	}

	err := q.provider.MarkStatus(ctx, &booking.MarkStatusInput{
		Status:     models.BookingStatusAttended,
		BookingIDs: []string{out.Booking.BookingID},
		EventKey:   input.EventID,
	})
	if err != nil {
		if errors.Is(err, booking.ErrEarlyRegistration) {
			q.setStatus(&out.Booking, models.BookingStatusEarly)
		}
		return out, err
	}

	q.setStatus(&out.Booking, models.BookingStatusAttended)

	return out, nil
}

// setStatus updates the booking and its copy in the snapshot
func (q *queue) setStatus(b *models.Booking, status models.BookingStatus) {
	b.Status = status
	bookingID := b.BookingID
	q.snapshot.UpdateBooking(b.Identifier, func(stored *models.Booking) {
		stored.Status = status
		if bookingID != "" {
			stored.BookingID = bookingID
		}
	})
}

// merge copies what the booking system knows about a new booking
func merge(b *models.Booking, created *models.Booking) {
	if created == nil {
		return
	}

	b.BookingID = created.BookingID
	b.IsBooked = true
	if created.AttendeeID != "" {
		b.AttendeeID = created.AttendeeID
	}
	if b.FirstName == "" && b.LastName == "" {
		b.FirstName = created.FirstName
		b.LastName = created.LastName
	}
	if b.Status == "" || b.Status == models.BookingStatusNotBooked {
		b.Status = created.Status
	}
}
