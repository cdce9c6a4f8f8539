package submission

import (
	"errors"
	"time"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/common/clock"
	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/repositories/unsaved"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
	"github.com/KirkDiggler/eventswipe/internal/services/snapshot"
)

// Config holds the dependencies of a submission queue
type Config struct {
	Provider booking.Provider
	Ledger   unsaved.Repository
	Snapshot snapshot.Snapshot
	Mode     *mode.Controller
	Clock    clock.Clock

	// Workers is the number of entry lanes, one worker each
	Workers int

	// QueueSize bounds the bookings waiting for a worker
	QueueSize int

	// SubmitTimeout bounds each booking's calls to the booking system, unbounded when zero
	SubmitTimeout time.Duration
}

// EnqueueInput contains the booking to send
type EnqueueInput struct {
	EventID string
	Booking models.Booking
}

// SubmitInput contains the booking to send
type SubmitInput struct {
	EventID string
	Booking models.Booking
}

// SubmitOutput contains the booking as far as the submission got.
// It is returned alongside an error too.
type SubmitOutput struct {
	Booking models.Booking
}

// Result is the outcome of one enqueued booking
type Result struct {
	EventID string
	Booking models.Booking

	// Err is nil when the booking system marked the booking attended
	Err error

	// Unsaved is true when the identifier went into the unsaved ledger
	Unsaved bool

	// Held is true when the ledger rejected the identifier and it is only
	// held in memory until the ledger recovers
	Held bool
}

// Outcome names the result of a submission for logs and metrics
func Outcome(err error) string {
	switch {
	case err == nil:
		return "attended"
	case errors.Is(err, booking.ErrEventFull):
		return "event_full"
	case errors.Is(err, booking.ErrEarlyRegistration):
		return "early"
	default:
		return "failed"
	}
}
