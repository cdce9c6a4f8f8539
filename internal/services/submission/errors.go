package submission

// QueueError is a custom error type for submission queue errors
type QueueError string

// Error implements the error interface
func (e QueueError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      QueueError = "config cannot be nil"
	ErrNilProvider    QueueError = "booking provider cannot be nil"
	ErrNilLedger      QueueError = "unsaved ledger cannot be nil"
	ErrNilSnapshot    QueueError = "snapshot cannot be nil"
	ErrNilMode        QueueError = "mode controller cannot be nil"
	ErrNilClock       QueueError = "clock cannot be nil"
	ErrQueueFull      QueueError = "submission queue is full"
	ErrQueueClosed    QueueError = "submission queue is closed"
	ErrAlreadyStarted QueueError = "submission queue already started"
	ErrNoRemoteEvent  QueueError = "event has no booking system counterpart"
	ErrNoSession      QueueError = "event has no sessions to book onto"
	ErrEventChanged   QueueError = "submission is for an event that is no longer loaded"
)
