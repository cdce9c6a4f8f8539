package snapshot

import (
	"time"

	"github.com/KirkDiggler/eventswipe/internal/models"
)

// Snapshot owns the in-memory state of the event being checked in.
// Every method is safe for concurrent use; bookings are returned by value.
type Snapshot interface {
	// Load replaces the event and forgets every recorded identifier
	Load(event *models.Event)

	// Loaded reports whether an event has been loaded
	Loaded() bool

	// Summary describes the loaded event
	Summary() Summary

	// FindBooking scans the booking list for an identifier
	FindBooking(identifier string) (models.Booking, bool)

	// AddBooking appends a booking created during the run to the booking list
	AddBooking(b models.Booking)

	// UpdateBooking applies fn to the identifier's booking in the booking list
	// and in the recorded set. It reports whether anything was updated.
	UpdateBooking(identifier string, fn func(b *models.Booking)) bool

	// SetWaitingList replaces the waiting list
	SetWaitingList(identifiers []string)

	// OnWaitingList scans the waiting list for an identifier
	OnWaitingList(identifier string) bool

	// Recorded returns the booking recorded for an identifier during this run
	Recorded(identifier string) (models.Booking, bool)

	// MarkRecorded adds a booking to the recorded set. It returns false,
	// leaving the set unchanged, when the identifier was already recorded.
	MarkRecorded(b models.Booking) bool

	// EffectiveSession returns the session a check-in at now belongs to
	EffectiveSession(now time.Time) (models.Session, bool)

	// BeforeRegistration reports whether now is before registration opens
	BeforeRegistration(now time.Time) bool

	// Close stops the snapshot; later calls return zero values
	Close()
}

// Summary is a read-only view of the loaded event
type Summary struct {
	ID                   string
	Title                string
	Venue                string
	StartTime            time.Time
	RegistrationOpenTime time.Time
	BookingLimit         int
	IsUnlimited          bool
	IsDropIn             bool
	IsOffline            bool
	IsFull               bool
	SessionCount         int
	BookingListSize      int
	WaitingListSize      int
	AttendeeCount        int
	BookingCount         int
	UnspecifiedCount     int

	// RecordedCount is the number of identifiers recorded during this run
	RecordedCount int
}
