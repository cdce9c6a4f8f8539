package booking

import (
	"time"

	"github.com/KirkDiggler/eventswipe/internal/models"
)

// AuthenticateInput contains the operator's admin credentials
type AuthenticateInput struct {
	Username string
	Password string
}

// AuthenticateOutput reports whether the sign in succeeded
type AuthenticateOutput struct {
	Success bool
}

// FetchEventInput selects the event to load
type FetchEventInput struct {
	// EventKey is the booking system's event key
	EventKey string

	// IncludeBookings loads the booking list alongside the event
	IncludeBookings bool
}

// FetchEventOutput contains the loaded event
type FetchEventOutput struct {
	Event *models.Event
}

// FetchBookingListInput selects the bookings to load
type FetchBookingListInput struct {
	EventKey string

	// SessionKey restricts the list to one session when set
	SessionKey string
}

// FetchBookingListOutput contains the bookings of an event
type FetchBookingListOutput struct {
	Bookings []*models.Booking
}

type FetchWaitingListInput struct {
	EventKey string
}

type FetchWaitingListOutput struct {
	Identifiers []string
}

// LookupBookingStatusInput identifies the booking to look up
type LookupBookingStatusInput struct {
	Identifier string
	EventKey   string
}

// LookupBookingStatusOutput contains the live booking.
// Booking.Status is BookingStatusNotBooked when no booking exists.
type LookupBookingStatusOutput struct {
	Booking *models.Booking
}

// CreateBookingInput identifies the booking to create
type CreateBookingInput struct {
	Identifier string
	EventKey   string
	SessionKey string
}

// CreateBookingOutput contains the created booking
type CreateBookingOutput struct {
	Booking *models.Booking
}

// CancelBookingInput identifies the booking to cancel
type CancelBookingInput struct {
	// Identifier is the attendee's student number, the booking system keys bookings by it
	Identifier string
	EventKey   string
	SessionKey string
}

// MarkStatusInput describes an attendance update
type MarkStatusInput struct {
	// Status must be attended or absent
	Status     models.BookingStatus
	BookingIDs []string
	EventKey   string

	// Notify asks the booking system to notify attendees marked absent
	Notify bool
}

type MarkAllUnspecifiedAbsentInput struct {
	EventKey string
	Notify   bool
}

// ListEventsInput filters the listed events
type ListEventsInput struct {
	// From excludes events starting before it when set
	From time.Time
}

type ListEventsOutput struct {
	Events []*models.EventListing
}

type GetStudentInput struct {
	Number string
}

type GetStudentOutput struct {
	Student *models.Student
}

type SearchStudentsInput struct {
	Term       string
	MaxResults int
}

type SearchStudentsOutput struct {
	Students []*models.Student
}

type GetAttendeeCountInput struct {
	EventKey string
}

type GetAttendeeCountOutput struct {
	Count int
}
