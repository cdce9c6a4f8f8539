package models

// BookingStatus represents the attendance state of a booking
type BookingStatus string

const (
	// BookingStatusUnspecified indicates attendance has not been recorded yet
	BookingStatusUnspecified BookingStatus = "unspecified"

	// BookingStatusAttended indicates the attendee was marked present
	BookingStatusAttended BookingStatus = "attended"

	// BookingStatusAbsent indicates the attendee was marked absent
	BookingStatusAbsent BookingStatus = "absent"

	// BookingStatusNotBooked indicates the identifier holds no booking
	BookingStatusNotBooked BookingStatus = "not_booked"

	// BookingStatusEventFull indicates a booking could not be created because the event is full
	BookingStatusEventFull BookingStatus = "event_full"

	// BookingStatusEarly indicates the check-in happened before registration opened.
	// It is local only and never sent to the booking system.
	BookingStatusEarly BookingStatus = "early"
)

// IsRemote reports whether the status can be sent to the booking system
func (s BookingStatus) IsRemote() bool {
	return s != BookingStatusEarly && s != ""
}

// String implements fmt.Stringer
func (s BookingStatus) String() string {
	return string(s)
}

// Booking is the result of classifying one identifier against an event
type Booking struct {
	// Identifier is the attendee's student number or card value
	Identifier string

	// BookingID is the booking system's id for the booking, empty until one exists remotely
	BookingID string

	// AttendeeID is the booking system's id for the attendee
	AttendeeID string

	// FirstName of the attendee when known
	FirstName string

	// LastName of the attendee when known
	LastName string

	// SessionID is the session the booking belongs to
	SessionID string

	// Status is the attendance state of the booking
	Status BookingStatus

	// IsBooked indicates the identifier is entitled to attend
	IsBooked bool

	// IsAlreadyRecorded indicates the identifier was already checked in during this run
	IsAlreadyRecorded bool

	// IsOnWaitingList indicates the identifier was found on the waiting list
	IsOnWaitingList bool
}

// FullName joins the known parts of the attendee's name
func (b *Booking) FullName() string {
	switch {
	case b.FirstName == "":
		return b.LastName
	case b.LastName == "":
		return b.FirstName
	}

	return b.FirstName + " " + b.LastName
}
