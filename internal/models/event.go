package models

import (
	"time"
)

// Session is one time window of an event
type Session struct {
	// ID is the booking system's id for the session
	ID string

	// Start of the session window
	Start time.Time

	// End of the session window
	End time.Time

	// BookingCount is the number of bookings held for the session
	BookingCount int
}

// Contains reports whether t falls inside the session window, inclusive of both ends
func (s *Session) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

// Event is the snapshot of an event being checked in
type Event struct {
	// ID is the booking system's event key, or a generated id for offline events
	ID string

	// Title is the display title of the event
	Title string

	// Venue is where the event takes place
	Venue string

	// StartTime is when the event starts
	StartTime time.Time

	// RegistrationOpenTime is the earliest time a check-in may be sent remotely.
	// A zero value means registration is always open.
	RegistrationOpenTime time.Time

	// BookingLimit is the maximum number of bookings, ignored when IsUnlimited
	BookingLimit int

	// IsUnlimited indicates the event has no booking limit
	IsUnlimited bool

	// IsDropIn indicates the event takes no bookings
	IsDropIn bool

	// IsOffline indicates the event was entered locally and has no remote counterpart
	IsOffline bool

	// Sessions of the event in start order
	Sessions []*Session

	// Bookings known for the event at load time
	Bookings []*Booking

	// WaitingList holds identifiers on the event's waiting list
	WaitingList []string

	// AttendeeCount is the remote count of attendees at load time
	AttendeeCount int

	// BookingCount is the remote count of bookings at load time
	BookingCount int

	// UnspecifiedCount is the remote count of bookings with no attendance recorded
	UnspecifiedCount int
}

// EffectiveSession returns the session whose window contains now, falling back
// to the last session. It returns nil when the event has no sessions.
func (e *Event) EffectiveSession(now time.Time) *Session {
	if len(e.Sessions) == 0 {
		return nil
	}

	for _, session := range e.Sessions {
		if session.Contains(now) {
			return session
		}
	}

	return e.Sessions[len(e.Sessions)-1]
}

// IsBeforeRegistration reports whether now is not yet past the registration open time
func (e *Event) IsBeforeRegistration(now time.Time) bool {
	if e.RegistrationOpenTime.IsZero() {
		return false
	}

	return !now.After(e.RegistrationOpenTime)
}

// IsFull reports whether the remote booking count has reached the booking limit
func (e *Event) IsFull() bool {
	if e.IsUnlimited || e.IsDropIn || e.BookingLimit <= 0 {
		return false
	}

	return e.BookingCount >= e.BookingLimit
}
