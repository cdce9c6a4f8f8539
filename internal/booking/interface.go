package booking

import (
	"context"
)

// Provider is the remote booking system an event is checked in against
//
//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/KirkDiggler/eventswipe/internal/booking Provider
type Provider interface {
	// Authenticate signs the operator in to the booking system's admin pages
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// FetchEvent loads an event snapshot, optionally with its booking list
	FetchEvent(ctx context.Context, input *FetchEventInput) (*FetchEventOutput, error)

	// FetchBookingList loads the bookings of an event or one of its sessions
	FetchBookingList(ctx context.Context, input *FetchBookingListInput) (*FetchBookingListOutput, error)

	// FetchWaitingList loads the identifiers on an event's waiting list
	FetchWaitingList(ctx context.Context, input *FetchWaitingListInput) (*FetchWaitingListOutput, error)

	// LookupBookingStatus asks the booking system for the live status of one identifier
	LookupBookingStatus(ctx context.Context, input *LookupBookingStatusInput) (*LookupBookingStatusOutput, error)

	// CreateBooking books an identifier onto an event session.
	// It returns ErrEventFull when the event has no capacity left.
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*CreateBookingOutput, error)

	// CancelBooking removes an identifier's booking from an event
	CancelBooking(ctx context.Context, input *CancelBookingInput) error

	// MarkStatus sets the attendance status of bookings.
	// It returns ErrEarlyRegistration when registration has not opened yet.
	MarkStatus(ctx context.Context, input *MarkStatusInput) error

	// MarkAllUnspecifiedAbsent marks every booking with no attendance as absent
	MarkAllUnspecifiedAbsent(ctx context.Context, input *MarkAllUnspecifiedAbsentInput) error

	// ListEvents returns the events available for check-in
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// GetStudent looks a student up by student number
	GetStudent(ctx context.Context, input *GetStudentInput) (*GetStudentOutput, error)

	// SearchStudents searches students by a free text term
	SearchStudents(ctx context.Context, input *SearchStudentsInput) (*SearchStudentsOutput, error)

	// GetAttendeeCount returns the number of attendees the booking system holds for an event
	GetAttendeeCount(ctx context.Context, input *GetAttendeeCountInput) (*GetAttendeeCountOutput, error)

	// IsValidIdentifier reports whether a raw identifier looks like a student number
	IsValidIdentifier(identifier string) bool

	// AdminEventURL returns the admin page of an event
	AdminEventURL(eventKey string) string
}
