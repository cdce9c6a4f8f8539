package checkin

import (
	"io"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/common/clock"
	"github.com/KirkDiggler/eventswipe/internal/common/uuid"
	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/repositories/attendance"
	"github.com/KirkDiggler/eventswipe/internal/repositories/unsaved"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
	"github.com/KirkDiggler/eventswipe/internal/services/snapshot"
	"github.com/KirkDiggler/eventswipe/internal/services/submission"
)

// Config holds the dependencies of the check-in service
type Config struct {
	Provider   booking.Provider
	Snapshot   snapshot.Snapshot
	Mode       *mode.Controller
	Queue      submission.Queue
	Ledger     unsaved.Repository
	Attendance attendance.Repository
	Clock      clock.Clock
	UUID       uuid.UUID

	// CheckBookingList classifies identifiers against the loaded booking list
	CheckBookingList bool

	// CheckWaitingList also scans the waiting list when the booking list has no match
	CheckWaitingList bool

	// NoticeBuffer bounds the undelivered notices, 64 when zero
	NoticeBuffer int
}

// CheckIdentifierInput contains the identifier presented at an entry lane
type CheckIdentifierInput struct {
	Identifier string
}

// CheckIdentifierOutput contains the local classification
type CheckIdentifierOutput struct {
	Booking models.Booking

	// Queued is true when the identifier went straight into the unsaved ledger
	Queued bool

	// Held is true when the ledger rejected the identifier and it is only
	// held in memory until the ledger recovers
	Held bool
}

// LoadEventInput selects the booking system event to load
type LoadEventInput struct {
	EventKey string

	// UseWaitingList also loads the waiting list and enables waiting list checks when it is not empty
	UseWaitingList bool
}

// LoadEventOutput describes the loaded event
type LoadEventOutput struct {
	Event snapshot.Summary

	// Unsaved is the number of identifiers left in the ledger by an earlier run
	Unsaved int
}

// LoadOfflineEventInput describes an event entered without the booking system
type LoadOfflineEventInput struct {
	Title string

	// BookingLists holds one list of identifiers per session
	BookingLists [][]string
}

// LoadOfflineEventOutput describes the entered event
type LoadOfflineEventOutput struct {
	Event snapshot.Summary

	// SingleSlot is true when the event has one session
	SingleSlot bool
}

type LoadWaitingListInput struct {
	Identifiers []string
}

// GoOnlineOutput describes the mode switch
type GoOnlineOutput struct {
	Changed bool

	// Replay is nil when there was nothing to replay
	Replay *ReplayOutput
}

// ReplayOutput summarizes a replay of the unsaved ledger
type ReplayOutput struct {
	Attempted int
	Saved     int
	Remaining int

	// EventFull is true when the booking system reported the event full and the replay stopped
	EventFull bool
}

type AddToEarlyListInput struct {
	Identifier string
}

// ExportInput contains the destination of the export
type ExportInput struct {
	Writer io.Writer
}

// ExportOutput reports how many identifiers were written
type ExportOutput struct {
	Count int
}

// FinishInput controls what happens to bookings nobody checked in
type FinishInput struct {
	MarkAbsent bool
	Notify     bool
}

// StatusOutput describes the session
type StatusOutput struct {
	Loaded           bool
	Event            snapshot.Summary
	Mode             mode.State
	Saved            bool
	Unsaved          int
	CheckBookingList bool
	CheckWaitingList bool
	EventFull        bool
	RemoteEnabled    bool

	// AdminURL is the booking system page of a remote event
	AdminURL string
}

type ListUnsavedOutput struct {
	EventID     string
	Identifiers []string
}

type DiscardUnsavedOutput struct {
	Discarded int
}

type HistoryInput struct {
	// Identifier restricts the history to one attendee when set
	Identifier string
}

type HistoryOutput struct {
	Records []*models.CheckIn
}

type AuthenticateInput struct {
	Username string
	Password string
}

type AuthenticateOutput struct {
	Success bool
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
	Term string
}

type SearchStudentsOutput struct {
	Students []*models.Student
}

type CancelBookingInput struct {
	Identifier string
}

// Notice reports the outcome of a background submission to the front-ends
type Notice struct {
	EventID    string
	Identifier string
	Name       string
	Status     models.BookingStatus

	// Outcome is attended, event_full, early or failed
	Outcome string
	Err     error

	// Unsaved is true when the identifier went into the unsaved ledger
	Unsaved bool

	// Held is true when the ledger rejected the identifier and it is only
	// held in memory until the ledger recovers
	Held bool
}
