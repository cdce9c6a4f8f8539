package checkin

import (
	"context"
)

// Service reconciles identifiers presented at the entry lanes with the
// loaded event and the booking system
//
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/eventswipe/internal/services/checkin Service
type Service interface {
	// Start launches the submission workers and the notice loop
	Start(ctx context.Context) error

	// Stop waits for queued submissions and closes Notices
	Stop(ctx context.Context) error

	// CheckIdentifier classifies an identifier and records attendance for it.
	// It returns once the local classification is known and never waits for
	// the booking system to confirm a submission.
	CheckIdentifier(ctx context.Context, input *CheckIdentifierInput) (*CheckIdentifierOutput, error)

	// LoadEvent loads an event and its booking list from the booking system
	LoadEvent(ctx context.Context, input *LoadEventInput) (*LoadEventOutput, error)

	// LoadOfflineEvent enters an event from local booking lists
	LoadOfflineEvent(ctx context.Context, input *LoadOfflineEventInput) (*LoadOfflineEventOutput, error)

	// LoadWaitingList replaces the waiting list of the loaded event
	LoadWaitingList(ctx context.Context, input *LoadWaitingListInput) error

	SetBookingListChecking(enabled bool)
	SetWaitingListChecking(enabled bool)

	// GoOnline switches to online mode and replays the unsaved ledger
	GoOnline(ctx context.Context) (*GoOnlineOutput, error)

	// GoOffline switches to offline mode
	GoOffline()

	// ReplayUnsaved re-resolves and resubmits every identifier in the unsaved ledger
	ReplayUnsaved(ctx context.Context) (*ReplayOutput, error)

	// AddToEarlyList queues an identifier without classifying it
	AddToEarlyList(ctx context.Context, input *AddToEarlyListInput) error

	// ListUnsaved returns the unsaved ledger of the loaded event in order
	ListUnsaved(ctx context.Context) (*ListUnsavedOutput, error)

	// DiscardUnsaved empties the unsaved ledger without saving it.
	// Front-ends call it only after the operator confirms.
	DiscardUnsaved(ctx context.Context) (*DiscardUnsavedOutput, error)

	// Export writes the unsaved ledger and clears it
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Finish ends the session, optionally marking unattended bookings absent
	Finish(ctx context.Context, input *FinishInput) error

	Status(ctx context.Context) (*StatusOutput, error)

	// UnsavedCount reports the ledger size of the loaded event
	UnsavedCount(ctx context.Context) (string, int, error)

	// History returns the audit trail of the loaded event
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)

	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
	ListEvents(ctx context.Context) (*ListEventsOutput, error)
	GetStudent(ctx context.Context, input *GetStudentInput) (*GetStudentOutput, error)
	SearchStudents(ctx context.Context, input *SearchStudentsInput) (*SearchStudentsOutput, error)

	// RemoteAttendeeCount asks the booking system how many attendees it has recorded
	RemoteAttendeeCount(ctx context.Context) (int, error)

	// CancelBooking cancels the booking of an identifier on the loaded event
	CancelBooking(ctx context.Context, input *CancelBookingInput) error

	// Notices delivers the outcome of background submissions
	Notices() <-chan *Notice
}
