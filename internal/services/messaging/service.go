package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
)

// service implements the Service interface
type service struct{}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{}, nil
}

// heldWarning is appended when an identifier is only held in memory
const heldWarning = " The unsaved list could not be written, export before closing."

// GetCheckInMessage describes the local classification of an identifier
func (s *service) GetCheckInMessage(ctx context.Context, input *GetCheckInMessageInput) (*GetCheckInMessageOutput, error) {
	output := checkInMessage(input)
	if input.Held {
		output.Message += heldWarning
		if output.Severity == SeveritySuccess {
			output.Severity = SeverityWarning
		}
	}

	return output, nil
}

func checkInMessage(input *GetCheckInMessageInput) *GetCheckInMessageOutput {
	b := input.Booking
	who := describe(b.Identifier, b.FullName())

	switch {
	case b.IsAlreadyRecorded:
		return &GetCheckInMessageOutput{
			Title:    "Already recorded",
			Message:  fmt.Sprintf("%s has already been checked in.", who),
			Severity: SeverityWarning,
		}

	case b.IsBooked && b.Status == models.BookingStatusEarly:
		return &GetCheckInMessageOutput{
			Title:    "Registration not open",
			Message:  fmt.Sprintf("%s was added to the early list and will be saved once registration opens.", who),
			Severity: SeverityWarning,
		}

	case b.IsBooked && b.Status == models.BookingStatusEventFull:
		return &GetCheckInMessageOutput{
			Title:    "Event full",
			Message:  fmt.Sprintf("%s could not be booked, the event is full.", who),
			Severity: SeverityError,
		}

	case b.IsBooked:
		message := fmt.Sprintf("%s is checked in.", who)
		if input.Queued {
			message = fmt.Sprintf("%s is checked in and waiting to be saved.", who)
		}
		return &GetCheckInMessageOutput{
			Title:    "Booked",
			Message:  message,
			Severity: SeveritySuccess,
		}

	case b.IsOnWaitingList:
		return &GetCheckInMessageOutput{
			Title:    "On the waiting list",
			Message:  fmt.Sprintf("%s is on the waiting list but has no booking.", who),
			Severity: SeverityWarning,
		}

	default:
		return &GetCheckInMessageOutput{
			Title:    "Not booked",
			Message:  fmt.Sprintf("%s is not booked on this event.", who),
			Severity: SeverityError,
		}
	}
}

// GetNoticeMessage describes a submission that finished in the background
func (s *service) GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error) {
	who := describe(input.Identifier, input.Name)

	if input.Held {
		return &GetNoticeMessageOutput{
			Message:  fmt.Sprintf("%s could not be saved.%s", who, heldWarning),
			Severity: SeverityError,
		}, nil
	}

	switch input.Outcome {
	case "attended":
		return &GetNoticeMessageOutput{
			Message:  fmt.Sprintf("%s saved to the booking system.", who),
			Severity: SeverityInfo,
		}, nil
	case "event_full":
		return &GetNoticeMessageOutput{
			Message:  fmt.Sprintf("Event is full, %s was added to the unsaved list.", who),
			Severity: SeverityError,
		}, nil
	case "early":
		return &GetNoticeMessageOutput{
			Message:  fmt.Sprintf("Registration is not open yet, %s was added to the unsaved list.", who),
			Severity: SeverityWarning,
		}, nil
	}

	message := fmt.Sprintf("%s could not be saved.", who)
	if input.Unsaved {
		message = fmt.Sprintf("%s could not be saved and was added to the unsaved list.", who)
	}

	return &GetNoticeMessageOutput{
		Message:  message,
		Severity: SeverityWarning,
	}, nil
}

func (s *service) GetReplayMessage(ctx context.Context, input *GetReplayMessageInput) (*GetReplayMessageOutput, error) {
	switch {
	case input.EventFull:
		return &GetReplayMessageOutput{
			Message:  fmt.Sprintf("Event is full. Saved %d of %d, %d still unsaved. Export them before closing.", input.Saved, input.Attempted, input.Remaining),
			Severity: SeverityError,
		}, nil
	case input.Attempted == 0 && input.Remaining == 0:
		return &GetReplayMessageOutput{
			Message:  "Nothing to save.",
			Severity: SeverityInfo,
		}, nil
	case input.Remaining > 0:
		return &GetReplayMessageOutput{
			Message:  fmt.Sprintf("Saved %d of %d, %d still unsaved.", input.Saved, input.Attempted, input.Remaining),
			Severity: SeverityWarning,
		}, nil
	default:
		return &GetReplayMessageOutput{
			Message:  fmt.Sprintf("All %d unsaved check-ins saved.", input.Saved),
			Severity: SeveritySuccess,
		}, nil
	}
}

// GetErrorMessage maps service errors to operator wording
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	var message string

	switch err := input.Err; {
	case err == nil:
		message = "Done."
	case errors.Is(err, booking.ErrEventFull):
		message = "The event is full."
	case errors.Is(err, booking.ErrNoStudentFound):
		message = "Student not found."
	case errors.Is(err, booking.ErrNotConfigured), errors.Is(err, mode.ErrRemoteDisabled):
		message = "The booking system is not configured. Working offline."
	case errors.Is(err, booking.ErrUnauthorized):
		message = "The booking system refused the credentials."
	case errors.Is(err, booking.ErrEventNotFound):
		message = "Event not found."
	case errors.Is(err, mode.ErrNoConnectivity):
		message = "No internet connection. Staying offline."
	case errors.Is(err, checkin.ErrEmptyIdentifier):
		message = "Scan or type a student number."
	case errors.Is(err, checkin.ErrBookingNotFound):
		message = "That student has no booking on this event."
	case errors.Is(err, checkin.ErrInvalidIdentifier):
		message = "That does not look like a valid student number."
	case errors.Is(err, checkin.ErrNoEvent):
		message = "Load an event first."
	case errors.Is(err, checkin.ErrUnsaved):
		message = "There are unsaved check-ins. Save or export them first."
	case errors.Is(err, checkin.ErrOffline):
		message = "Go online first."
	case errors.Is(err, checkin.ErrOfflineEvent):
		message = "This event was entered offline and is not in the booking system."
	default:
		message = fmt.Sprintf("Something went wrong: %v", err)
	}

	return &GetErrorMessageOutput{Message: message}, nil
}

// describe names an attendee by name and identifier when the name is known
func describe(identifier, name string) string {
	if name == "" {
		return identifier
	}

	return fmt.Sprintf("%s (%s)", name, identifier)
}
