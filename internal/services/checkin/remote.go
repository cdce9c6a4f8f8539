package checkin

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/models"
)

// Authenticate signs the operator in to the booking system admin pages
func (s *service) Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error) {
	if !s.mode.RemoteEnabled() {
		return nil, booking.ErrNotConfigured
	}

	out, err := s.provider.Authenticate(ctx, &booking.AuthenticateInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	return &AuthenticateOutput{Success: out.Success}, nil
}

// ListEvents lists the booking system events that have not started yet
func (s *service) ListEvents(ctx context.Context) (*ListEventsOutput, error) {
	if !s.mode.RemoteEnabled() {
		return nil, booking.ErrNotConfigured
	}

	out, err := s.provider.ListEvents(ctx, &booking.ListEventsInput{From: s.clock.Now()})
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: out.Events}, nil
}

func (s *service) GetStudent(ctx context.Context, input *GetStudentInput) (*GetStudentOutput, error) {
	if !s.mode.IsOnline() {
		return nil, ErrOffline
	}

	out, err := s.provider.GetStudent(ctx, &booking.GetStudentInput{Number: strings.TrimSpace(input.Number)})
	if err != nil {
		return nil, err
	}

	return &GetStudentOutput{Student: out.Student}, nil
}

func (s *service) SearchStudents(ctx context.Context, input *SearchStudentsInput) (*SearchStudentsOutput, error) {
	if !s.mode.IsOnline() {
		return nil, ErrOffline
	}

	out, err := s.provider.SearchStudents(ctx, &booking.SearchStudentsInput{Term: strings.TrimSpace(input.Term)})
	if err != nil {
		return nil, err
	}

	return &SearchStudentsOutput{Students: out.Students}, nil
}

func (s *service) RemoteAttendeeCount(ctx context.Context) (int, error) {
	summary, err := s.remoteEvent()
	if err != nil {
		return 0, err
	}

	out, err := s.provider.GetAttendeeCount(ctx, &booking.GetAttendeeCountInput{EventKey: summary.ID})
	if err != nil {
		return 0, err
	}

	return out.Count, nil
}

// CancelBooking cancels the booking of an identifier and forgets its booking id
func (s *service) CancelBooking(ctx context.Context, input *CancelBookingInput) error {
	summary, err := s.remoteEvent()
	if err != nil {
		return err
	}

	identifier := strings.TrimSpace(input.Identifier)
	b, ok := s.snapshot.FindBooking(identifier)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, identifier)
	}

	err = s.provider.CancelBooking(ctx, &booking.CancelBookingInput{
		Identifier: identifier,
		EventKey:   summary.ID,
		SessionKey: b.SessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to cancel booking of %s: %w", identifier, err)
	}

	s.snapshot.UpdateBooking(identifier, func(stored *models.Booking) {
		stored.BookingID = ""
		stored.Status = models.BookingStatusNotBooked
		stored.IsBooked = false
	})

	log.Printf("Cancelled booking of %s for event %s", identifier, summary.ID)

	return nil
}
