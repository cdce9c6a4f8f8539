package careerhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/models"
)

// CareerHub status codes
const (
	statusAttended    = 1
	statusUnspecified = 0
	statusEventFull   = -1
	statusAbsent      = 2
	statusNotBooked   = -2
)

func toStatus(code int) models.BookingStatus {
	switch code {
	case statusAttended:
		return models.BookingStatusAttended
	case statusAbsent:
		return models.BookingStatusAbsent
	case statusEventFull:
		return models.BookingStatusEventFull
	case statusNotBooked:
		return models.BookingStatusNotBooked
	default:
		return models.BookingStatusUnspecified
	}
}

type bookingReply struct {
	ID          int     `json:"id"`
	ExternalID  *string `json:"externalId"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	JobSeekerID int     `json:"jobSeekerId"`
	Status      int     `json:"status"`
}

// FetchBookingList loads bookings from the admin query page. Bookings with no
// student number cannot be matched at an entry lane and are skipped.
func (c *Client) FetchBookingList(ctx context.Context, input *booking.FetchBookingListInput) (*booking.FetchBookingListOutput, error) {
	url := fmt.Sprintf("%sevents/bookings/query/%s?sessionId=%s", c.adminURL(), input.EventKey, input.SessionKey)
	req, err := c.newAdminRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var reply struct {
		Bookings []bookingReply `json:"bookings"`
	}
	if _, err := c.send("fetch_booking_list", req, &reply); err != nil {
		return nil, err
	}

	output := &booking.FetchBookingListOutput{}
	for _, b := range reply.Bookings {
		if b.ExternalID == nil || *b.ExternalID == "" {
			log.Printf("Empty student number for job seeker %d on event %s", b.JobSeekerID, input.EventKey)
			continue
		}

		output.Bookings = append(output.Bookings, &models.Booking{
			Identifier: *b.ExternalID,
			BookingID:  strconv.Itoa(b.ID),
			AttendeeID: strconv.Itoa(b.JobSeekerID),
			FirstName:  deref(b.FirstName),
			LastName:   deref(b.LastName),
			SessionID:  input.SessionKey,
			Status:     toStatus(b.Status),
			IsBooked:   true,
		})
	}

	return output, nil
}

// LookupBookingStatus asks the integrations API for the live booking of an identifier
func (c *Client) LookupBookingStatus(ctx context.Context, input *booking.LookupBookingStatusInput) (*booking.LookupBookingStatusOutput, error) {
	req, err := c.newAPIRequest(ctx, http.MethodGet, c.bookingURL(input.Identifier, input.EventKey, ""), nil)
	if err != nil {
		return nil, err
	}

	var reply struct {
		IsBooked    bool   `json:"isBooked"`
		Status      string `json:"status"`
		JobSeekerID int    `json:"jobSeekerId"`
		ID          int    `json:"id"`
	}
	if _, err := c.send("lookup_booking", req, &reply); err != nil {
		return nil, err
	}

	b := &models.Booking{
		Identifier: input.Identifier,
		AttendeeID: strconv.Itoa(reply.JobSeekerID),
		Status:     models.BookingStatusNotBooked,
	}
	if reply.IsBooked {
		b.IsBooked = true
		b.Status = lookupStatus(reply.Status)
		if reply.ID != 0 {
			b.BookingID = strconv.Itoa(reply.ID)
		}
	}

	return &booking.LookupBookingStatusOutput{Booking: b}, nil
}

func lookupStatus(status string) models.BookingStatus {
	switch status {
	case "Attended":
		return models.BookingStatusAttended
	case "Absent":
		return models.BookingStatusAbsent
	default:
		return models.BookingStatusUnspecified
	}
}

// CreateBooking books an identifier onto a session. CareerHub answers 409, or
// a booking with the event full status, when the event has no capacity left.
func (c *Client) CreateBooking(ctx context.Context, input *booking.CreateBookingInput) (*booking.CreateBookingOutput, error) {
	req, err := c.newAPIRequest(ctx, http.MethodPost, c.bookingURL(input.Identifier, input.EventKey, input.SessionKey), bytes.NewReader([]byte(" ")))
	if err != nil {
		return nil, err
	}

	var reply bookingReply
	code, err := c.send("create_booking", req, &reply)
	if code == http.StatusConflict {
		return nil, fmt.Errorf("create booking %s: %w", input.Identifier, booking.ErrEventFull)
	}
	if err != nil {
		return nil, err
	}

	if reply.Status == statusEventFull {
		return nil, fmt.Errorf("create booking %s: %w", input.Identifier, booking.ErrEventFull)
	}

	if reply.ID == 0 {
		return nil, fmt.Errorf("create booking %s: missing booking id: %w", input.Identifier, booking.ErrUnexpectedResponse)
	}

	return &booking.CreateBookingOutput{
		Booking: &models.Booking{
			Identifier: input.Identifier,
			BookingID:  strconv.Itoa(reply.ID),
			AttendeeID: strconv.Itoa(reply.JobSeekerID),
			FirstName:  deref(reply.FirstName),
			LastName:   deref(reply.LastName),
			SessionID:  input.SessionKey,
			Status:     models.BookingStatusUnspecified,
			IsBooked:   true,
		},
	}, nil
}

// CancelBooking deletes the booking an identifier holds on an event
func (c *Client) CancelBooking(ctx context.Context, input *booking.CancelBookingInput) error {
	req, err := c.newAPIRequest(ctx, http.MethodDelete, c.bookingURL(input.Identifier, input.EventKey, input.SessionKey), nil)
	if err != nil {
		return err
	}

	_, err = c.send("cancel_booking", req, nil)
	return err
}

type markStatusRequest struct {
	EventID json.Number   `json:"eventID"`
	IDs     []json.Number `json:"ids"`
	Notify  *bool         `json:"notify,omitempty"`
}

// MarkStatus posts an attendance update to the admin pages. A 400 reply to
// marking attended means registration for the event has not opened yet.
func (c *Client) MarkStatus(ctx context.Context, input *booking.MarkStatusInput) error {
	var path string
	payload := markStatusRequest{EventID: json.Number(input.EventKey)}

	switch input.Status {
	case models.BookingStatusAttended:
		path = "markattended/"
	case models.BookingStatusAbsent:
		path = "markabsent/"
		notify := input.Notify
		payload.Notify = &notify
	case models.BookingStatusUnspecified:
		path = "markunspecified/"
	default:
		return fmt.Errorf("mark %s: %w", input.Status, booking.ErrInvalidStatus)
	}

	for _, id := range input.BookingIDs {
		payload.IDs = append(payload.IDs, json.Number(id))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mark %s: %w", input.Status, err)
	}

	url := c.adminURL() + "events/bookings/" + path + input.EventKey + "?sessionId="
	req, err := c.newAdminRequest(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json;charset=utf-8")

	code, err := c.send("mark_"+string(input.Status), req, nil)
	if code == http.StatusBadRequest && input.Status == models.BookingStatusAttended {
		return fmt.Errorf("mark attended on event %s: %w", input.EventKey, booking.ErrEarlyRegistration)
	}

	return err
}

// MarkAllUnspecifiedAbsent marks every booking still unspecified as absent
func (c *Client) MarkAllUnspecifiedAbsent(ctx context.Context, input *booking.MarkAllUnspecifiedAbsentInput) error {
	out, err := c.FetchEvent(ctx, &booking.FetchEventInput{
		EventKey:        input.EventKey,
		IncludeBookings: true,
	})
	if err != nil {
		return err
	}

	var ids []string
	for _, b := range out.Event.Bookings {
		if b.Status == models.BookingStatusUnspecified && b.BookingID != "" {
			ids = append(ids, b.BookingID)
		}
	}

	if len(ids) == 0 {
		return nil
	}

	return c.MarkStatus(ctx, &booking.MarkStatusInput{
		Status:     models.BookingStatusAbsent,
		BookingIDs: ids,
		EventKey:   input.EventKey,
		Notify:     input.Notify,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
