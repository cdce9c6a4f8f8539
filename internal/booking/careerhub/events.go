package careerhub

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/models"
)

const (
	bookingTypeCareerHub = 1
	venueTBC             = "Venue TBC"
	listEventsQuery      = "?filterOptions.filterIds=82&filterOptions.filterIds=83&filterOptions.filterOperator=And"
)

type eventReply struct {
	EntityID        int                   `json:"entityId"`
	Name            string                `json:"name"`
	Start           string                `json:"start"`
	Building        *string               `json:"building"`
	Location        *string               `json:"location"`
	OffCampusVenue  *string               `json:"offCampusVenue"`
	BookingType     int                   `json:"bookingType"`
	BookingSettings *bookingSettingsReply `json:"bookingSettings"`
	Sessions        []sessionReply        `json:"sessions"`
	Attendance      attendanceReply       `json:"attendance"`
}

type bookingSettingsReply struct {
	BookingLimit *int `json:"bookingLimit"`
}

type attendanceReply struct {
	Attended    int `json:"attended"`
	Total       int `json:"total"`
	Unspecified int `json:"unspecified"`
}

type sessionReply struct {
	ID       int    `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Bookings int    `json:"bookings"`
}

// FetchEvent loads an event and, for booked events, the bookings of every session
func (c *Client) FetchEvent(ctx context.Context, input *booking.FetchEventInput) (*booking.FetchEventOutput, error) {
	if input == nil || input.EventKey == "" {
		return nil, booking.ErrEventNotFound
	}

	req, err := c.newAPIRequest(ctx, http.MethodGet, c.eventAPIURL()+input.EventKey, nil)
	if err != nil {
		return nil, err
	}

	var reply eventReply
	code, err := c.send("fetch_event", req, &reply)
	if code == http.StatusNotFound {
		return nil, fmt.Errorf("fetch event %s: %w", input.EventKey, booking.ErrEventNotFound)
	}
	if err != nil {
		return nil, err
	}

	event, err := c.toEvent(input.EventKey, &reply)
	if err != nil {
		return nil, err
	}

	if input.IncludeBookings && !event.IsDropIn {
		for _, session := range event.Sessions {
			list, err := c.FetchBookingList(ctx, &booking.FetchBookingListInput{
				EventKey:   input.EventKey,
				SessionKey: session.ID,
			})
			if err != nil {
				return nil, err
			}
			event.Bookings = append(event.Bookings, list.Bookings...)
		}
	}

	return &booking.FetchEventOutput{Event: event}, nil
}

func (c *Client) toEvent(eventKey string, reply *eventReply) (*models.Event, error) {
	start, err := parseTime(reply.Start)
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: start %q: %w", eventKey, reply.Start, booking.ErrUnexpectedResponse)
	}

	event := &models.Event{
		ID:               eventKey,
		Title:            reply.Name,
		Venue:            venue(reply),
		StartTime:        start,
		AttendeeCount:    reply.Attendance.Attended,
		BookingCount:     reply.Attendance.Total,
		UnspecifiedCount: reply.Attendance.Unspecified,
	}

	if reply.BookingType == bookingTypeCareerHub {
		event.RegistrationOpenTime = start.Add(-registrationOffset(c.clock.Now()))
		event.IsUnlimited = reply.BookingSettings == nil || reply.BookingSettings.BookingLimit == nil
		if !event.IsUnlimited {
			event.BookingLimit = *reply.BookingSettings.BookingLimit
		}
	} else {
		event.IsDropIn = true
	}

	for _, s := range reply.Sessions {
		sessionStart, err := parseTime(s.Start)
		if err != nil {
			return nil, fmt.Errorf("fetch event %s: session %d start: %w", eventKey, s.ID, booking.ErrUnexpectedResponse)
		}
		sessionEnd, err := parseTime(s.End)
		if err != nil {
			return nil, fmt.Errorf("fetch event %s: session %d end: %w", eventKey, s.ID, booking.ErrUnexpectedResponse)
		}

		event.Sessions = append(event.Sessions, &models.Session{
			ID:           strconv.Itoa(s.ID),
			Start:        sessionStart,
			End:          sessionEnd,
			BookingCount: s.Bookings,
		})
	}

	return event, nil
}

// registrationOffset is how long before the start an event accepts check-ins.
// It is two hours while the local zone observes daylight saving time.
func registrationOffset(now time.Time) time.Duration {
	if now.IsDST() {
		return 120 * time.Minute
	}
	return 60 * time.Minute
}

func venue(reply *eventReply) string {
	var parts []string
	for _, p := range []*string{reply.Location, reply.Building} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	if reply.OffCampusVenue != nil && *reply.OffCampusVenue != "" {
		return *reply.OffCampusVenue
	}

	return venueTBC
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
}

func parseTime(value string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		t, err = time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t.Local(), nil
		}
	}
	return time.Time{}, err
}

// ListEvents returns the upcoming events offered by the integrations API
func (c *Client) ListEvents(ctx context.Context, input *booking.ListEventsInput) (*booking.ListEventsOutput, error) {
	req, err := c.newAPIRequest(ctx, http.MethodGet, c.eventAPIURL()+listEventsQuery, nil)
	if err != nil {
		return nil, err
	}

	var reply []eventReply
	if _, err := c.send("list_events", req, &reply); err != nil {
		return nil, err
	}

	output := &booking.ListEventsOutput{}
	for i := range reply {
		start, err := parseTime(reply[i].Start)
		if err != nil {
			return nil, fmt.Errorf("list events: start %q: %w", reply[i].Start, booking.ErrUnexpectedResponse)
		}
		if input != nil && !input.From.IsZero() && start.Before(input.From) {
			continue
		}

		output.Events = append(output.Events, &models.EventListing{
			ID:        strconv.Itoa(reply[i].EntityID),
			Title:     reply[i].Name,
			StartTime: start,
		})
	}

	return output, nil
}

// GetAttendeeCount returns the attended count of an event
func (c *Client) GetAttendeeCount(ctx context.Context, input *booking.GetAttendeeCountInput) (*booking.GetAttendeeCountOutput, error) {
	if input == nil {
		return nil, booking.ErrEventNotFound
	}

	out, err := c.FetchEvent(ctx, &booking.FetchEventInput{EventKey: input.EventKey})
	if err != nil {
		return nil, err
	}

	return &booking.GetAttendeeCountOutput{Count: out.Event.AttendeeCount}, nil
}
