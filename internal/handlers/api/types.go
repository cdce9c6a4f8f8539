package api

import (
	"time"

	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
)

type errorResponse struct {
	Error string `json:"error"`
}

type checkInRequest struct {
	Identifier string `json:"identifier"`
}

type bookingResponse struct {
	Identifier        string `json:"identifier"`
	BookingID         string `json:"bookingId,omitempty"`
	Name              string `json:"name,omitempty"`
	SessionID         string `json:"sessionId,omitempty"`
	Status            string `json:"status"`
	IsBooked          bool   `json:"isBooked"`
	IsAlreadyRecorded bool   `json:"isAlreadyRecorded"`
	IsOnWaitingList   bool   `json:"isOnWaitingList"`
}

type messageResponse struct {
	Title    string `json:"title,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type checkInResponse struct {
	Booking bookingResponse `json:"booking"`
	Queued  bool            `json:"queued"`
	Held    bool            `json:"held,omitempty"`
	Message messageResponse `json:"message"`
}

type eventResponse struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Venue                string    `json:"venue,omitempty"`
	StartTime            time.Time `json:"startTime"`
	RegistrationOpenTime time.Time `json:"registrationOpenTime"`
	BookingLimit         int       `json:"bookingLimit"`
	IsUnlimited          bool      `json:"isUnlimited"`
	IsDropIn             bool      `json:"isDropIn"`
	IsOffline            bool      `json:"isOffline"`
	Sessions             int       `json:"sessions"`
	BookingCount         int       `json:"bookingCount"`
	WaitingListSize      int       `json:"waitingListSize"`
	CheckedIn            int       `json:"checkedIn"`
}

type statusResponse struct {
	Loaded           bool           `json:"loaded"`
	Event            *eventResponse `json:"event,omitempty"`
	Mode             string         `json:"mode"`
	Saved            bool           `json:"saved"`
	Unsaved          int            `json:"unsaved"`
	CheckBookingList bool           `json:"checkBookingList"`
	CheckWaitingList bool           `json:"checkWaitingList"`
	EventFull        bool           `json:"eventFull"`
	RemoteEnabled    bool           `json:"remoteEnabled"`
	AdminURL         string         `json:"adminUrl,omitempty"`
}

type modeRequest struct {
	Online bool `json:"online"`
}

type replayResponse struct {
	Attempted int             `json:"attempted"`
	Saved     int             `json:"saved"`
	Remaining int             `json:"remaining"`
	EventFull bool            `json:"eventFull"`
	Message   messageResponse `json:"message"`
}

type unsavedResponse struct {
	EventID     string   `json:"eventId"`
	Identifiers []string `json:"identifiers"`
}

type finishRequest struct {
	MarkAbsent bool `json:"markAbsent"`
	Notify     bool `json:"notify"`
}

type recordResponse struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	BookingID  string    `json:"bookingId,omitempty"`
	Status     string    `json:"status"`
	IsBooked   bool      `json:"isBooked"`
	Online     bool      `json:"online"`
	Source     string    `json:"source"`
	Timestamp  time.Time `json:"timestamp"`
}

type listingResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
}

func toBooking(b models.Booking) bookingResponse {
	return bookingResponse{
		Identifier:        b.Identifier,
		BookingID:         b.BookingID,
		Name:              b.FullName(),
		SessionID:         b.SessionID,
		Status:            b.Status.String(),
		IsBooked:          b.IsBooked,
		IsAlreadyRecorded: b.IsAlreadyRecorded,
		IsOnWaitingList:   b.IsOnWaitingList,
	}
}

func toStatus(status *checkin.StatusOutput) statusResponse {
	resp := statusResponse{
		Loaded:           status.Loaded,
		Mode:             string(status.Mode),
		Saved:            status.Saved,
		Unsaved:          status.Unsaved,
		CheckBookingList: status.CheckBookingList,
		CheckWaitingList: status.CheckWaitingList,
		EventFull:        status.EventFull,
		RemoteEnabled:    status.RemoteEnabled,
		AdminURL:         status.AdminURL,
	}

	if status.Loaded {
		e := status.Event
		resp.Event = &eventResponse{
			ID:                   e.ID,
			Title:                e.Title,
			Venue:                e.Venue,
			StartTime:            e.StartTime,
			RegistrationOpenTime: e.RegistrationOpenTime,
			BookingLimit:         e.BookingLimit,
			IsUnlimited:          e.IsUnlimited,
			IsDropIn:             e.IsDropIn,
			IsOffline:            e.IsOffline,
			Sessions:             e.SessionCount,
			BookingCount:         e.BookingCount,
			WaitingListSize:      e.WaitingListSize,
			CheckedIn:            e.RecordedCount,
		}
	}

	return resp
}

func toRecord(r *models.CheckIn) recordResponse {
	return recordResponse{
		ID:         r.ID,
		Identifier: r.Identifier,
		BookingID:  r.BookingID,
		Status:     r.Status.String(),
		IsBooked:   r.IsBooked,
		Online:     r.Online,
		Source:     string(r.Source),
		Timestamp:  r.Timestamp,
	}
}
