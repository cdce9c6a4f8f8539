package messaging

import (
	"github.com/KirkDiggler/eventswipe/internal/models"
)

// Severity tells a front-end how prominently to show a message
type Severity string

const (
	// SeveritySuccess is a check-in that needs no action
	SeveritySuccess Severity = "success"

	// SeverityInfo is informational
	SeverityInfo Severity = "info"

	// SeverityWarning needs the operator's attention
	SeverityWarning Severity = "warning"

	// SeverityError means the attendee should not be let in without a decision
	SeverityError Severity = "error"
)

// GetCheckInMessageInput contains the classified booking
type GetCheckInMessageInput struct {
	Booking models.Booking

	// Queued indicates the identifier went into the unsaved ledger
	Queued bool

	// Held indicates the ledger rejected the identifier and it lives in memory only
	Held bool
}

// GetCheckInMessageOutput contains the message for a check-in
type GetCheckInMessageOutput struct {
	Title    string
	Message  string
	Severity Severity
}

// GetNoticeMessageInput describes the outcome of a background submission
type GetNoticeMessageInput struct {
	Identifier string
	Name       string

	// Outcome is attended, event_full, early or failed
	Outcome string

	// Unsaved indicates the identifier went into the unsaved ledger
	Unsaved bool

	// Held indicates the ledger rejected the identifier and it lives in memory only
	Held bool
}

type GetNoticeMessageOutput struct {
	Message  string
	Severity Severity
}

// GetReplayMessageInput summarizes a replay
type GetReplayMessageInput struct {
	Attempted int
	Saved     int
	Remaining int
	EventFull bool
}

type GetReplayMessageOutput struct {
	Message  string
	Severity Severity
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error
}

type GetErrorMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct{}
