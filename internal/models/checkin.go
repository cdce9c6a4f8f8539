package models

import (
	"time"
)

// CheckIn is an audit record of one identifier being presented or resolved
type CheckIn struct {
	// ID is the unique identifier for the record
	ID string

	// EventID is the event the check-in belongs to
	EventID string

	// Identifier that was presented
	Identifier string

	// BookingID when the booking system holds one
	BookingID string

	// Status after classification or submission
	Status BookingStatus

	// IsBooked mirrors the booking classification
	IsBooked bool

	// IsAlreadyRecorded mirrors the booking classification
	IsAlreadyRecorded bool

	// IsOnWaitingList mirrors the booking classification
	IsOnWaitingList bool

	// Online indicates the engine was online when the record was written
	Online bool

	// Source describes what produced the record, a scan or a submission
	Source CheckInSource

	// Timestamp is when the record was written
	Timestamp time.Time
}

// CheckInSource describes what produced a check-in record
type CheckInSource string

const (
	// CheckInSourceScan is an identifier presented at an entry lane
	CheckInSourceScan CheckInSource = "scan"

	// CheckInSourceSubmission is the outcome of sending a check-in to the booking system
	CheckInSourceSubmission CheckInSource = "submission"

	// CheckInSourceReplay is the outcome of replaying an unsaved identifier
	CheckInSourceReplay CheckInSource = "replay"
)
