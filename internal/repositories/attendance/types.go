package attendance

import (
	"time"

	"github.com/KirkDiggler/eventswipe/internal/models"
)

// AddRecordInput contains the record to store
type AddRecordInput struct {
	Record *models.CheckIn
}

// CreateRecordInput contains parameters for creating a check-in record
type CreateRecordInput struct {
	EventID   string
	Booking   *models.Booking
	Source    models.CheckInSource
	Online    bool
	Timestamp time.Time
}

// CreateRecordOutput contains the created record
type CreateRecordOutput struct {
	Record *models.CheckIn
}

type GetRecordsForEventInput struct {
	EventID string
}

type GetRecordsForEventOutput struct {
	Records []*models.CheckIn
}

type GetRecordsForIdentifierInput struct {
	EventID    string
	Identifier string
}

type GetRecordsForIdentifierOutput struct {
	Records []*models.CheckIn
}
