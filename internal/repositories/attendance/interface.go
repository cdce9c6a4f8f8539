package attendance

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/eventswipe/internal/repositories/attendance Repository

import (
	"context"
)

// Repository defines the interface for the check-in audit trail
type Repository interface {
	// AddRecord stores a check-in record
	AddRecord(ctx context.Context, input *AddRecordInput) error

	// CreateRecord creates a check-in record with a generated ID
	CreateRecord(ctx context.Context, input *CreateRecordInput) (*CreateRecordOutput, error)

	// GetRecordsForEvent retrieves every check-in record of an event, oldest first
	GetRecordsForEvent(ctx context.Context, input *GetRecordsForEventInput) (*GetRecordsForEventOutput, error)

	// GetRecordsForIdentifier retrieves the check-in records of one identifier at an event, oldest first
	GetRecordsForIdentifier(ctx context.Context, input *GetRecordsForIdentifierInput) (*GetRecordsForIdentifierOutput, error)
}
