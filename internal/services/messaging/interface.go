package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetCheckInMessage returns the message shown to the operator after a check-in
	GetCheckInMessage(ctx context.Context, input *GetCheckInMessageInput) (*GetCheckInMessageOutput, error)

	// GetNoticeMessage returns a message for the outcome of a background submission
	GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error)

	// GetReplayMessage returns a message summarizing a replay of unsaved check-ins
	GetReplayMessage(ctx context.Context, input *GetReplayMessageInput) (*GetReplayMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
