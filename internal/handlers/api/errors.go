package api

// APIError is a custom error type for HTTP API errors
type APIError string

// Error implements the error interface
func (e APIError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           APIError = "config cannot be nil"
	ErrNilCheckInService   APIError = "check-in service cannot be nil"
	ErrNilMessagingService APIError = "messaging service cannot be nil"
)
