package booking

// ProviderError is a custom error type for booking system errors
type ProviderError string

// Error implements the error interface
func (e ProviderError) Error() string {
	return string(e)
}

const (
	ErrEventFull          ProviderError = "event is full"
	ErrEarlyRegistration  ProviderError = "registration has not opened yet"
	ErrNoStudentFound     ProviderError = "no student found"
	ErrNotConfigured      ProviderError = "booking system is not configured"
	ErrUnauthorized       ProviderError = "booking system rejected the credentials"
	ErrUnexpectedResponse ProviderError = "unexpected response from booking system"
	ErrEventNotFound      ProviderError = "event not found"
	ErrInvalidStatus      ProviderError = "status cannot be sent to the booking system"
)
