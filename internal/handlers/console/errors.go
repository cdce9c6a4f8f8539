package console

// ConsoleError is a custom error type for console errors
type ConsoleError string

// Error implements the error interface
func (e ConsoleError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           ConsoleError = "config cannot be nil"
	ErrNilCheckInService   ConsoleError = "check-in service cannot be nil"
	ErrNilMessagingService ConsoleError = "messaging service cannot be nil"
	ErrNilClock            ConsoleError = "clock cannot be nil"
	ErrNilInput            ConsoleError = "input cannot be nil"
	ErrNilOutput           ConsoleError = "output cannot be nil"
)
