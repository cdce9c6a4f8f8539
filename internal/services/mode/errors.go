package mode

// ModeError is a custom error type for mode transition errors
type ModeError string

// Error implements the error interface
func (e ModeError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      ModeError = "config cannot be nil"
	ErrNilChecker     ModeError = "connectivity checker cannot be nil"
	ErrRemoteDisabled ModeError = "booking system is not configured, staying offline"
	ErrNoConnectivity ModeError = "no connection to the internet, staying offline"
)
