package careerhub

// ClientError is a custom error type for client construction errors
type ClientError string

// Error implements the error interface
func (e ClientError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        ClientError = "config cannot be nil"
	ErrNilClock         ClientError = "clock cannot be nil"
	ErrInvalidIDPattern ClientError = "identifier pattern does not compile"
)
