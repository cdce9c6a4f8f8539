package discord

// BotError is a custom error type for Discord bot errors
type BotError string

// Error implements the error interface
func (e BotError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           BotError = "config cannot be nil"
	ErrEmptyToken          BotError = "token cannot be empty"
	ErrNilCheckInService   BotError = "check-in service cannot be nil"
	ErrNilMessagingService BotError = "messaging service cannot be nil"
)
