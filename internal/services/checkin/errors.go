package checkin

// ServiceError is a custom error type for check-in service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     ServiceError = "config cannot be nil"
	ErrNilProvider   ServiceError = "booking provider cannot be nil"
	ErrNilSnapshot   ServiceError = "snapshot cannot be nil"
	ErrNilMode       ServiceError = "mode controller cannot be nil"
	ErrNilQueue      ServiceError = "submission queue cannot be nil"
	ErrNilLedger     ServiceError = "unsaved ledger cannot be nil"
	ErrNilAttendance ServiceError = "attendance repository cannot be nil"
	ErrNilClock      ServiceError = "clock cannot be nil"
	ErrNilUUID       ServiceError = "uuid generator cannot be nil"

	ErrEmptyIdentifier   ServiceError = "identifier cannot be empty"
	ErrInvalidIdentifier ServiceError = "identifier does not match the expected format"
	ErrNoEvent           ServiceError = "no event loaded"
	ErrOffline           ServiceError = "offline mode, connect to the internet first"
	ErrOfflineEvent      ServiceError = "event was entered offline and has no booking system counterpart"
	ErrUnsaved           ServiceError = "unsaved check-ins must be saved or exported first"
	ErrBookingNotFound   ServiceError = "no booking found for identifier"
	ErrEmptyBookingList  ServiceError = "booking list cannot be empty"
)
