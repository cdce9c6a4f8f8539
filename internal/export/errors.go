package export

// ExportError is a custom error type for export errors
type ExportError string

// Error implements the error interface
func (e ExportError) Error() string {
	return string(e)
}

const ErrNilDocument ExportError = "document cannot be nil"
