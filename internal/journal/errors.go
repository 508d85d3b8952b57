package journal

import "errors"

var (
	ErrValidation           = errors.New("invalid log entry input")
	ErrCancelled            = errors.New("operation cancelled")
	ErrEntryNotFound        = errors.New("log entry not found")
	ErrConfirmationRequired = errors.New("delete requires a confirmer")
)
