package domain

import "errors"

// Domain errors
var (
	ErrDocumentTooLarge = errors.New("document too large")
	ErrEmptyDocument    = errors.New("empty document")
	ErrNoPages          = errors.New("document has no pages")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
