package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeBadRequest       ErrorType = "bad_request"
	ErrorTypeDownloadFailed   ErrorType = "download_failed"
	ErrorTypeUnsupportedType  ErrorType = "unsupported_type"
	ErrorTypeExtractionFailed ErrorType = "extraction_failed"
	ErrorTypeUnexpected       ErrorType = "unexpected"
)

// UnexpectedErrorMessage is returned when a failure carries no usable message.
const UnexpectedErrorMessage = "An unexpected error occurred during document parsing."

// statusCodes maps every error kind to the HTTP status it is reported with.
var statusCodes = map[ErrorType]int{
	ErrorTypeBadRequest:       http.StatusBadRequest,
	ErrorTypeDownloadFailed:   http.StatusBadRequest,
	ErrorTypeUnsupportedType:  http.StatusBadRequest,
	ErrorTypeExtractionFailed: http.StatusInternalServerError,
	ErrorTypeUnexpected:       http.StatusInternalServerError,
}

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType
	Message    string
	Details    string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

func newAppError(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:       errorType,
		Message:    message,
		StatusCode: StatusCode(errorType),
		Cause:      cause,
	}
}

// NewBadRequestError creates an error for a request that cannot be processed as sent
func NewBadRequestError(message string, details ...string) *AppError {
	appErr := newAppError(ErrorTypeBadRequest, message, nil)
	if len(details) > 0 {
		appErr.Details = details[0]
	}
	return appErr
}

// NewDownloadError creates an error for a failed retrieval of the remote document
func NewDownloadError(cause error) *AppError {
	reason := "Network or unknown error"
	if cause != nil && cause.Error() != "" {
		reason = cause.Error()
	}
	return newAppError(ErrorTypeDownloadFailed, "Failed to download document: "+reason, cause)
}

// NewUnsupportedTypeError creates an error for a document whose content type is not handled
func NewUnsupportedTypeError(contentType string) *AppError {
	message := fmt.Sprintf("Unsupported document type: %s. Only PDF documents are supported.", contentType)
	appErr := newAppError(ErrorTypeUnsupportedType, message, nil)
	appErr.Details = contentType
	return appErr
}

// NewExtractionError creates an error for a PDF the extractor could not parse
func NewExtractionError(cause error) *AppError {
	reason := "unknown error"
	if cause != nil {
		reason = cause.Error()
	}
	return newAppError(ErrorTypeExtractionFailed, "Failed to parse PDF document: "+reason, cause)
}

// NewUnexpectedError creates a catch-all internal error
func NewUnexpectedError(message string, cause error) *AppError {
	if message == "" {
		message = UnexpectedErrorMessage
	}
	return newAppError(ErrorTypeUnexpected, message, cause)
}

// StatusCode returns the HTTP status code for an error kind
func StatusCode(errorType ErrorType) int {
	if code, ok := statusCodes[errorType]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// AsAppError finds the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error. An AppError's own
// StatusCode wins; a zero value falls back to the kind table.
func GetStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		if appErr.StatusCode != 0 {
			return appErr.StatusCode
		}
		return StatusCode(appErr.Type)
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text that is safe to return to API callers
func PublicMessage(err error) string {
	if appErr, ok := AsAppError(err); ok && appErr.Message != "" {
		return appErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return UnexpectedErrorMessage
}
