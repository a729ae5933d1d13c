package handler

import (
	"encoding/json"
	"net/http"

	apperrors "document-parser/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// GetRequestIDFromContext extracts the request ID assigned by the middleware
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes a JSON response (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	if message == "" {
		message = apperrors.UnexpectedErrorMessage
	}
	writeJSON(w, statusCode, errorResponse{Error: message})
}

// writeAppError maps err to its status through the error kind table.
func writeAppError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.GetStatusCode(err), apperrors.PublicMessage(err))
}
