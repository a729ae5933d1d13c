// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"

	"document-parser/internal/domain"
	apperrors "document-parser/pkg/errors"
)

// maxRequestBodyBytes caps the JSON body of a parse request.
const maxRequestBodyBytes = 1 << 20

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	documentService domain.DocumentService
	logger          domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService domain.DocumentService, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
	}
}

// ParseDocument handles POST /api/parse-document
func (h *DocumentHandler) ParseDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req domain.ParseDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid parse-document request body", "error", err)
		writeAppError(w, apperrors.NewBadRequestError("URL is required.", err.Error()))
		return
	}

	result, err := h.documentService.ParseDocument(r.Context(), req.URL)
	if err != nil {
		if apperrors.GetStatusCode(err) >= http.StatusInternalServerError {
			requestID, _ := GetRequestIDFromContext(r)
			h.logger.Error("Error in parse-document API route", err, "url", req.URL, "request_id", requestID)
		}
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
