package domain

import (
	"io"
	"strings"
)

// DocumentType classifies a fetched resource by its declared content type.
type DocumentType string

const (
	DocumentTypePDF         DocumentType = "pdf"
	DocumentTypeUnsupported DocumentType = "unsupported"
)

// PDFContentType is matched as a substring of the remote Content-Type header.
const PDFContentType = "application/pdf"

// ParseSuccessMessage is returned alongside every successful extraction.
const ParseSuccessMessage = "Document parsed successfully."

// ClassifyContentType decides how a resource is processed from its declared
// content type alone. The match is case-sensitive, as received.
func ClassifyContentType(contentType string) DocumentType {
	if strings.Contains(contentType, PDFContentType) {
		return DocumentTypePDF
	}
	return DocumentTypeUnsupported
}

// ParseDocumentRequest is the body accepted by the parse-document endpoint.
type ParseDocumentRequest struct {
	URL string `json:"url"`
}

// Validate checks that the request names a document to fetch.
func (r *ParseDocumentRequest) Validate() error {
	if r == nil || r.URL == "" {
		return &ValidationError{Field: "url", Message: "URL is required."}
	}
	return nil
}

// ExtractionResult is the response body for a successfully parsed document.
type ExtractionResult struct {
	ExtractedText string       `json:"extracted_text"`
	DocumentType  DocumentType `json:"document_type"`
	Message       string       `json:"message"`
}

// NewPDFResult builds the result for fully extracted PDF text.
func NewPDFResult(text string) *ExtractionResult {
	return &ExtractionResult{
		ExtractedText: text,
		DocumentType:  DocumentTypePDF,
		Message:       ParseSuccessMessage,
	}
}

// RemoteDocument is a fetched resource whose body has not been read yet.
// URL is where the body came from after redirects. The caller owns Body and
// must close it.
type RemoteDocument struct {
	URL           string
	StatusCode    int
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}

// Close releases the underlying response body.
func (d *RemoteDocument) Close() error {
	if d == nil || d.Body == nil {
		return nil
	}
	return d.Body.Close()
}
