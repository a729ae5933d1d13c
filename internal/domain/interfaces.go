package domain

import (
	"context"
	"time"
)

// DocumentFetcher retrieves remote documents over HTTP
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*RemoteDocument, error)
}

// TextExtractor defines the strategy interface for PDF text extraction
type TextExtractor interface {
	Extract(ctx context.Context, pdfBytes []byte) (*ExtractedPDF, error)
	Name() string
}

// DocumentService runs the fetch, classify and extract pipeline for one URL
type DocumentService interface {
	ParseDocument(ctx context.Context, url string) (*ExtractionResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetFetchTimeout() time.Duration
	GetRequestTimeout() time.Duration
	GetFetchUserAgent() string
	GetPDFExtractor() string
	GetCORSAllowedOrigins() []string
}
