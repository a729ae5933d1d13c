package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"document-parser/internal/domain"
	apperrors "document-parser/pkg/errors"
)

// DocumentService implements the fetch, classify and extract pipeline
type DocumentService struct {
	fetcher     domain.DocumentFetcher
	extractor   domain.TextExtractor
	maxFileSize int64
	logger      domain.Logger
}

// NewDocumentService creates a new document service. A maxFileSize of zero
// or less disables the body size cap.
func NewDocumentService(
	fetcher domain.DocumentFetcher,
	extractor domain.TextExtractor,
	maxFileSize int64,
	logger domain.Logger,
) *DocumentService {
	return &DocumentService{
		fetcher:     fetcher,
		extractor:   extractor,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ParseDocument downloads the document at url and returns its text if it is
// a PDF. Every failure is an *apperrors.AppError whose kind decides the
// response status.
func (s *DocumentService) ParseDocument(ctx context.Context, url string) (*domain.ExtractionResult, error) {
	req := &domain.ParseDocumentRequest{URL: url}
	if err := req.Validate(); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.NewBadRequestError(vErr.Message, vErr.Field)
		}
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	start := time.Now()
	doc, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		if _, ok := apperrors.AsAppError(err); !ok {
			err = apperrors.NewDownloadError(err)
		}
		s.logger.Error("Failed to download document", err, "url", url)
		return nil, err
	}
	defer doc.Close()

	if domain.ClassifyContentType(doc.ContentType) != domain.DocumentTypePDF {
		s.logger.Warn("Unsupported document type", "url", url, "content_type", doc.ContentType)
		return nil, apperrors.NewUnsupportedTypeError(doc.ContentType)
	}

	body, err := s.readBody(doc)
	if err != nil {
		s.logger.Error("Failed to read document body", err, "url", url)
		return nil, err
	}

	extracted, err := s.extractor.Extract(ctx, body)
	if err != nil {
		appErr := apperrors.NewExtractionError(err)
		s.logger.Error("Error parsing PDF", appErr, "url", url, "extractor", s.extractor.Name(), "bytes", len(body))
		return nil, appErr
	}

	s.logger.Info("Document parsed",
		"url", url,
		"resolved_url", doc.URL,
		"upstream_status", doc.StatusCode,
		"extractor", s.extractor.Name(),
		"bytes", len(body),
		"chars", len(extracted.Text),
		"page_count", extracted.Metadata.PageCount,
		"title", extracted.Metadata.Title,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return domain.NewPDFResult(extracted.Text), nil
}

// readBody buffers the whole response body, enforcing the size cap.
func (s *DocumentService) readBody(doc *domain.RemoteDocument) ([]byte, error) {
	if s.maxFileSize > 0 && doc.ContentLength > s.maxFileSize {
		return nil, s.tooLarge()
	}

	var reader io.Reader = doc.Body
	if s.maxFileSize > 0 {
		reader = io.LimitReader(doc.Body, s.maxFileSize+1)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.NewUnexpectedError("Failed to read document body: "+err.Error(), err)
	}
	if s.maxFileSize > 0 && int64(len(body)) > s.maxFileSize {
		return nil, s.tooLarge()
	}
	return body, nil
}

func (s *DocumentService) tooLarge() error {
	return apperrors.NewDownloadError(fmt.Errorf("%w: exceeds maximum size of %d bytes", domain.ErrDocumentTooLarge, s.maxFileSize))
}
