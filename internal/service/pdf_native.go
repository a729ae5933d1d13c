package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"document-parser/internal/domain"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor extracts PDF text with a pure-Go reader. It needs no cgo
// and is selected with PDF_EXTRACTOR=native.
type NativeExtractor struct {
	logger domain.Logger
}

// NewNativeExtractor creates a new pure-Go extractor
func NewNativeExtractor(logger domain.Logger) *NativeExtractor {
	return &NativeExtractor{logger: logger}
}

// Name identifies the backend in logs and config
func (p *NativeExtractor) Name() string {
	return string(domain.PDFExtractorNative)
}

// Extract returns the text of every page joined by a blank line, along with
// the page count and the title and author from the trailer's Info dictionary.
func (p *NativeExtractor) Extract(ctx context.Context, pdfBytes []byte) (result *domain.ExtractedPDF, err error) {
	if len(pdfBytes) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := reader.NumPage()
	if numPages <= 0 {
		return nil, domain.ErrNoPages
	}
	info := reader.Trailer().Key("Info")
	metadata := domain.PDFMetadata{
		Title:     strings.TrimSpace(info.Key("Title").Text()),
		Author:    strings.TrimSpace(info.Key("Author").Text()),
		PageCount: numPages,
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		p.logger.Debug("PDF processing page", "page", i, "total", numPages)
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		pages = append(pages, strings.TrimSpace(sanitizeText(pageText)))
	}

	return &domain.ExtractedPDF{Text: joinPages(pages), Metadata: metadata}, nil
}
