package service

import (
	"context"
	"fmt"
	"strings"

	"document-parser/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzExtractor handles PDF text extraction through MuPDF
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a new MuPDF-backed extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{
		logger: logger,
	}
}

// Name identifies the backend in logs and config
func (p *FitzExtractor) Name() string {
	return string(domain.PDFExtractorFitz)
}

// Extract returns the text of every page joined by a blank line, along with
// the page count and the title and author from the document info.
func (p *FitzExtractor) Extract(ctx context.Context, pdfBytes []byte) (result *domain.ExtractedPDF, err error) {
	if len(pdfBytes) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if numPages <= 0 {
		return nil, domain.ErrNoPages
	}
	metadata := domain.PDFMetadata{PageCount: numPages}
	docMetadata := doc.Metadata()
	if title, ok := docMetadata["title"]; ok && title != "" {
		metadata.Title = title
	}
	if author, ok := docMetadata["author"]; ok && author != "" {
		metadata.Author = author
	}

	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)
		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		pages = append(pages, strings.TrimSpace(sanitizeText(text)))
	}

	return &domain.ExtractedPDF{Text: joinPages(pages), Metadata: metadata}, nil
}
