package service

import (
	"fmt"
	"strings"

	"document-parser/internal/domain"
)

// NewTextExtractor returns the extraction backend selected by kind.
func NewTextExtractor(kind domain.PDFExtractor, logger domain.Logger) (domain.TextExtractor, error) {
	switch kind {
	case domain.PDFExtractorFitz, "":
		return NewFitzExtractor(logger), nil
	case domain.PDFExtractorNative:
		return NewNativeExtractor(logger), nil
	default:
		return nil, fmt.Errorf("unknown pdf extractor %q", kind)
	}
}

// joinPages concatenates page texts, skipping empty pages so scanned pages
// do not leave runs of blank lines.
func joinPages(pages []string) string {
	nonEmpty := make([]string, 0, len(pages))
	for _, page := range pages {
		if page != "" {
			nonEmpty = append(nonEmpty, page)
		}
	}
	return strings.TrimSpace(strings.Join(nonEmpty, domain.PageSeparator))
}
