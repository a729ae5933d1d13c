// Package testutil builds fixtures shared by package tests.
package testutil

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// NewPDF renders one A4 page per entry of pages, each holding a single line
// of Helvetica text, and returns the encoded document.
func NewPDF(tb testing.TB, pages ...string) []byte {
	tb.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetTitle("fixture", false)
	for _, text := range pages {
		doc.AddPage()
		doc.SetFont("Helvetica", "", 14)
		doc.Cell(40, 10, text)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		tb.Fatalf("render pdf fixture: %v", err)
	}
	return buf.Bytes()
}

// CorruptPDF returns bytes that carry a PDF header but no parsable body.
func CorruptPDF() []byte {
	return []byte("%PDF-1.4\nthis is not really a pdf document\n%%EOF")
}
