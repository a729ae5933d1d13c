package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"document-parser/internal/domain"
	"document-parser/internal/testutil"
)

func extractors() []domain.TextExtractor {
	logger := &MockServiceLogger{}
	return []domain.TextExtractor{NewFitzExtractor(logger), NewNativeExtractor(logger)}
}

func TestExtractors_WellFormedPDF(t *testing.T) {
	pdfBytes := testutil.NewPDF(t, "Quarterly", "Revenue")

	for _, ex := range extractors() {
		t.Run(ex.Name(), func(t *testing.T) {
			res, err := ex.Extract(context.Background(), pdfBytes)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			text := res.Text
			if !strings.Contains(text, "Quarterly") || !strings.Contains(text, "Revenue") {
				t.Fatalf("expected both pages in text, got %q", text)
			}
			if strings.Index(text, "Quarterly") > strings.Index(text, "Revenue") {
				t.Fatalf("expected pages in order, got %q", text)
			}
		})
	}
}

func TestExtractors_Idempotent(t *testing.T) {
	pdfBytes := testutil.NewPDF(t, "Stable")

	for _, ex := range extractors() {
		t.Run(ex.Name(), func(t *testing.T) {
			first, err := ex.Extract(context.Background(), pdfBytes)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			second, err := ex.Extract(context.Background(), pdfBytes)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if first.Text != second.Text {
				t.Fatalf("expected identical text, got %q and %q", first.Text, second.Text)
			}
		})
	}
}

func TestExtractors_CorruptPDF(t *testing.T) {
	for _, ex := range extractors() {
		t.Run(ex.Name(), func(t *testing.T) {
			res, err := ex.Extract(context.Background(), testutil.CorruptPDF())
			if err == nil {
				t.Fatalf("expected error for corrupt pdf")
			}
			if res != nil {
				t.Fatalf("expected no partial result, got %+v", res)
			}
		})
	}
}

func TestExtractors_Empty(t *testing.T) {
	for _, ex := range extractors() {
		t.Run(ex.Name(), func(t *testing.T) {
			_, err := ex.Extract(context.Background(), nil)
			if !errors.Is(err, domain.ErrEmptyDocument) {
				t.Fatalf("expected ErrEmptyDocument, got %v", err)
			}
		})
	}
}

func TestExtractors_CancelledContext(t *testing.T) {
	pdfBytes := testutil.NewPDF(t, "Never")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, ex := range extractors() {
		t.Run(ex.Name(), func(t *testing.T) {
			_, err := ex.Extract(ctx, pdfBytes)
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
		})
	}
}

func TestExtractors_Metadata(t *testing.T) {
	pdfBytes := testutil.NewPDF(t, "One", "Two", "Three")

	for _, ex := range extractors() {
		t.Run(ex.Name(), func(t *testing.T) {
			res, err := ex.Extract(context.Background(), pdfBytes)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if res.Metadata.PageCount != 3 {
				t.Fatalf("expected 3 pages, got %d", res.Metadata.PageCount)
			}
		})
	}
}

func TestNativeExtractor_Title(t *testing.T) {
	res, err := NewNativeExtractor(&MockServiceLogger{}).Extract(context.Background(), testutil.NewPDF(t, "Body"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Metadata.Title != "fixture" {
		t.Fatalf("expected title fixture, got %q", res.Metadata.Title)
	}
}

func TestNewTextExtractor(t *testing.T) {
	logger := &MockServiceLogger{}

	tests := []struct {
		kind    domain.PDFExtractor
		want    string
		wantErr bool
	}{
		{kind: "", want: "fitz"},
		{kind: domain.PDFExtractorFitz, want: "fitz"},
		{kind: domain.PDFExtractorNative, want: "native"},
		{kind: "ocr", wantErr: true},
	}

	for _, tt := range tests {
		ex, err := NewTextExtractor(tt.kind, logger)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.kind)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.kind, err)
		}
		if ex.Name() != tt.want {
			t.Fatalf("expected %s, got %s", tt.want, ex.Name())
		}
	}
}

func TestJoinPages(t *testing.T) {
	got := joinPages([]string{"first", "", "second"})
	if got != "first\n\nsecond" {
		t.Fatalf("unexpected join: %q", got)
	}
	if joinPages(nil) != "" {
		t.Fatalf("expected empty join for no pages")
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "null bytes", in: "a\x00b", want: "ab"},
		{name: "keeps whitespace", in: "a\tb\nc", want: "a\tb\nc"},
		{name: "crlf", in: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "control chars", in: "a\x07\x1bb\x7f", want: "ab"},
		{name: "invalid utf8", in: "a\xffb", want: "ab"},
		{name: "nfc", in: "e\u0301", want: "\u00e9"},
		{name: "unicode kept", in: "naïve – ünïcödé", want: "naïve – ünïcödé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeText(tt.in); got != tt.want {
				t.Fatalf("sanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
