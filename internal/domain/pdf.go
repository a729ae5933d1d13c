package domain

// PDFExtractor names the backend used to turn PDF bytes into text.
type PDFExtractor string

const (
	// PDFExtractorFitz uses MuPDF through go-fitz.
	PDFExtractorFitz PDFExtractor = "fitz"
	// PDFExtractorNative uses the pure-Go ledongthuc/pdf reader.
	PDFExtractorNative PDFExtractor = "native"
)

// PDFMetadata contains what the extractor learned about the document.
type PDFMetadata struct {
	Title     string
	Author    string
	PageCount int
}

// ExtractedPDF is the text of a document together with its metadata.
type ExtractedPDF struct {
	Text     string
	Metadata PDFMetadata
}

// PageSeparator joins the text of consecutive pages.
const PageSeparator = "\n\n"
