package service

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// sanitizeText makes extracted text safe to JSON-encode: invalid UTF-8, NUL
// and other control characters except tab and newline are removed, line
// endings are normalized and the result is NFC composed.
func sanitizeText(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n':
			result.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			// control characters
		case r >= 0x80 && r < 0xA0:
			// C1 controls
		default:
			result.WriteRune(r)
		}
	}

	return norm.NFC.String(result.String())
}
