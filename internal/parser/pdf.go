package parser

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the text of every page in page order. Pages that
// yield no extractable text contribute an empty string rather than failing
// the whole document.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
