package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// ExtractPDFText returns the plain text of every page, one page per block,
// joined by newlines. Pages that fail to render are skipped. A document that
// cannot be opened or contains no text is reported as a parse failure.
func ExtractPDFText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", domain.NewParseError("PDF file is empty")
	}

	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w (%v)", domain.NewParseError("failed to parse PDF file, please ensure it contains valid text"), r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.NewParseError("failed to parse PDF file, please ensure it contains valid text"), err)
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}

	text = strings.TrimSpace(b.String())
	if text == "" {
		return "", domain.NewParseError("no text content found in PDF")
	}

	return Normalize(text), nil
}
