package parser

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// Decode reads an uploaded text file and returns its content as NFC-normalized
// UTF-8. A UTF-8 or UTF-16 byte order mark selects the encoding; without one
// the content is read as UTF-8. Content larger than maxBytes is rejected.
func Decode(r io.Reader, maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", domain.NewValidationError("file", fmt.Sprintf("too large (max %d bytes)", maxBytes))
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", domain.NewParseError("file is not readable text")
	}
	if bytes.IndexByte(decoded, 0) >= 0 {
		return "", domain.NewParseError("file does not look like a text file")
	}

	return norm.NFC.String(string(decoded)), nil
}

// Normalize applies the same Unicode normalization as Decode to text that
// arrived already decoded, e.g. inside a JSON body.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
