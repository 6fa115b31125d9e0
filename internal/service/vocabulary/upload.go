package vocabulary

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
	"github.com/heartmarshall/vocabflash-backend/internal/parser"
	"github.com/heartmarshall/vocabflash-backend/pkg/ctxutil"
)

// UploadText parses raw text with the lenient line parser and appends the
// result to a list. Nothing is written when no line yields an item.
func (s *Service) UploadText(ctx context.Context, input UploadTextInput) ([]*domain.VocabularyItem, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Content) > s.limits.MaxTextBytes {
		return nil, domain.NewValidationError("content", fmt.Sprintf("too large (max %d bytes)", s.limits.MaxTextBytes))
	}

	parsed := parser.Parse(parser.Normalize(input.Content))
	if len(parsed) == 0 {
		return nil, domain.NewParseError("no vocabulary items found in text")
	}

	items, err := s.AddItems(ctx, AddItemsInput{ListID: input.ListID, Items: parsed})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "text uploaded",
		slog.String("list_id", input.ListID.String()),
		slog.Int("parsed", len(parsed)),
	)

	return items, nil
}

// UploadPDF extracts the text of a base64-encoded PDF, keeps only lines with
// both a word and a meaning, and appends them to a list.
func (s *Service) UploadPDF(ctx context.Context, input UploadPDFInput) ([]*domain.VocabularyItem, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	encoded := strings.TrimSpace(input.PDFBase64)
	// Data URLs from browsers carry a "data:application/pdf;base64," prefix.
	if _, rest, found := strings.Cut(encoded, ";base64,"); found {
		encoded = rest
	}
	if len(encoded) > base64.StdEncoding.EncodedLen(s.limits.MaxPDFBytes) {
		return nil, domain.NewValidationError("pdf_base64", fmt.Sprintf("too large (max %d bytes)", s.limits.MaxPDFBytes))
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, domain.NewValidationError("pdf_base64", "invalid base64")
	}
	if len(data) > s.limits.MaxPDFBytes {
		return nil, domain.NewValidationError("pdf_base64", fmt.Sprintf("too large (max %d bytes)", s.limits.MaxPDFBytes))
	}

	text, err := parser.ExtractPDFText(data)
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	parsed := parser.ParseStrict(text)
	if len(parsed) == 0 {
		return nil, domain.NewParseError("no vocabulary items found in PDF")
	}

	items, err := s.AddItems(ctx, AddItemsInput{ListID: input.ListID, Items: parsed})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pdf uploaded",
		slog.String("list_id", input.ListID.String()),
		slog.Int("bytes", len(data)),
		slog.Int("parsed", len(parsed)),
	)

	return items, nil
}
