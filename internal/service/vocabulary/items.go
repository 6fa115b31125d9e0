package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
	"github.com/heartmarshall/vocabflash-backend/pkg/ctxutil"
)

// AddItems appends items to a list owned by the authenticated user.
// Duplicates are kept; every item gets its own ID. The ownership check and
// the insert share one transaction, so a failed write leaves nothing behind.
func (s *Service) AddItems(ctx context.Context, input AddItemsInput) ([]*domain.VocabularyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Items) > s.limits.MaxItemsPerBatch {
		return nil, domain.NewValidationError("items", fmt.Sprintf("too many items (max %d)", s.limits.MaxItemsPerBatch))
	}

	normalized := make([]domain.ParsedVocabulary, len(input.Items))
	for i, it := range input.Items {
		normalized[i] = domain.ParsedVocabulary{
			Word:    strings.TrimSpace(it.Word),
			Meaning: domain.MeaningOrPlaceholder(it.Meaning),
		}
	}

	var created []*domain.VocabularyItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lists.GetByID(txCtx, userID, input.ListID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		var err error
		created, err = s.items.BulkCreate(txCtx, input.ListID, normalized)
		if err != nil {
			return fmt.Errorf("create items: %w", err)
		}

		if err := s.lists.Touch(txCtx, input.ListID); err != nil {
			return fmt.Errorf("touch list: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "items added",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}

// GetItems returns the items of a list in insertion order.
func (s *Service) GetItems(ctx context.Context, listID uuid.UUID) ([]*domain.VocabularyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if listID == uuid.Nil {
		return nil, domain.NewValidationError("list_id", "required")
	}

	if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	items, err := s.items.ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// DeleteItem removes one item from a list owned by the authenticated user.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}

	if err := s.items.DeleteForUser(ctx, userID, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)

	return nil
}
