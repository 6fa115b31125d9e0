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

// CreateList creates a new list for the authenticated user.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.VocabularyList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	list, err := s.lists.Create(ctx, userID, name, trimOrNil(input.Description))
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", list.ID.String()),
		slog.String("name", name),
	)

	return list, nil
}

// ListLists returns all lists of the authenticated user, newest first.
func (s *Service) ListLists(ctx context.Context) ([]*domain.VocabularyList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	return lists, nil
}

// GetList returns one list of the authenticated user.
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (*domain.VocabularyList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if listID == uuid.Nil {
		return nil, domain.NewValidationError("list_id", "required")
	}

	list, err := s.lists.GetByID(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	return list, nil
}

// DeleteList removes a list and all of its items in one transaction.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if listID == uuid.Nil {
		return domain.NewValidationError("list_id", "required")
	}

	var removed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lists.GetByID(txCtx, userID, listID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		var err error
		removed, err = s.items.DeleteByList(txCtx, listID)
		if err != nil {
			return fmt.Errorf("delete items: %w", err)
		}

		if err := s.lists.Delete(txCtx, userID, listID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", userID.String()),
		slog.String("list_id", listID.String()),
		slog.Int("items_removed", removed),
	)

	return nil
}
