package learning

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
	"github.com/heartmarshall/vocabflash-backend/pkg/ctxutil"
)

// GetStats returns the authenticated user's accuracy on one list.
// Accuracy is 0 when there are no attempts.
func (s *Service) GetStats(ctx context.Context, listID uuid.UUID) (domain.LearningStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.LearningStats{}, domain.ErrUnauthorized
	}

	if listID == uuid.Nil {
		return domain.LearningStats{}, domain.NewValidationError("list_id", "required")
	}

	if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
		return domain.LearningStats{}, fmt.Errorf("get list: %w", err)
	}

	stats, err := s.records.Stats(ctx, userID, listID)
	if err != nil {
		return domain.LearningStats{}, fmt.Errorf("get stats: %w", err)
	}

	return stats, nil
}

// GetRecords returns the authenticated user's attempts on one list, newest first.
func (s *Service) GetRecords(ctx context.Context, input GetRecordsInput) ([]*domain.LearningRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.lists.GetByID(ctx, userID, input.ListID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultRecordsLimit
	}

	records, err := s.records.List(ctx, userID, input.ListID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}
