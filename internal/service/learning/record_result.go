package learning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
	"github.com/heartmarshall/vocabflash-backend/internal/flashcard"
	"github.com/heartmarshall/vocabflash-backend/pkg/ctxutil"
)

// RecordResult appends a self-graded attempt. The item must belong to the
// given list and the list to the authenticated user.
func (s *Service) RecordResult(ctx context.Context, input RecordResultInput) (*domain.LearningRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetForUser(ctx, userID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item.ListID != input.ListID {
		return nil, fmt.Errorf("item %s in list %s: %w", input.ItemID, input.ListID, domain.ErrNotFound)
	}

	rec, err := s.records.Create(ctx, &domain.LearningRecord{
		UserID:     userID,
		ItemID:     item.ID,
		ListID:     item.ListID,
		IsCorrect:  input.IsCorrect,
		UserAnswer: input.UserAnswer,
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.DebugContext(ctx, "result recorded",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.Bool("correct", rec.IsCorrect),
	)

	return rec, nil
}

// CheckAnswer grades answer against the item's meaning, records the attempt
// and returns the verdict together with the expected meaning.
func (s *Service) CheckAnswer(ctx context.Context, input CheckAnswerInput) (*CheckResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetForUser(ctx, userID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	correct := flashcard.IsMatch(input.Answer, item.Meaning)
	answer := input.Answer

	rec, err := s.records.Create(ctx, &domain.LearningRecord{
		UserID:     userID,
		ItemID:     item.ID,
		ListID:     item.ListID,
		IsCorrect:  correct,
		UserAnswer: &answer,
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	return &CheckResult{
		Correct: correct,
		Meaning: item.Meaning,
		Record:  rec,
	}, nil
}
