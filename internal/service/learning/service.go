package learning

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

type listRepo interface {
	GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.VocabularyList, error)
}

type itemRepo interface {
	GetForUser(ctx context.Context, userID, itemID uuid.UUID) (*domain.VocabularyItem, error)
}

type recordRepo interface {
	Create(ctx context.Context, rec *domain.LearningRecord) (*domain.LearningRecord, error)
	List(ctx context.Context, userID, listID uuid.UUID, limit, offset int) ([]*domain.LearningRecord, error)
	Stats(ctx context.Context, userID, listID uuid.UUID) (domain.LearningStats, error)
}

const (
	DefaultRecordsLimit = 100
	MaxRecordsLimit     = 500
	MaxAnswerLength     = 2000
)

// Service records study attempts and reports accuracy.
type Service struct {
	lists   listRepo
	items   itemRepo
	records recordRepo
	log     *slog.Logger
}

// NewService creates a new learning service.
func NewService(
	log *slog.Logger,
	lists listRepo,
	items itemRepo,
	records recordRepo,
) *Service {
	return &Service{
		lists:   lists,
		items:   items,
		records: records,
		log:     log.With("service", "learning"),
	}
}
