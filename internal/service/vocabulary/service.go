package vocabulary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

type listRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name string, description *string) (*domain.VocabularyList, error)
	GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.VocabularyList, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.VocabularyList, error)
	Delete(ctx context.Context, userID, listID uuid.UUID) error
	Touch(ctx context.Context, listID uuid.UUID) error
}

type itemRepo interface {
	BulkCreate(ctx context.Context, listID uuid.UUID, items []domain.ParsedVocabulary) ([]*domain.VocabularyItem, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.VocabularyItem, error)
	DeleteForUser(ctx context.Context, userID, itemID uuid.UUID) error
	DeleteByList(ctx context.Context, listID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
	MaxWordLength        = 255
	MaxMeaningLength     = 2000
)

// Limits bounds the size of a single write.
type Limits struct {
	MaxItemsPerBatch int
	MaxTextBytes     int
	MaxPDFBytes      int
}

// DefaultLimits is used when a zero Limits value is passed to NewService.
var DefaultLimits = Limits{
	MaxItemsPerBatch: 1000,
	MaxTextBytes:     1 << 20,
	MaxPDFBytes:      10 << 20,
}

// Service manages vocabulary lists and their items.
type Service struct {
	lists  listRepo
	items  itemRepo
	tx     txManager
	limits Limits
	log    *slog.Logger
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	lists listRepo,
	items itemRepo,
	tx txManager,
	limits Limits,
) *Service {
	if limits == (Limits{}) {
		limits = DefaultLimits
	}
	return &Service{
		lists:  lists,
		items:  items,
		tx:     tx,
		limits: limits,
		log:    log.With("service", "vocabulary"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
