package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedList creates a vocabulary list owned by userID.
func SeedList(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.VocabularyList {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	list := domain.VocabularyList{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "List " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabulary_lists (id, user_id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		list.ID, list.UserID, list.Name, list.Description, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList: %v", err)
	}

	return list
}

// SeedItems appends n items to a list with positions 0..n-1.
// Words are "word-<i>" and meanings "meaning-<i>".
func SeedItems(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID, n int) []domain.VocabularyItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	items := make([]domain.VocabularyItem, n)
	for i := range n {
		items[i] = domain.VocabularyItem{
			ID:        uuid.New(),
			ListID:    listID,
			Word:      fmt.Sprintf("word-%d", i),
			Meaning:   fmt.Sprintf("meaning-%d", i),
			Position:  i,
			CreatedAt: now,
		}

		_, err := pool.Exec(context.Background(),
			`INSERT INTO vocabulary_items (id, list_id, word, meaning, position, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			items[i].ID, items[i].ListID, items[i].Word, items[i].Meaning, items[i].Position, items[i].CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedItems: %v", err)
		}
	}

	return items
}

// SeedRecord appends one learning record for item in list.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, item domain.VocabularyItem, correct bool, createdAt time.Time) domain.LearningRecord {
	t.Helper()

	rec := domain.LearningRecord{
		ID:        uuid.New(),
		UserID:    userID,
		ItemID:    item.ID,
		ListID:    item.ListID,
		IsCorrect: correct,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learning_records (id, user_id, item_id, list_id, is_correct, user_answer, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserID, rec.ItemID, rec.ListID, rec.IsCorrect, rec.UserAnswer, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}

	return rec
}
