// Package vocabitem implements the vocabulary item repository using PostgreSQL.
// Items keep the order they were appended in through a per-list position.
package vocabitem

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/vocabflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// Repo provides vocabulary item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocabulary item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var itemColumns = []string{"id", "list_id", "word", "meaning", "position", "created_at"}

const itemColumnsSQL = `id, list_id, word, meaning, position, created_at`

const nextPositionSQL = `SELECT COALESCE(MAX(position) + 1, 0) FROM vocabulary_items WHERE list_id = $1`

const listByListSQL = `
SELECT ` + itemColumnsSQL + `
FROM vocabulary_items
WHERE list_id = $1
ORDER BY position, created_at, id`

const getForUserSQL = `
SELECT i.id, i.list_id, i.word, i.meaning, i.position, i.created_at
FROM vocabulary_items i
JOIN vocabulary_lists l ON l.id = i.list_id
WHERE i.id = $1 AND l.user_id = $2`

const deleteForUserSQL = `
DELETE FROM vocabulary_items i
USING vocabulary_lists l
WHERE i.id = $1 AND i.list_id = l.id AND l.user_id = $2`

const deleteByListSQL = `DELETE FROM vocabulary_items WHERE list_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByList returns the items of a list in insertion order.
// Returns an empty slice (not nil) when the list has no items.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.VocabularyItem, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByListSQL, listID)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", listID)
	}
	defer rows.Close()

	return scanItems(rows, listID)
}

// GetForUser returns an item if it lives in one of userID's lists.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetForUser(ctx context.Context, userID, itemID uuid.UUID) (*domain.VocabularyItem, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getForUserSQL, itemID, userID)

	var item domain.VocabularyItem
	if err := row.Scan(&item.ID, &item.ListID, &item.Word, &item.Meaning, &item.Position, &item.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "vocabulary_item", itemID)
	}

	return &item, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// BulkCreate appends items to the end of a list in a single INSERT and
// returns them in input order. Callers run it inside a transaction together
// with the list ownership check.
func (r *Repo) BulkCreate(ctx context.Context, listID uuid.UUID, items []domain.ParsedVocabulary) ([]*domain.VocabularyItem, error) {
	if len(items) == 0 {
		return []*domain.VocabularyItem{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var next int
	if err := q.QueryRow(ctx, nextPositionSQL, listID).Scan(&next); err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", listID)
	}

	now := time.Now().UTC()
	insert := postgres.Builder().
		Insert("vocabulary_items").
		Columns(itemColumns...).
		Suffix("RETURNING " + itemColumnsSQL)

	for i, it := range items {
		insert = insert.Values(uuid.New(), listID, it.Word, it.Meaning, next+i, now)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bulk insert: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", listID)
	}
	defer rows.Close()

	created, err := scanItems(rows, listID)
	if err != nil {
		return nil, err
	}

	// RETURNING does not guarantee order.
	byPos := make([]*domain.VocabularyItem, len(created))
	for _, it := range created {
		idx := it.Position - next
		if idx < 0 || idx >= len(byPos) {
			return nil, fmt.Errorf("vocabulary_list %s: unexpected position %d: %w", listID, it.Position, domain.ErrStorage)
		}
		byPos[idx] = it
	}

	return byPos, nil
}

// DeleteForUser removes an item that lives in one of userID's lists.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) DeleteForUser(ctx context.Context, userID, itemID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteForUserSQL, itemID, userID)
	if err != nil {
		return postgres.MapError(err, "vocabulary_item", itemID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary_item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByList removes every item of a list and returns how many were removed.
func (r *Repo) DeleteByList(ctx context.Context, listID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByListSQL, listID)
	if err != nil {
		return 0, postgres.MapError(err, "vocabulary_list", listID)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanItems(rows pgx.Rows, listID uuid.UUID) ([]*domain.VocabularyItem, error) {
	items := []*domain.VocabularyItem{}
	for rows.Next() {
		var item domain.VocabularyItem
		if err := rows.Scan(&item.ID, &item.ListID, &item.Word, &item.Meaning, &item.Position, &item.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "vocabulary_list", listID)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", listID)
	}

	return items, nil
}
