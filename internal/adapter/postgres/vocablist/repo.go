// Package vocablist implements the vocabulary list repository using PostgreSQL.
// Every read and delete is scoped by the owning user.
package vocablist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/vocabflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// Repo provides vocabulary list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocabulary list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const listColumns = `id, user_id, name, description, created_at, updated_at`

const createListSQL = `
INSERT INTO vocabulary_lists (id, user_id, name, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + listColumns

const getListSQL = `
SELECT ` + listColumns + `
FROM vocabulary_lists
WHERE id = $1 AND user_id = $2`

const listByUserSQL = `
SELECT ` + listColumns + `
FROM vocabulary_lists
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

const deleteListSQL = `DELETE FROM vocabulary_lists WHERE id = $1 AND user_id = $2`

const touchListSQL = `UPDATE vocabulary_lists SET updated_at = now() WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a list owned by userID.
// Returns domain.ErrNotFound if the list does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.VocabularyList, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getListSQL, listID, userID)

	list, err := scanList(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", listID)
	}

	return list, nil
}

// ListByUser returns all lists for a user, newest first.
// Returns an empty slice (not nil) when the user has no lists.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.VocabularyList, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", uuid.Nil)
	}
	defer rows.Close()

	lists := []*domain.VocabularyList{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, postgres.MapError(err, "vocabulary_list", uuid.Nil)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", uuid.Nil)
	}

	return lists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new list. ID and timestamps are assigned here.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string, description *string) (*domain.VocabularyList, error) {
	id := uuid.New()
	now := time.Now().UTC()

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createListSQL, id, userID, name, description, now)

	list, err := scanList(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", id)
	}

	return list, nil
}

// Delete removes a list owned by userID. Items and records go with it via
// ON DELETE CASCADE.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteListSQL, listID, userID)
	if err != nil {
		return postgres.MapError(err, "vocabulary_list", listID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary_list %s: %w", listID, domain.ErrNotFound)
	}

	return nil
}

// Touch bumps updated_at after the list contents change.
func (r *Repo) Touch(ctx context.Context, listID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, touchListSQL, listID); err != nil {
		return postgres.MapError(err, "vocabulary_list", listID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanList(row pgx.Row) (*domain.VocabularyList, error) {
	var (
		list        domain.VocabularyList
		description pgtype.Text
	)

	if err := row.Scan(&list.ID, &list.UserID, &list.Name, &description, &list.CreatedAt, &list.UpdatedAt); err != nil {
		return nil, err
	}

	if description.Valid {
		list.Description = &description.String
	}

	return &list, nil
}
