// Package learningrecord implements the append-only learning record
// repository using PostgreSQL.
package learningrecord

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/vocabflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// Repo provides learning record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new learning record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var recordColumns = []string{"id", "user_id", "item_id", "list_id", "is_correct", "user_answer", "created_at"}

const createRecordSQL = `
INSERT INTO learning_records (id, user_id, item_id, list_id, is_correct, user_answer, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, item_id, list_id, is_correct, user_answer, created_at`

const statsSQL = `
SELECT
    count(*),
    COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0)
FROM learning_records
WHERE user_id = $1 AND list_id = $2`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create appends a learning record. ID and timestamp are assigned here.
// A missing item or list surfaces as domain.ErrNotFound via the foreign keys.
func (r *Repo) Create(ctx context.Context, rec *domain.LearningRecord) (*domain.LearningRecord, error) {
	id := uuid.New()
	now := time.Now().UTC()

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createRecordSQL,
		id, rec.UserID, rec.ItemID, rec.ListID, rec.IsCorrect, rec.UserAnswer, now,
	)

	created, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "learning_record", id)
	}

	return created, nil
}

// List returns a user's records for one list, newest first.
func (r *Repo) List(ctx context.Context, userID, listID uuid.UUID, limit, offset int) ([]*domain.LearningRecord, error) {
	query := postgres.Builder().
		Select(recordColumns...).
		From("learning_records").
		Where(squirrel.Eq{"user_id": userID, "list_id": listID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build records query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", listID)
	}
	defer rows.Close()

	records := []*domain.LearningRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, postgres.MapError(err, "vocabulary_list", listID)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "vocabulary_list", listID)
	}

	return records, nil
}

// Stats aggregates a user's attempts on one list.
func (r *Repo) Stats(ctx context.Context, userID, listID uuid.UUID) (domain.LearningStats, error) {
	var total, correct int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, statsSQL, userID, listID).Scan(&total, &correct)
	if err != nil {
		return domain.LearningStats{}, postgres.MapError(err, "vocabulary_list", listID)
	}

	return domain.NewLearningStats(total, correct), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (*domain.LearningRecord, error) {
	var (
		rec    domain.LearningRecord
		answer pgtype.Text
	)

	if err := row.Scan(&rec.ID, &rec.UserID, &rec.ItemID, &rec.ListID, &rec.IsCorrect, &answer, &rec.CreatedAt); err != nil {
		return nil, err
	}

	if answer.Valid {
		rec.UserAnswer = &answer.String
	}

	return &rec, nil
}
