package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningRecord is one timestamped attempt outcome for one item by one user.
// Records are append-only.
type LearningRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ItemID     uuid.UUID
	ListID     uuid.UUID
	IsCorrect  bool
	UserAnswer *string
	CreatedAt  time.Time
}

// LearningStats holds aggregate accuracy for a user on a list.
type LearningStats struct {
	TotalAttempts int
	CorrectCount  int
	Accuracy      float64
}

// NewLearningStats builds stats from raw counts. Accuracy is 0 when there are no attempts.
func NewLearningStats(total, correct int) LearningStats {
	stats := LearningStats{TotalAttempts: total, CorrectCount: correct}
	if total > 0 {
		stats.Accuracy = float64(correct) / float64(total)
	}
	return stats
}
