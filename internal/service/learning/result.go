package learning

import "github.com/heartmarshall/vocabflash-backend/internal/domain"

// CheckResult is the outcome of a server-graded answer.
type CheckResult struct {
	Correct bool
	Meaning string
	Record  *domain.LearningRecord
}
