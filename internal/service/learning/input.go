package learning

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// RecordResultInput holds one self-graded attempt.
type RecordResultInput struct {
	ItemID     uuid.UUID
	ListID     uuid.UUID
	IsCorrect  bool
	UserAnswer *string
}

// Validate checks all fields and collects all errors.
func (i RecordResultInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.UserAnswer != nil && utf8.RuneCountInString(*i.UserAnswer) > MaxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "user_answer", Message: fmt.Sprintf("max %d characters", MaxAnswerLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CheckAnswerInput holds an answer to be graded on the server.
type CheckAnswerInput struct {
	ItemID uuid.UUID
	Answer string
}

// Validate checks all fields and collects all errors.
func (i CheckAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if utf8.RuneCountInString(i.Answer) > MaxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "answer", Message: fmt.Sprintf("max %d characters", MaxAnswerLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetRecordsInput holds the parameters for listing records.
type GetRecordsInput struct {
	ListID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i GetRecordsInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxRecordsLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxRecordsLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
