package vocabulary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}

	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddItemsInput holds the parameters for appending items to a list.
type AddItemsInput struct {
	ListID uuid.UUID
	Items  []domain.ParsedVocabulary
}

// Validate checks all fields and collects all errors.
// An empty meaning is not an error; it is replaced with a placeholder.
func (i AddItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item required"})
	}

	for idx, it := range i.Items {
		word := strings.TrimSpace(it.Word)
		if word == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("items[%d].word", idx), Message: "required"})
		}
		if utf8.RuneCountInString(word) > MaxWordLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("items[%d].word", idx), Message: fmt.Sprintf("max %d characters", MaxWordLength)})
		}
		if utf8.RuneCountInString(strings.TrimSpace(it.Meaning)) > MaxMeaningLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("items[%d].meaning", idx), Message: fmt.Sprintf("max %d characters", MaxMeaningLength)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadTextInput holds raw text to parse into a list.
type UploadTextInput struct {
	ListID  uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i UploadTextInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadPDFInput holds a base64-encoded PDF document to parse into a list.
type UploadPDFInput struct {
	ListID    uuid.UUID
	PDFBase64 string
}

// Validate checks all fields and collects all errors.
func (i UploadPDFInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if strings.TrimSpace(i.PDFBase64) == "" {
		errs = append(errs, domain.FieldError{Field: "pdf_base64", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
