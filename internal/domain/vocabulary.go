package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceholderMeaning is stored when an uploaded line carries a word but no meaning.
const PlaceholderMeaning = "No meaning provided"

// VocabularyList is a named, user-owned collection of vocabulary items.
type VocabularyList struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VocabularyItem is one word/meaning pair belonging to exactly one list.
type VocabularyItem struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	Word      string
	Meaning   string
	Position  int
	CreatedAt time.Time
}

// ParsedVocabulary is a word/meaning pair produced by the upload parser,
// not yet persisted.
type ParsedVocabulary struct {
	Word    string
	Meaning string
}

// MeaningOrPlaceholder trims the meaning and substitutes PlaceholderMeaning when it is blank.
func MeaningOrPlaceholder(meaning string) string {
	meaning = strings.TrimSpace(meaning)
	if meaning == "" {
		return PlaceholderMeaning
	}
	return meaning
}
