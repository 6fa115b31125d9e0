package localstore

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

func newItemID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return id, nil
}

// ValidateDate checks that date is a YYYY-MM-DD calendar date.
func ValidateDate(field, date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// All returns every saved item in insertion order.
func (s *Store) All() ([]Item, error) {
	doc, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// ByDate returns the items saved on date.
func (s *Store) ByDate(date string) ([]Item, error) {
	if err := ValidateDate("date", date); err != nil {
		return nil, err
	}
	return s.filter(func(it Item) bool { return it.SavedDate == date })
}

// ByDateRange returns the items saved between start and end, both inclusive.
func (s *Store) ByDateRange(start, end string) ([]Item, error) {
	if err := ValidateDate("from", start); err != nil {
		return nil, err
	}
	if err := ValidateDate("to", end); err != nil {
		return nil, err
	}
	if start > end {
		return nil, domain.NewValidationError("from", "must not be after to")
	}
	return s.filter(func(it Item) bool { return it.SavedDate >= start && it.SavedDate <= end })
}

// SavedDates returns the distinct save dates in ascending order.
func (s *Store) SavedDates() ([]string, error) {
	items, err := s.All()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(items))
	for _, it := range items {
		dates = append(dates, it.SavedDate)
	}
	slices.Sort(dates)
	return slices.Compact(dates), nil
}

func (s *Store) filter(keep func(Item) bool) ([]Item, error) {
	items, err := s.All()
	if err != nil {
		return nil, err
	}

	out := []Item{}
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Add appends parsed items tagged with savedDate and returns them.
// Each item gets a new ID; CreatedAt is now plus the item's index so the
// batch keeps a strict order.
func (s *Store) Add(items []domain.ParsedVocabulary, savedDate string) ([]Item, error) {
	if err := ValidateDate("date", savedDate); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item required")
	}

	now := s.now().UnixMilli()
	added := make([]Item, 0, len(items))
	for i, it := range items {
		word := strings.TrimSpace(it.Word)
		if word == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("items[%d].word", i), "required")
		}
		id, err := s.newID()
		if err != nil {
			return nil, err
		}
		added = append(added, Item{
			ID:        id,
			Word:      word,
			Meaning:   domain.MeaningOrPlaceholder(it.Meaning),
			SavedDate: savedDate,
			CreatedAt: now + int64(i),
		})
	}

	err := s.update(func(doc *Document) error {
		doc.Items = append(doc.Items, added...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("items added", "count", len(added), "date", savedDate)
	return added, nil
}

// Delete removes the item with the given ID.
func (s *Store) Delete(id string) error {
	return s.update(func(doc *Document) error {
		before := len(doc.Items)
		doc.Items = slices.DeleteFunc(doc.Items, func(it Item) bool { return it.ID == id })
		if len(doc.Items) == before {
			return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// DeleteByDate removes every item saved on date and returns how many went.
func (s *Store) DeleteByDate(date string) (int, error) {
	if err := ValidateDate("date", date); err != nil {
		return 0, err
	}

	var removed int
	err := s.update(func(doc *Document) error {
		before := len(doc.Items)
		doc.Items = slices.DeleteFunc(doc.Items, func(it Item) bool { return it.SavedDate == date })
		removed = before - len(doc.Items)
		return nil
	})
	return removed, err
}

// Clear removes the whole snapshot.
func (s *Store) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(StorageKey))
	})
	if err != nil {
		return fmt.Errorf("%w: clear snapshot: %w", domain.ErrStorage, err)
	}
	s.logger.Info("local store cleared")
	return nil
}

// ---------------------------------------------------------------------------
// Export / import
// ---------------------------------------------------------------------------

// Export returns every item as an indented JSON array.
func (s *Store) Export() ([]byte, error) {
	items, err := s.All()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encode export: %w", domain.ErrStorage, err)
	}
	return data, nil
}

// Import appends the items of a JSON array produced by Export. Existing data
// is kept. Imported items whose ID is missing or already taken get a new ID.
// Nothing is written when the payload is invalid.
func (s *Store) Import(data []byte) (int, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, domain.NewValidationError("data", "invalid JSON")
	}

	var items []Item
	if strings.TrimSpace(string(raw))[0] != '[' {
		return 0, domain.NewValidationError("data", "must be a JSON array of items")
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, domain.NewValidationError("data", "invalid item format")
	}

	now := s.now().UnixMilli()
	for i := range items {
		it := &items[i]
		it.Word = strings.TrimSpace(it.Word)
		if it.Word == "" {
			return 0, domain.NewValidationError(fmt.Sprintf("[%d].word", i), "required")
		}
		if err := ValidateDate(fmt.Sprintf("[%d].savedDate", i), it.SavedDate); err != nil {
			return 0, err
		}
		it.Meaning = domain.MeaningOrPlaceholder(it.Meaning)
		if it.CreatedAt == 0 {
			it.CreatedAt = now + int64(i)
		}
	}

	err := s.update(func(doc *Document) error {
		taken := make(map[string]struct{}, len(doc.Items)+len(items))
		for _, it := range doc.Items {
			taken[it.ID] = struct{}{}
		}
		for i := range items {
			if _, dup := taken[items[i].ID]; items[i].ID == "" || dup {
				id, err := s.newID()
				if err != nil {
					return err
				}
				items[i].ID = id
			}
			taken[items[i].ID] = struct{}{}
		}
		doc.Items = append(doc.Items, items...)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("items imported", "count", len(items))
	return len(items), nil
}
