// Package localstore keeps vocabulary for the no-server variant in a single
// JSON snapshot document stored under one fixed badger key. Every mutation is
// a whole-document read-modify-write inside one badger transaction.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// StorageKey is the key the snapshot document lives under.
const StorageKey = "vocabulary_flashcard_data"

// DateLayout is the format of Item.SavedDate.
const DateLayout = "2006-01-02"

// Item is one saved word tagged with the day it was saved.
type Item struct {
	ID        string `json:"id"`
	Word      string `json:"word"`
	Meaning   string `json:"meaning"`
	SavedDate string `json:"savedDate"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// Document is the persisted snapshot.
type Document struct {
	Items       []Item `json:"items"`
	LastUpdated int64  `json:"lastUpdated"` // unix milliseconds
}

// Store is a badger-backed snapshot store. It is safe for concurrent use;
// badger serializes conflicting updates.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
	now    func() time.Time
	newID  func() (string, error)
}

// Open opens (or creates) the snapshot database at path.
// An empty path opens an in-memory database.
func Open(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil      // disable badger's internal logging
	opts.SyncWrites = true // sync every write to disk

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Debug("local store opened", slog.String("path", path))

	return &Store{
		db:     db,
		logger: logger.With("component", "localstore"),
		now:    time.Now,
		newID:  newItemID,
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ---------------------------------------------------------------------------
// Document access
// ---------------------------------------------------------------------------

// load reads the snapshot. A missing key is an empty document.
func load(txn *badger.Txn) (Document, error) {
	var doc Document

	item, err := txn.Get([]byte(StorageKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("%w: read snapshot: %w", domain.ErrStorage, err)
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &doc)
	})
	if err != nil {
		return doc, fmt.Errorf("%w: decode snapshot: %w", domain.ErrStorage, err)
	}

	return doc, nil
}

// save writes the snapshot with a fresh lastUpdated stamp.
func (s *Store) save(txn *badger.Txn, doc Document) error {
	if doc.Items == nil {
		doc.Items = []Item{}
	}
	doc.LastUpdated = s.now().UnixMilli()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %w", domain.ErrStorage, err)
	}

	if err := txn.Set([]byte(StorageKey), data); err != nil {
		return fmt.Errorf("%w: write snapshot: %w", domain.ErrStorage, err)
	}
	return nil
}

func (s *Store) view() (Document, error) {
	var doc Document
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		doc, err = load(txn)
		return err
	})
	return doc, err
}

// update runs fn on the current document and saves the result. Nothing is
// written when fn returns an error.
func (s *Store) update(fn func(doc *Document) error) error {
	return s.db.Update(func(txn *badger.Txn) error {
		doc, err := load(txn)
		if err != nil {
			return err
		}
		if err := fn(&doc); err != nil {
			return err
		}
		return s.save(txn, doc)
	})
}

// Snapshot returns the whole stored document.
func (s *Store) Snapshot() (Document, error) {
	doc, err := s.view()
	if doc.Items == nil {
		doc.Items = []Item{}
	}
	return doc, err
}
