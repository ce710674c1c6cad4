package memory

import (
	"context"
	"sync"

	"github.com/hongminglow/all-in-forms/internal/models"
	"github.com/hongminglow/all-in-forms/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// Store keeps user records in process memory.
type Store struct {
	mu      sync.RWMutex
	records map[string]models.UserRecord
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string]models.UserRecord)}
}

func (s *Store) Get(ctx context.Context, key string) (models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[key]
	if !ok {
		return models.UserRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (s *Store) Put(ctx context.Context, key string, record models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = record
	return nil
}

// Len reports how many records are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
