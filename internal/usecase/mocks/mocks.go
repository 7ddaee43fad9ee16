package mocks

import (
	"context"
	"sync"

	"github.com/iho/budgetledger/internal/domain"
)

// InMemoryEntryStore is a hand-written EntryStore that keeps the ledger in memory.
// LoadFunc and SaveFunc override the default behaviour when set.
type InMemoryEntryStore struct {
	mu      sync.RWMutex
	entries []domain.Entry
	saves   int

	LoadFunc func(ctx context.Context) ([]domain.Entry, error)
	SaveFunc func(ctx context.Context, entries []domain.Entry) error
}

// NewInMemoryEntryStore creates a store seeded with entries.
func NewInMemoryEntryStore(entries ...domain.Entry) *InMemoryEntryStore {
	return &InMemoryEntryStore{entries: append([]domain.Entry(nil), entries...)}
}

func (s *InMemoryEntryStore) Load(ctx context.Context) ([]domain.Entry, error) {
	if s.LoadFunc != nil {
		return s.LoadFunc(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Entry(nil), s.entries...), nil
}

func (s *InMemoryEntryStore) Save(ctx context.Context, entries []domain.Entry) error {
	if s.SaveFunc != nil {
		return s.SaveFunc(ctx, entries)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]domain.Entry(nil), entries...)
	s.saves++

	return nil
}

// Entries returns a copy of the stored ledger.
func (s *InMemoryEntryStore) Entries() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Entry(nil), s.entries...)
}

// Saves returns how many times Save succeeded.
func (s *InMemoryEntryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.saves
}
