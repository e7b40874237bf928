package storage

import (
	"sync"

	"github.com/vovakirdan/lexicon/internal/core"
)

// MemoryBestStore keeps best scores in process memory.
// Used when the database cannot be opened; values are lost on exit.
type MemoryBestStore struct {
	mu     sync.Mutex
	values map[string]int
}

var _ core.BestStore = (*MemoryBestStore)(nil)

// NewMemoryBestStore creates an empty in-memory best score store.
func NewMemoryBestStore() *MemoryBestStore {
	return &MemoryBestStore{values: make(map[string]int)}
}

// BestScore returns the best score for key, or 0.
func (m *MemoryBestStore) BestScore(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// RecordBest raises the best score for key and returns the stored value.
func (m *MemoryBestStore) RecordBest(key string, score int) (int, error) {
	if score < 0 {
		return 0, ErrNegativeScore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.values[key] {
		m.values[key] = score
	}
	return m.values[key], nil
}
