package storage

import (
	"strconv"
	"sync"
)

// HighScoreStore is the durable best-score slot a game writes through.
// Implementations overwrite on save; a missing key loads as 0.
type HighScoreStore interface {
	LoadHighScore(key string) (int, error)
	SaveHighScore(key string, score int) error
}

// MemoryStore keeps values in process memory. Used when the database cannot
// be opened and by tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the raw value stored under key and whether it exists.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set overwrites the value stored under key.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// LoadHighScore reads a best score. Missing or unparsable values read as 0.
func (m *MemoryStore) LoadHighScore(key string) (int, error) {
	v, ok, _ := m.Get(key)
	if !ok {
		return 0, nil
	}
	return parseScore(v), nil
}

// SaveHighScore overwrites the best score under key.
func (m *MemoryStore) SaveHighScore(key string, score int) error {
	return m.Set(key, strconv.Itoa(score))
}

var (
	_ HighScoreStore = (*Store)(nil)
	_ HighScoreStore = (*MemoryStore)(nil)
)
