package selection

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore хранилище выборок в памяти. Используется в тестах
// и при локальном запуске без Redis.
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string][]byte
}

// NewMemoryStore создает хранилище выборок в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string][]byte)}
}

// Load загружает набор сессии
func (s *MemoryStore) Load(_ context.Context, sessionID string) (*Set, error) {
	s.mu.RLock()
	data, ok := s.sets[sessionID]
	s.mu.RUnlock()

	if !ok {
		return NewSet(), nil
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, ErrDecodeSet
	}
	if set.Entries == nil {
		set.Entries = make([]Entry, 0)
	}
	return &set, nil
}

// Save сохраняет набор сессии
func (s *MemoryStore) Save(_ context.Context, sessionID string, set *Set) error {
	data, err := json.Marshal(set)
	if err != nil {
		return ErrEncodeSet
	}

	s.mu.Lock()
	s.sets[sessionID] = data
	s.mu.Unlock()
	return nil
}

// Clear удаляет набор сессии
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sets, sessionID)
	s.mu.Unlock()
	return nil
}
