package store

import (
	"context"
	"encoding/json"
	"sync"

	"stayhub/internal/domain/contract"
	usecasecontract "stayhub/internal/usecase/contract"
)

// MemoryStore is the in-process KVStore backend. It is the default
// backend and the fake used throughout the tests.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]json.RawMessage
	logger usecasecontract.IAppLogger
}

var _ contract.KVStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger usecasecontract.IAppLogger) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]json.RawMessage),
		logger: logger,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest interface{}) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Errorf("memory store: reading %s: %v", key, err)
		return false
	}
	return true
}

func (s *MemoryStore) Set(ctx context.Context, key string, value interface{}) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Errorf("memory store: writing %s: %v", key, err)
		return false
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return true
}

func (s *MemoryStore) Remove(ctx context.Context, key string) bool {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return true
}

func (s *MemoryStore) Clear(ctx context.Context) bool {
	s.mu.Lock()
	s.data = make(map[string]json.RawMessage)
	s.mu.Unlock()
	return true
}
