package kv

import (
	"context"
	"fmt"
	"sync"

	"github.com/soupmate/soupmate-api/internal/errs"
	"github.com/soupmate/soupmate-api/internal/util"
)

// MemoryStore is an in-process Store used when no Redis URL is configured and
// in tests. Values are kept as marshaled JSON so Get/Set round-trips behave
// exactly like the Redis implementation.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get unmarshals the value stored under key into dest.
func (s *MemoryStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := util.DeserializeFromJSONString(raw, dest); err != nil {
		return false, errs.StoreError{Message: fmt.Sprintf("decode value for %q: %v", key, err)}
	}
	return true, nil
}

// Set marshals value and stores it under key.
func (s *MemoryStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := util.SerializeToJSONString(value)
	if err != nil {
		return errs.StoreError{Message: fmt.Sprintf("encode value for %q: %v", key, err)}
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

// Keys returns the stored keys. Test helper.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}
