package cache

import (
	"context"
	"sync"
	"time"
)

// memoryEntry pairs raw bytes with an absolute expiry time.
type memoryEntry struct {
	value   []byte
	expires time.Time
}

// SyncMapStore is the dependency-free default MemoryStore, backed by
// sync.Map. It is safe for concurrent use by multiple goroutines and requires
// no external service, matching spec.md §4.1's "memory tier has no external
// dependency" requirement.
type SyncMapStore struct {
	entries sync.Map // string -> memoryEntry
}

// NewSyncMapStore constructs an empty in-process memory store.
func NewSyncMapStore() *SyncMapStore {
	return &SyncMapStore{}
}

// Get returns the bytes for key if present and unexpired. An expired entry is
// evicted lazily and reported as a miss.
func (s *SyncMapStore) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, ok := s.entries.Load(key)
	if !ok {
		return nil, false
	}
	entry := raw.(memoryEntry)
	if time.Now().After(entry.expires) {
		s.entries.Delete(key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key with the given TTL.
func (s *SyncMapStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	s.entries.Store(key, memoryEntry{value: value, expires: time.Now().Add(ttl)})
}

// Delete removes key from the store.
func (s *SyncMapStore) Delete(ctx context.Context, key string) {
	s.entries.Delete(key)
}
