package cache

import (
	"context"
	"encoding/json"
	"log"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store composes the memory and disk tiers behind a single-flight group, so
// that N concurrent requests for the same key during a cold cache produce
// exactly one upstream fetch (spec.md §4.1, §8 invariant #6). It is the
// entry point every provider adapter and the Apple Framework Index Service
// uses to wrap an upstream fetch.
type Store struct {
	memory MemoryStore
	disk   DiskStore
	flight singleflight.Group
}

// NewStore wires a memory tier and a disk tier into one coalescing store.
// disk may be nil for purely in-memory use (e.g. tests), in which case the
// disk tier is treated as a permanent miss.
func NewStore(memory MemoryStore, disk DiskStore) *Store {
	return &Store{memory: memory, disk: disk}
}

// diskFilename turns an arbitrary cache key into a filesystem-safe filename.
func diskFilename(key string) string {
	replacer := strings.NewReplacer("/", "_", ":", "_", " ", "_")
	return replacer.Replace(key) + ".json"
}

// Fetch resolves value for (namespace, key) by trying the memory tier, then
// the disk tier, then falling back to fn, coalescing concurrent upstream
// calls for the same key via single-flight. A fresh value populates both the
// memory and disk tiers before being returned; a disk read populates the
// memory tier so subsequent calls stay in-process.
//
// Fetch is a free function, not a Store method, because Go methods cannot
// carry their own type parameters.
func Fetch[T any](ctx context.Context, s *Store, namespace, key string, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	cacheKey := namespace + "/" + key

	if raw, ok := s.memory.Get(ctx, cacheKey); ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		s.memory.Delete(ctx, cacheKey)
	}

	if s.disk != nil {
		if raw, err := s.disk.Read(ctx, namespace, diskFilename(key)); err == nil {
			var entry Entry[T]
			if err := json.Unmarshal(raw, &entry); err == nil && !entry.Expired(time.Now()) {
				if encoded, err := json.Marshal(entry.Value); err == nil {
					remaining := time.Until(entry.InsertedAt.Add(entry.TTL))
					if remaining > 0 {
						s.memory.Set(ctx, cacheKey, encoded, remaining)
					}
				}
				return entry.Value, nil
			}
		}
	}

	result, err, _ := s.flight.Do(cacheKey, func() (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		if encoded, err := json.Marshal(v); err == nil {
			s.memory.Set(ctx, cacheKey, encoded, ttl)
			if s.disk != nil {
				entry := Entry[T]{Value: v, InsertedAt: time.Now(), TTL: ttl}
				if payload, err := json.Marshal(entry); err == nil {
					if err := s.disk.Write(ctx, namespace, diskFilename(key), payload); err != nil {
						log.Printf("cache: disk write for %s failed: %v", cacheKey, err)
					}
				}
			}
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Invalidate clears the memory tier for (namespace, key). The disk copy is
// left in place, so a later Fetch still serves it until its TTL elapses.
func (s *Store) Invalidate(ctx context.Context, namespace, key string) {
	s.memory.Delete(ctx, namespace+"/"+key)
}

// NamespaceDir reports the on-disk subdirectory a namespace would use,
// relative to the disk store's root. Exposed for diagnostics only.
func NamespaceDir(root, namespace string) string {
	return filepath.Join(root, namespace)
}
