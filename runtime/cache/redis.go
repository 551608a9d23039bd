package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is an optional production-grade MemoryStore backed by Redis, for
// deployments that run the query engine behind multiple replicas and want a
// shared memory tier instead of one sync.Map per process. The caller
// constructs and owns the *redis.Client (dialing, pooling, auth); RedisStore
// only ever issues GET/SET/DEL against a caller-supplied key prefix, mirroring
// the DI style of the pulse Redis client wrapper this is grounded on.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore constructs a RedisStore. prefix namespaces all keys so
// multiple engine instances can share one Redis database without collision.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) namespaced(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

// Get returns the bytes for key if present. Redis handles TTL expiry
// natively, so no lazy-eviction bookkeeping is needed here.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, r.namespaced(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores value under key with the given TTL.
func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	r.client.Set(ctx, r.namespaced(key), value, ttl)
}

// Delete removes key from Redis.
func (r *RedisStore) Delete(ctx context.Context, key string) {
	r.client.Del(ctx, r.namespaced(key))
}
