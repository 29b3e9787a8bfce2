// Package storage persists the engine's vote and like collections as two
// JSON blobs in a string-keyed key-value store. The store is an
// opportunistic cache, not a durable schema: missing or corrupt data
// degrades to an empty collection.
package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound reports that a key has no value.
var ErrNotFound = errors.New("storage: key not found")

// KV is the narrow capability the persistence adapter needs from a blob
// store. Implementations must return ErrNotFound on a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte) error
}

// RedisKV stores blobs in Redis.
type RedisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisKV) Set(ctx context.Context, key string, val []byte) error {
	return s.rdb.Set(ctx, key, val, 0).Err()
}

// MemoryKV is an in-process KV used by tests and by `--memory` runs where
// no Redis is available.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (s *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (s *MemoryKV) Set(_ context.Context, key string, val []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(val))
	copy(cp, val)
	s.data[key] = cp
	return nil
}
