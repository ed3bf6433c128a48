package caches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when no entry exists for the key.
var ErrCacheMiss = errors.New("cache miss")

// CacheStore is the cache port called directly from the mutation and query
// paths. Evictions are explicit and listed at the call sites; TTLs are a
// fallback bound, not the primary coherence mechanism.
//
//go:generate mockgen -source=cache_store.go -destination=./mocks/cache_store_mock.go -package=mocks
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix evicts every key under the prefix. Used for the
	// coarse-grained cache classes (full list, popular-N, analytics) where
	// any mutation invalidates all entries.
	DeletePrefix(ctx context.Context, prefix string) error
}

type redisCacheStore struct {
	client *redis.Client
}

func NewRedisCacheStore(client *redis.Client) CacheStore {
	return &redisCacheStore{client: client}
}

func (s *redisCacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrCacheMiss, key)
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}
	return value, nil
}

func (s *redisCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}
	return nil
}

func (s *redisCacheStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache entries: %w", err)
	}
	return nil
}

func (s *redisCacheStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	return s.Delete(ctx, keys...)
}
