package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"photogallery/internal/domain/models"
	"photogallery/internal/storage"
	redisapp "photogallery/internal/storage/redis"
)

const entriesKey = "gallery:entries"

type RedisEntriesCache struct {
	Client *redisapp.Client
	TTL    time.Duration
}

func NewRedisEntriesCache(client *redisapp.Client, ttl time.Duration) *RedisEntriesCache {
	return &RedisEntriesCache{Client: client, TTL: ttl}
}

func (r *RedisEntriesCache) GetEntries(ctx context.Context) ([]models.Entry, error) {
	val, err := r.Client.Get(ctx, entriesKey).Bytes()
	if err == redis.Nil {
		return nil, storage.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var entries []models.Entry
	if err := json.Unmarshal(val, &entries); err != nil {
		return nil, fmt.Errorf("decode cached entries: %w", err)
	}

	return entries, nil
}

func (r *RedisEntriesCache) SetEntries(ctx context.Context, entries []models.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return r.Client.Set(ctx, entriesKey, data, r.TTL).Err()
}

func (r *RedisEntriesCache) Invalidate(ctx context.Context) error {
	return r.Client.Del(ctx, entriesKey).Err()
}

// MemoryEntriesCache держит список в памяти процесса
type MemoryEntriesCache struct {
	c *gocache.Cache
}

func NewMemoryEntriesCache(ttl time.Duration) *MemoryEntriesCache {
	return &MemoryEntriesCache{c: gocache.New(ttl, 2*ttl)}
}

func (m *MemoryEntriesCache) GetEntries(_ context.Context) ([]models.Entry, error) {
	v, ok := m.c.Get(entriesKey)
	if !ok {
		return nil, storage.ErrCacheMiss
	}

	cached := v.([]models.Entry)
	// callers may append to the result
	entries := make([]models.Entry, len(cached))
	copy(entries, cached)

	return entries, nil
}

func (m *MemoryEntriesCache) SetEntries(_ context.Context, entries []models.Entry) error {
	stored := make([]models.Entry, len(entries))
	copy(stored, entries)
	m.c.SetDefault(entriesKey, stored)

	return nil
}

func (m *MemoryEntriesCache) Invalidate(_ context.Context) error {
	m.c.Delete(entriesKey)
	return nil
}

// NoopEntriesCache always misses.
type NoopEntriesCache struct{}

func (NoopEntriesCache) GetEntries(context.Context) ([]models.Entry, error) {
	return nil, storage.ErrCacheMiss
}

func (NoopEntriesCache) SetEntries(context.Context, []models.Entry) error { return nil }

func (NoopEntriesCache) Invalidate(context.Context) error { return nil }
