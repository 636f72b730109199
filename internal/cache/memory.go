package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the in-process backend used when no redis address is configured.
type MemoryCache struct {
	c *gocache.Cache
}

func NewMemoryCache(opts Options) *MemoryCache {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	return &MemoryCache{c: gocache.New(ttl, 10*time.Minute)}
}

func (m *MemoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	const op = "cache.MemoryCache.Get"

	v, ok := m.c.Get(key)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(v.([]byte), dst); err != nil {
		return false, fmt.Errorf("%s: decode: %w", op, err)
	}

	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value any) error {
	const op = "cache.MemoryCache.Set"

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	m.c.SetDefault(key, raw)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.c.Delete(k)
	}
	return nil
}
