package fetcher

import (
	"context"

	"drift-indexer-sol/internal/cache"
	"drift-indexer-sol/internal/logic/resolver"
	"drift-indexer-sol/internal/metrics"

	"golang.org/x/sync/singleflight"
)

const layerMemory = "memory"

// MemoryCacheFetcher 一级缓存，同一地址的并发未命中合并为一次回源
type MemoryCacheFetcher struct {
	cache *cache.LookupTableCache
	next  resolver.AccountFetcher
	group singleflight.Group
}

func NewMemoryCacheFetcher(c *cache.LookupTableCache, next resolver.AccountFetcher) *MemoryCacheFetcher {
	return &MemoryCacheFetcher{cache: c, next: next}
}

func (f *MemoryCacheFetcher) FetchAccount(ctx context.Context, key string) ([]byte, error) {
	if data, ok := f.cache.Get(key); ok {
		metrics.LookupFetches.WithLabelValues(layerMemory, metrics.ResultHit).Inc()
		return data, nil
	}
	metrics.LookupFetches.WithLabelValues(layerMemory, metrics.ResultMiss).Inc()

	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		data, err := f.next.FetchAccount(ctx, key)
		if err != nil {
			return nil, err
		}
		f.cache.Set(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
