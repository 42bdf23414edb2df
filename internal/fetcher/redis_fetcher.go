package fetcher

import (
	"context"
	"errors"
	"time"

	"drift-indexer-sol/internal/logic/resolver"
	"drift-indexer-sol/internal/metrics"
	"drift-indexer-sol/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	layerRedis     = "redis"
	redisKeyPrefix = "drift:alt:"
)

// RedisCacheFetcher 二级缓存，Redis 自身异常按未命中处理
type RedisCacheFetcher struct {
	rdb  redis.UniversalClient
	next resolver.AccountFetcher
	ttl  time.Duration
}

func NewRedisCacheFetcher(rdb redis.UniversalClient, next resolver.AccountFetcher, ttl time.Duration) *RedisCacheFetcher {
	return &RedisCacheFetcher{rdb: rdb, next: next, ttl: ttl}
}

func (f *RedisCacheFetcher) FetchAccount(ctx context.Context, key string) ([]byte, error) {
	cacheKey := redisKeyPrefix + key

	data, err := f.rdb.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil && len(data) > 0:
		metrics.LookupFetches.WithLabelValues(layerRedis, metrics.ResultHit).Inc()
		return data, nil
	case err == nil || errors.Is(err, redis.Nil):
		metrics.LookupFetches.WithLabelValues(layerRedis, metrics.ResultMiss).Inc()
	default:
		metrics.LookupFetches.WithLabelValues(layerRedis, metrics.ResultError).Inc()
		logger.Warnf("[Fetcher:Redis] 读取缓存失败，回源: %v, key=%s", err, key)
	}

	data, err = f.next.FetchAccount(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := f.rdb.Set(ctx, cacheKey, data, f.ttl).Err(); err != nil {
		logger.Warnf("[Fetcher:Redis] 写入缓存失败: %v, key=%s", err, key)
	}
	return data, nil
}
