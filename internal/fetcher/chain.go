package fetcher

import (
	"time"

	"drift-indexer-sol/internal/cache"
	"drift-indexer-sol/internal/logic/resolver"

	"github.com/redis/go-redis/v9"
)

// ChainOptions 组装分层获取链：内存 → Redis → 重试 → RPC
type ChainOptions struct {
	RpcEndpoint    string
	RpcTimeout     time.Duration
	RetryAttempts  uint
	RetryDelay     time.Duration
	Redis          redis.UniversalClient // nil 表示不启用 Redis 层
	RedisTTL       time.Duration
	MemoryCapacity int
	MemoryTTL      time.Duration
}

func NewChain(opt ChainOptions) resolver.AccountFetcher {
	var f resolver.AccountFetcher = NewRpcFetcher(opt.RpcEndpoint, opt.RpcTimeout)
	if opt.RetryAttempts > 1 {
		f = NewRetryFetcher(f, opt.RetryAttempts, opt.RetryDelay)
	}
	if opt.Redis != nil {
		f = NewRedisCacheFetcher(opt.Redis, f, opt.RedisTTL)
	}
	if opt.MemoryTTL > 0 {
		f = NewMemoryCacheFetcher(cache.NewLookupTableCache(opt.MemoryCapacity, opt.MemoryTTL), f)
	}
	return f
}
