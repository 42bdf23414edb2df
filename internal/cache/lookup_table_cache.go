package cache

import (
	"sort"
	"sync"
	"time"
)

type tableEntry struct {
	data     []byte
	expireAt time.Time
}

// LookupTableCache 地址查找表原始数据的进程内缓存，按 TTL 过期。
// 查找表只追加不修改，TTL 用于限制新增地址的可见延迟。
type LookupTableCache struct {
	mu         sync.RWMutex
	entries    map[string]tableEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewLookupTableCache(maxEntries int, ttl time.Duration) *LookupTableCache {
	if maxEntries <= 0 {
		maxEntries = 4096
	}
	return &LookupTableCache{
		entries:    make(map[string]tableEntry, maxEntries),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get 命中且未过期时返回数据（调用方不得修改返回的切片）
func (c *LookupTableCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(entry.expireAt) {
		return nil, false
	}
	return entry.data, true
}

func (c *LookupTableCache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = tableEntry{data: data, expireAt: c.now().Add(c.ttl)}
}

func (c *LookupTableCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictLocked 先清理过期项；仍超过容量时按过期时间淘汰最早的 1/4
func (c *LookupTableCache) evictLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if !now.Before(entry.expireAt) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) < c.maxEntries {
		return
	}

	retain := c.maxEntries * 3 / 4
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return c.entries[keys[i]].expireAt.Before(c.entries[keys[j]].expireAt)
	})
	for _, key := range keys[:len(keys)-retain] {
		delete(c.entries, key)
	}
}
