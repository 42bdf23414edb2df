package progress

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	slotPrefix       = "drift:progress:slot"
	checkpointPrefix = "drift:progress:checkpoint"

	defaultSlotTTL = 3 * 24 * time.Hour
)

// RedisProgressStore 记录每个 slot 的处理状态与回补断点
type RedisProgressStore struct {
	rdb     redis.UniversalClient
	slotTTL time.Duration
}

func NewRedisProgressStore(rdb redis.UniversalClient, slotTTL time.Duration) *RedisProgressStore {
	if slotTTL <= 0 {
		slotTTL = defaultSlotTTL
	}
	return &RedisProgressStore{rdb: rdb, slotTTL: slotTTL}
}

func slotKey(slot uint64) string {
	return fmt.Sprintf("%s:%d", slotPrefix, slot)
}

func checkpointKey(name string) string {
	return checkpointPrefix + ":" + name
}

// GetSlotStatus 不存在的 key 返回 SlotUnknown
func (r *RedisProgressStore) GetSlotStatus(ctx context.Context, slot uint64) (SlotStatus, error) {
	val, err := r.rdb.Get(ctx, slotKey(slot)).Int()
	switch {
	case errors.Is(err, redis.Nil):
		return SlotUnknown, nil
	case err != nil:
		return SlotUnknown, fmt.Errorf("redis get slot %d: %w", slot, err)
	}
	switch SlotStatus(val) {
	case SlotProcessed, SlotFailed:
		return SlotStatus(val), nil
	default:
		return SlotUnknown, nil
	}
}

// MarkSlotStatus 写入 slot 状态，带 TTL
func (r *RedisProgressStore) MarkSlotStatus(ctx context.Context, slot uint64, status SlotStatus) error {
	if err := r.rdb.Set(ctx, slotKey(slot), int(status), r.slotTTL).Err(); err != nil {
		return fmt.Errorf("redis set slot %d: %w", slot, err)
	}
	return nil
}

// LoadCheckpoint 读取断点，ok=false 表示尚无断点
func (r *RedisProgressStore) LoadCheckpoint(ctx context.Context, name string) (slot uint64, ok bool, err error) {
	val, err := r.rdb.Get(ctx, checkpointKey(name)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("redis get checkpoint %s: %w", name, err)
	}
	slot, err = strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse checkpoint %s=%q: %w", name, val, err)
	}
	return slot, true, nil
}

// SaveCheckpoint 断点不过期
func (r *RedisProgressStore) SaveCheckpoint(ctx context.Context, name string, slot uint64) error {
	if err := r.rdb.Set(ctx, checkpointKey(name), strconv.FormatUint(slot, 10), 0).Err(); err != nil {
		return fmt.Errorf("redis set checkpoint %s: %w", name, err)
	}
	return nil
}
