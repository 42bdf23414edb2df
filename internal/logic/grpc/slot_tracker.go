package grpc

import "sync"

// slotTracker 记录已收到的最大 slot，发现跳号时回调
type slotTracker struct {
	mu    sync.Mutex
	last  uint64
	onGap GapFunc
}

func newSlotTracker(onGap GapFunc) *slotTracker {
	return &slotTracker{onGap: onGap}
}

// Observe 返回 slot 是否推进了进度；重复或回退的 slot 不影响 last
func (t *slotTracker) Observe(slot uint64) bool {
	t.mu.Lock()
	prev := t.last
	if slot <= prev {
		t.mu.Unlock()
		return false
	}
	t.last = slot
	t.mu.Unlock()

	// 首个 slot 不算跳号
	if prev != 0 && slot > prev+1 && t.onGap != nil {
		t.onGap(prev+1, slot-1)
	}
	return true
}

func (t *slotTracker) Last() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}
