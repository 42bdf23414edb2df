package progress

import (
	"slices"
	"sync"
)

// Watermark 跟踪乱序完成的 slot，给出“之前全部完成”的最高 slot。
// 回补时多个 worker 并发处理，只有连续完成的前缀才能写入断点。
type Watermark struct {
	mu      sync.Mutex
	pending []uint64        // 按升序排列的待完成 slot
	done    map[uint64]bool // 已完成但前面仍有未完成的 slot
	mark    uint64
	hasMark bool
}

func NewWatermark(slots []uint64) *Watermark {
	pending := slices.Clone(slots)
	slices.Sort(pending)
	return &Watermark{
		pending: slices.Compact(pending),
		done:    make(map[uint64]bool),
	}
}

// Done 标记 slot 完成；水位前进时返回新水位与 true
func (w *Watermark) Done(slot uint64) (uint64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.done[slot] = true
	advanced := false
	for len(w.pending) > 0 && w.done[w.pending[0]] {
		delete(w.done, w.pending[0])
		w.mark, w.hasMark = w.pending[0], true
		w.pending = w.pending[1:]
		advanced = true
	}
	return w.mark, advanced
}

// Mark 当前水位，尚无完成的前缀时 ok=false
func (w *Watermark) Mark() (uint64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mark, w.hasMark
}

// Pending 尚未推进到的 slot 数
func (w *Watermark) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
