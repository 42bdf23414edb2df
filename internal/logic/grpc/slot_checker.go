package grpc

import (
	"context"
	"time"

	"drift-indexer-sol/internal/logic/slots"
	"drift-indexer-sol/internal/metrics"
	"drift-indexer-sol/internal/pkg/logger"
)

type RangeLister interface {
	ListRange(ctx context.Context, r slots.Range) ([]uint64, error)
}

// RefillFunc 补拉并处理单个漏掉的区块
type RefillFunc func(ctx context.Context, slot uint64) error

type pendingRange struct {
	slots.Range
	SubmitAt time.Time
}

const (
	maxPendingRanges = 200
	checkInterval    = 10 * time.Second
)

// SlotChecker 检查流中跳过的 slot：真正的空 slot 只记录，节点上存在的区块交给 refill 补处理
type SlotChecker struct {
	lister  RangeLister
	refill  RefillFunc
	delay   time.Duration
	rangeCh chan pendingRange
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewSlotChecker(lister RangeLister, refill RefillFunc, delay time.Duration) *SlotChecker {
	ctx, cancel := context.WithCancel(context.Background())
	return &SlotChecker{
		lister:  lister,
		refill:  refill,
		delay:   delay,
		rangeCh: make(chan pendingRange, 300),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *SlotChecker) Start() {
	s.run()
}

func (s *SlotChecker) Stop() {
	s.cancel()
}

// Submit 提交一个 slot 范围，闭区间 [from, to]
func (s *SlotChecker) Submit(from, to uint64) {
	if from > to {
		logger.Warnf("[SlotChecker:Submit] 非法区间: from=%d, to=%d", from, to)
		return
	}

	r := pendingRange{Range: slots.Range{From: from, To: to}, SubmitAt: time.Now()}
	select {
	case s.rangeCh <- r:
	default:
		logger.Warnf("[SlotChecker:Submit] 队列已满, 丢弃区间: [%d, %d]", from, to)
		metrics.GapSlots.WithLabelValues(metrics.GapFailed).Add(float64(r.Len()))
	}
}

func (s *SlotChecker) run() {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	var ranges []pendingRange
	for {
		select {
		case <-s.ctx.Done():
			logger.Infof("[SlotChecker] stopped")
			return

		case r := <-s.rangeCh:
			if len(ranges) >= maxPendingRanges {
				logger.Warnf("[SlotChecker:Run] 待检查区间过多(%d), 丢弃 [%d, %d]", len(ranges), r.From, r.To)
				metrics.GapSlots.WithLabelValues(metrics.GapFailed).Add(float64(r.Len()))
				continue
			}
			ranges = append(ranges, r)

		case now := <-ticker.C:
			drainTicker(ticker)
			var ready []slots.Range
			ready, ranges = splitReady(ranges, now, s.delay)
			if len(ready) > 0 {
				// 串行执行，防止 goroutine 累积
				s.checkSlotRanges(s.ctx, ready)
			}
		}
	}
}

// splitReady 按提交时间划分已到期与未到期的区间
func splitReady(ranges []pendingRange, now time.Time, delay time.Duration) (ready []slots.Range, pending []pendingRange) {
	for _, r := range ranges {
		if now.Sub(r.SubmitAt) >= delay {
			ready = append(ready, r.Range)
		} else {
			pending = append(pending, r)
		}
	}
	return ready, pending
}

func drainTicker(t *time.Ticker) {
	for {
		select {
		case <-t.C:
		default:
			return
		}
	}
}

// gapResult 一轮检查的计数
type gapResult struct {
	Empty    int
	Refilled int
	Failed   int
}

func (s *SlotChecker) checkSlotRanges(ctx context.Context, ranges []slots.Range) gapResult {
	var res gapResult
	for _, r := range slots.Merge(ranges) {
		if ctx.Err() != nil {
			logger.Infof("[SlotChecker:Check] 已停止, 未检查区间 [%d, %d]", r.From, r.To)
			break
		}

		produced, err := s.lister.ListRange(ctx, r)
		if err != nil {
			logger.Warnf("[SlotChecker:Check] getBlocks 失败: %v, range=[%d, %d]", err, r.From, r.To)
			res.Failed += int(r.Len())
			continue
		}

		empty := slots.Missing(r.From, r.To, produced)
		res.Empty += len(empty)

		for _, slot := range produced {
			if slot < r.From || slot > r.To {
				continue
			}
			if err := s.refill(ctx, slot); err != nil {
				logger.Errorf("[SlotChecker:Refill] 补处理失败: %v, slot=%d", err, slot)
				res.Failed++
				continue
			}
			logger.Infof("[SlotChecker:Refill] 已补处理漏掉的区块, slot=%d", slot)
			res.Refilled++
		}
	}

	metrics.GapSlots.WithLabelValues(metrics.GapEmpty).Add(float64(res.Empty))
	metrics.GapSlots.WithLabelValues(metrics.GapRefilled).Add(float64(res.Refilled))
	metrics.GapSlots.WithLabelValues(metrics.GapFailed).Add(float64(res.Failed))
	return res
}
