package backfill

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"drift-indexer-sol/internal/logic/domain"
	"drift-indexer-sol/internal/logic/progress"
	"drift-indexer-sol/internal/logic/scraper"
	"drift-indexer-sol/internal/pkg/logger"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 8

type SlotLister interface {
	List(ctx context.Context, from, to uint64) ([]uint64, error)
}

type BlockSource interface {
	FetchBlock(ctx context.Context, slot uint64) (*domain.Block, error)
}

type BlockHandler interface {
	ProcessBlock(ctx context.Context, block *domain.Block) (scraper.BlockStats, error)
}

// ProgressStore *progress.RedisProgressStore 满足该接口
type ProgressStore interface {
	GetSlotStatus(ctx context.Context, slot uint64) (progress.SlotStatus, error)
	MarkSlotStatus(ctx context.Context, slot uint64, status progress.SlotStatus) error
	LoadCheckpoint(ctx context.Context, name string) (uint64, bool, error)
	SaveCheckpoint(ctx context.Context, name string, slot uint64) error
}

// Summary 一次回补的结果
type Summary struct {
	From        uint64
	To          uint64
	Listed      int // getBlocks 返回的区块数
	Processed   int
	AlreadyDone int // 其它链路已处理
	Unavailable int
	Failed      int
	Records     int
}

type Runner struct {
	lister     SlotLister
	source     BlockSource
	handler    BlockHandler
	store      ProgressStore // 可为 nil，此时不记录进度
	checkpoint string
	workers    int
	barOutput  io.Writer // nil 时不显示进度条
}

type Option func(*Runner)

func WithProgressStore(store ProgressStore, checkpoint string) Option {
	return func(r *Runner) {
		r.store = store
		r.checkpoint = checkpoint
	}
}

func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

func WithProgressBar(w io.Writer) Option {
	return func(r *Runner) { r.barOutput = w }
}

func NewRunner(lister SlotLister, source BlockSource, handler BlockHandler, opts ...Option) *Runner {
	r := &Runner{
		lister:  lister,
		source:  source,
		handler: handler,
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = defaultWorkers
	}
	return r
}

// Run 回补 [from, to]：
//  1. 有断点时从断点之后继续
//  2. getBlocks 列出实际出块的 slot
//  3. worker 并发拉取并处理，已被标记 processed 的 slot 跳过
//  4. 连续完成的前缀推进断点
//
// 单个区块拉取失败只记为 failed，断点停在它之前；Sink 失败会中止整个回补。
func (r *Runner) Run(ctx context.Context, from, to uint64) (Summary, error) {
	summary := Summary{From: from, To: to}
	if from > to {
		return summary, fmt.Errorf("invalid backfill range [%d, %d]", from, to)
	}

	if r.store != nil {
		cp, ok, err := r.store.LoadCheckpoint(ctx, r.checkpoint)
		if err != nil {
			return summary, fmt.Errorf("load checkpoint: %w", err)
		}
		if ok && cp >= from {
			logger.Infof("[Backfill:Run] 从断点继续: checkpoint=%d, from=%d", cp, from)
			if cp >= to {
				return summary, nil
			}
			from = cp + 1
			summary.From = from
		}
	}

	start := time.Now()
	slotList, err := r.lister.List(ctx, from, to)
	if err != nil {
		return summary, fmt.Errorf("list slots: %w", err)
	}
	summary.Listed = len(slotList)
	logger.Infof("[Backfill:Run] 开始回补: range=[%d, %d], blocks=%d, workers=%d", from, to, len(slotList), r.workers)

	bar := r.newBar(len(slotList))
	mark := progress.NewWatermark(slotList)
	counter := newSummaryCounter()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, slot := range slotList {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcome, err := r.processSlot(gctx, slot)
			if err != nil {
				return err
			}
			counter.add(outcome)
			if outcome.status != progress.SlotFailed {
				if high, advanced := mark.Done(slot); advanced {
					r.saveCheckpoint(gctx, high)
				}
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()
	counter.fill(&summary)

	if bar != nil {
		_ = bar.Finish()
	}
	// 区间尾部没有区块时断点直接推到 to
	if err == nil && mark.Pending() == 0 {
		r.saveCheckpoint(ctx, to)
	}

	logger.Infof("[Backfill:Run] 回补结束: range=[%d, %d], processed=%d, done=%d, unavailable=%d, failed=%d, records=%d, cost=%v",
		summary.From, summary.To, summary.Processed, summary.AlreadyDone, summary.Unavailable, summary.Failed, summary.Records, time.Since(start))
	if err != nil {
		return summary, err
	}
	if ctx.Err() != nil {
		return summary, ctx.Err()
	}
	return summary, nil
}

type slotOutcome struct {
	status      progress.SlotStatus
	alreadyDone bool
	unavailable bool
	records     int
}

func (r *Runner) processSlot(ctx context.Context, slot uint64) (slotOutcome, error) {
	if r.store != nil {
		status, err := r.store.GetSlotStatus(ctx, slot)
		if err != nil {
			logger.Warnf("[Backfill:Slot] 读取 slot 状态失败: %v", err)
		} else if status == progress.SlotProcessed {
			return slotOutcome{status: progress.SlotProcessed, alreadyDone: true}, nil
		}
	}

	block, err := r.source.FetchBlock(ctx, slot)
	switch {
	case errors.Is(err, ErrBlockNotAvailable):
		logger.Debugf("[Backfill:Slot] 区块不可用: %v", err)
		return slotOutcome{status: progress.SlotProcessed, unavailable: true}, nil
	case err != nil:
		if ctx.Err() != nil {
			return slotOutcome{}, ctx.Err()
		}
		logger.Errorf("[Backfill:Slot] 拉取区块失败: %v", err)
		r.markSlot(ctx, slot, progress.SlotFailed)
		return slotOutcome{status: progress.SlotFailed}, nil
	}

	stats, err := r.handler.ProcessBlock(ctx, block)
	if err != nil {
		r.markSlot(ctx, slot, progress.SlotFailed)
		return slotOutcome{}, fmt.Errorf("process slot %d: %w", slot, err)
	}
	r.markSlot(ctx, slot, progress.SlotProcessed)
	return slotOutcome{status: progress.SlotProcessed, records: stats.Records}, nil
}

func (r *Runner) markSlot(ctx context.Context, slot uint64, status progress.SlotStatus) {
	if r.store == nil {
		return
	}
	if err := r.store.MarkSlotStatus(ctx, slot, status); err != nil {
		logger.Warnf("[Backfill:Slot] 写入 slot 状态失败: %v, slot=%d, status=%s", err, slot, status)
	}
}

func (r *Runner) saveCheckpoint(ctx context.Context, slot uint64) {
	if r.store == nil {
		return
	}
	if err := r.store.SaveCheckpoint(ctx, r.checkpoint, slot); err != nil {
		logger.Warnf("[Backfill:Checkpoint] 保存断点失败: %v, slot=%d", err, slot)
	}
}

func (r *Runner) newBar(total int) *progressbar.ProgressBar {
	if r.barOutput == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions64(
		int64(total),
		progressbar.OptionSetWriter(r.barOutput),
		progressbar.OptionSetDescription("Backfilling blocks..."),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
