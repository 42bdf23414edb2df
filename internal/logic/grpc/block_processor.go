package grpc

import (
	"context"
	"errors"
	"time"

	"drift-indexer-sol/internal/logic/domain"
	"drift-indexer-sol/internal/logic/progress"
	"drift-indexer-sol/internal/logic/scraper"
	"drift-indexer-sol/internal/logic/txadapter"
	"drift-indexer-sol/internal/metrics"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/logx"
)

type BlockHandler interface {
	ProcessBlock(ctx context.Context, block *domain.Block) (scraper.BlockStats, error)
}

// SlotMarker *progress.RedisProgressStore 满足该接口
type SlotMarker interface {
	GetSlotStatus(ctx context.Context, slot uint64) (progress.SlotStatus, error)
	MarkSlotStatus(ctx context.Context, slot uint64, status progress.SlotStatus) error
}

type BlockProcessor struct {
	handler   BlockHandler
	marker    SlotMarker                    // 可为 nil
	blockChan chan *pb.SubscribeUpdateBlock // 接收 block 的 channel
	ctx       context.Context
	cancel    func(err error)
	logx.Logger
}

func NewBlockProcessor(handler BlockHandler, marker SlotMarker, blockChan chan *pb.SubscribeUpdateBlock) *BlockProcessor {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &BlockProcessor{
		handler:   handler,
		marker:    marker,
		blockChan: blockChan,
		Logger:    logx.WithContext(ctx).WithFields(logx.Field("service", "block_processor")),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (p *BlockProcessor) Start() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case block := <-p.blockChan:
			if block == nil {
				continue
			}
			if err := p.procBlock(p.ctx, block); err != nil {
				p.Errorf("区块处理失败: %v, slot: %d", err, block.Slot)
			}
			if len(p.blockChan) > 10 {
				p.Debugf("block chan len:%v", len(p.blockChan))
			}
		}
	}
}

func (p *BlockProcessor) Stop() {
	p.cancel(errors.New("service stop"))
}

func (p *BlockProcessor) procBlock(ctx context.Context, raw *pb.SubscribeUpdateBlock) error {
	startTime := time.Now()

	if p.marker != nil {
		status, err := p.marker.GetSlotStatus(ctx, raw.Slot)
		if err != nil {
			p.Infof("读取 slot 状态失败: %v, slot: %d", err, raw.Slot)
		} else if status == progress.SlotProcessed {
			p.Debugf("slot %d 已处理, 跳过", raw.Slot)
			return nil
		}
	}

	block, dropped := txadapter.AdaptGrpcBlock(raw)
	for _, err := range dropped {
		metrics.DroppedTransactions.WithLabelValues(metrics.ReasonAdaptFailed).Inc()
		p.Infof("交易转换失败: %v, slot: %d", err, raw.Slot)
	}

	stats, err := p.handler.ProcessBlock(ctx, block)
	if err != nil {
		p.mark(ctx, raw.Slot, progress.SlotFailed)
		return err
	}
	p.mark(ctx, raw.Slot, progress.SlotProcessed)

	p.Infof("区块处理耗时: %v, slot: %d, txs: %d, records: %d", time.Since(startTime), raw.Slot, stats.Transactions, stats.Records)
	return nil
}

func (p *BlockProcessor) mark(ctx context.Context, slot uint64, status progress.SlotStatus) {
	if p.marker == nil {
		return
	}
	if err := p.marker.MarkSlotStatus(ctx, slot, status); err != nil {
		p.Infof("写入 slot 状态失败: %v, slot: %d, status: %s", err, slot, status)
	}
}
