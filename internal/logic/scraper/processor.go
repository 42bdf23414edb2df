package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"drift-indexer-sol/internal/consts"
	"drift-indexer-sol/internal/logic/domain"
	"drift-indexer-sol/internal/logic/extractor"
	"drift-indexer-sol/internal/logic/resolver"
	"drift-indexer-sol/internal/metrics"
	"drift-indexer-sol/internal/pkg/logger"
	"drift-indexer-sol/pkg/utils"
)

// BlockStats 单个区块的处理统计
type BlockStats struct {
	Transactions int
	Skipped      int
	Failed       int
	Records      int
}

type txResult struct {
	records []*DecodedRecord
	skipped bool
	err     error
}

// Processor 区块 → 展平 → 定位 → 解码 → Sink
type Processor struct {
	extractor *extractor.Extractor
	sink      Sink
	source    string // 指标标签：grpc / backfill
	programID string
	workers   int
}

type Option func(*Processor)

func WithProgramID(programID string) Option {
	return func(p *Processor) { p.programID = programID }
}

func WithWorkers(n int) Option {
	return func(p *Processor) { p.workers = n }
}

func NewProcessor(ex *extractor.Extractor, sink Sink, source string, opts ...Option) *Processor {
	p := &Processor{
		extractor: ex,
		sink:      sink,
		source:    source,
		programID: consts.DriftV2ProgramStr,
		workers:   consts.CpuCount + 2,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessBlock 并发处理区块内的交易，单笔交易失败只计数；只有 Sink 失败才返回错误
func (p *Processor) ProcessBlock(ctx context.Context, block *domain.Block) (BlockStats, error) {
	start := time.Now()
	txCtx := block.TxContext()

	results := utils.ParallelMap(block.Transactions, p.workers, func(tx *domain.UpstreamTx) txResult {
		return p.processTx(ctx, txCtx, tx)
	})

	stats := BlockStats{Transactions: len(block.Transactions)}
	var records []*DecodedRecord
	for _, res := range results {
		switch {
		case res.skipped:
			stats.Skipped++
		case res.err != nil:
			stats.Failed++
		default:
			records = append(records, res.records...)
		}
	}
	stats.Records = len(records)

	if len(records) > 0 {
		if err := p.sink.Emit(ctx, records); err != nil {
			return stats, fmt.Errorf("emit slot %d: %w", block.Slot, err)
		}
	}

	metrics.ProcessedBlocks.WithLabelValues(p.source).Inc()
	metrics.LastProcessedSlot.WithLabelValues(p.source).Set(float64(block.Slot))
	logger.Debugf("[Scraper:Block] slot=%d, txs=%d, skipped=%d, failed=%d, records=%d, cost=%v",
		block.Slot, stats.Transactions, stats.Skipped, stats.Failed, stats.Records, time.Since(start))
	return stats, nil
}

func (p *Processor) processTx(ctx context.Context, txCtx domain.TxContext, tx *domain.UpstreamTx) txResult {
	rtx, err := p.extractor.Extract(ctx, txCtx, tx)
	if err != nil {
		if errors.Is(err, extractor.ErrSkippedTransaction) {
			metrics.DroppedTransactions.WithLabelValues(metrics.ReasonSkipped).Inc()
			return txResult{skipped: true}
		}
		reason := metrics.ReasonExtractFailed
		if errors.Is(err, resolver.ErrAccountResolution) {
			reason = metrics.ReasonResolveFailed
		}
		metrics.DroppedTransactions.WithLabelValues(reason).Inc()
		logger.Warnf("[Scraper:Extract] 交易展开失败: %v, slot=%d", err, txCtx.Slot)
		return txResult{err: err}
	}
	return txResult{records: DecodeTransaction(rtx, p.programID)}
}
