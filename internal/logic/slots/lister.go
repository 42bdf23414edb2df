package slots

import (
	"context"
	"fmt"
	"time"

	"drift-indexer-sol/internal/pkg/logger"
	"drift-indexer-sol/internal/pkg/retry"

	"github.com/blocto/solana-go-sdk/rpc"
)

// Lister 通过 getBlocks 列出区间内产出了区块的 slot
type Lister struct {
	client  rpc.RpcClient
	retrier *retry.Retrier
	timeout time.Duration
}

func NewLister(endpoint string, timeout time.Duration, retrier *retry.Retrier) *Lister {
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	if retrier == nil {
		retrier = retry.New(retry.WithDelay(300 * time.Millisecond))
	}
	return &Lister{
		client:  rpc.NewRpcClient(endpoint),
		retrier: retrier,
		timeout: timeout,
	}
}

// List 返回 [from, to] 内的全部区块 slot（升序），区间超过 MaxRangeSize 时分段查询
func (l *Lister) List(ctx context.Context, from, to uint64) ([]uint64, error) {
	var all []uint64
	for _, r := range Split(from, to) {
		blocks, err := l.ListRange(ctx, r)
		if err != nil {
			return nil, err
		}
		all = append(all, blocks...)
	}
	return all, nil
}

// ListRange 单段查询，r 的跨度不得超过 MaxRangeSize
func (l *Lister) ListRange(ctx context.Context, r Range) (_ []uint64, err error) {
	if r.From > r.To || r.Len() > MaxRangeSize {
		return nil, fmt.Errorf("invalid slot range [%d, %d]", r.From, r.To)
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("getBlocks [%d, %d] panic: %v", r.From, r.To, p)
		}
	}()

	var blocks []uint64
	err = l.retrier.Execute(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, l.timeout)
		defer cancel()

		res, err := l.client.GetBlocks(callCtx, r.From, r.To)
		if err != nil {
			return err
		}
		blocks = res.Result
		return nil
	})
	if err != nil {
		logger.Warnf("[Slots:List] getBlocks 失败: %v, range=[%d, %d]", err, r.From, r.To)
		return nil, fmt.Errorf("getBlocks [%d, %d]: %w", r.From, r.To, err)
	}
	return blocks, nil
}
