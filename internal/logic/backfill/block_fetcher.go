package backfill

import (
	"context"
	"errors"
	"fmt"

	"drift-indexer-sol/internal/logic/domain"
	"drift-indexer-sol/internal/logic/txadapter"
	"drift-indexer-sol/internal/pkg/jsonrpc"
)

// ErrBlockNotAvailable slot 被跳过或节点已清理该区块
var ErrBlockNotAvailable = errors.New("block not available")

// 节点对“没有区块”的几种返回码
var notAvailableCodes = map[int]bool{
	-32004: true, // block not available for slot
	-32007: true, // slot skipped or missing due to ledger jump
	-32009: true, // slot skipped or missing in long-term storage
}

var getBlockConfig = map[string]any{
	"encoding":                       "jsonParsed",
	"maxSupportedTransactionVersion": 0,
	"transactionDetails":             "full",
	"rewards":                        false,
	"commitment":                     "confirmed",
}

// BlockFetcher 通过 getBlock(jsonParsed) 拉取区块并转换为 domain.Block
type BlockFetcher struct {
	client *jsonrpc.Client
}

func NewBlockFetcher(client *jsonrpc.Client) *BlockFetcher {
	return &BlockFetcher{client: client}
}

func (f *BlockFetcher) FetchBlock(ctx context.Context, slot uint64) (*domain.Block, error) {
	var block *txadapter.RpcBlock
	if err := f.client.CallResult(ctx, &block, "getBlock", slot, getBlockConfig); err != nil {
		var pe *jsonrpc.ProviderError
		if errors.As(err, &pe) && notAvailableCodes[pe.Code] {
			return nil, fmt.Errorf("%w: slot=%d: %s", ErrBlockNotAvailable, slot, pe.Message)
		}
		return nil, fmt.Errorf("getBlock slot=%d: %w", slot, err)
	}
	if block == nil {
		return nil, fmt.Errorf("%w: slot=%d: null result", ErrBlockNotAvailable, slot)
	}
	return txadapter.AdaptRpcBlock(slot, block), nil
}
