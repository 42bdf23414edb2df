package grpc

import (
	"context"
	"fmt"

	"drift-indexer-sol/internal/logic/domain"
	"drift-indexer-sol/internal/logic/progress"
)

type BlockSource interface {
	FetchBlock(ctx context.Context, slot uint64) (*domain.Block, error)
}

// NewRefill 通过 RPC 补拉区块并走同一处理链路，已处理的 slot 直接跳过
func NewRefill(source BlockSource, handler BlockHandler, marker SlotMarker) RefillFunc {
	return func(ctx context.Context, slot uint64) error {
		if marker != nil {
			if status, err := marker.GetSlotStatus(ctx, slot); err == nil && status == progress.SlotProcessed {
				return nil
			}
		}

		block, err := source.FetchBlock(ctx, slot)
		if err != nil {
			return fmt.Errorf("fetch block %d: %w", slot, err)
		}
		if _, err := handler.ProcessBlock(ctx, block); err != nil {
			if marker != nil {
				_ = marker.MarkSlotStatus(ctx, slot, progress.SlotFailed)
			}
			return fmt.Errorf("process block %d: %w", slot, err)
		}
		if marker != nil {
			_ = marker.MarkSlotStatus(ctx, slot, progress.SlotProcessed)
		}
		return nil
	}
}
