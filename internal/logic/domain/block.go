package domain

// Block 一个区块内待处理的交易，gRPC 与 JSON-RPC 两条链路都转换为该结构
type Block struct {
	Slot         uint64
	ParentSlot   uint64
	BlockTime    *int64
	Transactions []*UpstreamTx
}

func (b *Block) TxContext() TxContext {
	return TxContext{Slot: b.Slot, BlockTime: b.BlockTime}
}
