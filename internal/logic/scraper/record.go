package scraper

import "drift-indexer-sol/internal/logic/driftv2"

// DecodedRecord 一条成功解码的 Drift v2 指令
type DecodedRecord struct {
	Signature   string              `json:"signature"`
	Slot        uint64              `json:"slot"`
	BlockTime   int64               `json:"blockTime"`
	Position    int                 `json:"position"` // 交易内 Drift 指令的先序遍历序号
	StackHeight uint32              `json:"stackHeight"`
	Name        string              `json:"name"`
	Accounts    []string            `json:"accounts"`
	Args        driftv2.Instruction `json:"args"`
}
