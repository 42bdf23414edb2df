package domain

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ErrStructuredData 指令数据为结构化 JSON，没有原始字节
var ErrStructuredData = errors.New("instruction data is structured json")

// TxContext 交易所属区块的上下文
type TxContext struct {
	Slot      uint64 // 所在 Slot
	BlockTime *int64 // 区块时间戳（Unix 秒），节点未提供时为 nil
}

// DataEncoding 指令 Data 字段的编码方式
type DataEncoding uint8

const (
	DataBase58 DataEncoding = iota // 原始字节的 base58 编码
	DataJSON                       // 上游已解析的结构化 JSON（紧凑形式）
)

func (e DataEncoding) String() string {
	switch e {
	case DataBase58:
		return "base58"
	case DataJSON:
		return "json"
	default:
		return fmt.Sprintf("DataEncoding(%d)", uint8(e))
	}
}

func (e DataEncoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// ReadonlyTransaction 展平后的交易，账户均为 base58 地址
type ReadonlyTransaction struct {
	Signature    string                 `json:"signature"`
	Slot         uint64                 `json:"slot"`
	BlockTime    int64                  `json:"blockTime"`
	LogMessages  []string               `json:"logMessages"`
	Accounts     []string               `json:"accounts"` // 完整账户表：静态 + 地址查找表展开
	Instructions []*ReadonlyInstruction `json:"instructions"`
}

// ReadonlyInstruction 一条指令及其 CPI 子指令树
type ReadonlyInstruction struct {
	ProgramID         string                 `json:"programId"`
	Data              string                 `json:"data"`
	Encoding          DataEncoding           `json:"encoding"`
	Accounts          []string               `json:"accounts"`
	StackHeight       uint32                 `json:"stackHeight"` // 顶层指令为 1
	InnerInstructions []*ReadonlyInstruction `json:"innerInstructions,omitempty"`
}

// RawData 返回指令原始字节，结构化 JSON 指令返回 ErrStructuredData
func (ix *ReadonlyInstruction) RawData() ([]byte, error) {
	if ix.Encoding == DataJSON {
		return nil, ErrStructuredData
	}
	// 空串合法，base58 库对其报错
	if ix.Data == "" {
		return []byte{}, nil
	}
	data, err := base58.Decode(ix.Data)
	if err != nil {
		return nil, fmt.Errorf("decode base58 instruction data: %w", err)
	}
	return data, nil
}
