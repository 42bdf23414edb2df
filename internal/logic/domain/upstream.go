package domain

import "encoding/json"

// 上游交易的两种形态：
//   - RawMessage：gRPC / base58 原始形态，账户为下标，v0 交易带地址查找表指令
//   - ParsedMessage：JSON-RPC jsonParsed 形态，账户已展开为地址，部分指令已被节点解析

// UpstreamTx 上游交易
type UpstreamTx struct {
	Signatures []string
	Message    Message
	Meta       *TxMeta
}

// Message 封闭联合：*RawMessage | *ParsedMessage
type Message interface {
	isMessage()
}

// RawMessage 原始消息，Instructions 中的账户均为对 AccountKeys 展开后列表的下标
type RawMessage struct {
	AccountKeys         []string
	Instructions        []*CompiledInstruction
	AddressTableLookups []LookupDirective
}

// ParsedMessage jsonParsed 消息，AccountKeys 已包含地址查找表展开的地址
type ParsedMessage struct {
	AccountKeys  []string
	Instructions []Instruction
}

func (*RawMessage) isMessage()    {}
func (*ParsedMessage) isMessage() {}

// LookupDirective 地址查找表引用：表地址 + 可写 / 只读下标
type LookupDirective struct {
	TableKey        string
	WritableIndexes []uint8
	ReadonlyIndexes []uint8
}

// LoadedAddresses 节点已展开的查找表地址
type LoadedAddresses struct {
	Writable []string
	Readonly []string
}

// Instruction 封闭联合：*CompiledInstruction | *PartiallyDecodedInstruction | *ParsedInstruction
type Instruction interface {
	isInstruction()
}

// CompiledInstruction 程序与账户均以下标表示，Data 为 base58
type CompiledInstruction struct {
	ProgramIDIndex uint32
	Accounts       []uint32
	Data           string
}

// PartiallyDecodedInstruction 节点未识别的程序，账户已展开，Data 为 base58
type PartiallyDecodedInstruction struct {
	ProgramID string
	Accounts  []string
	Data      string
}

// ParsedInstruction 节点已解析的指令（System、SPL Token 等）
type ParsedInstruction struct {
	ProgramID string
	Program   string
	Parsed    json.RawMessage
}

func (*CompiledInstruction) isInstruction()         {}
func (*PartiallyDecodedInstruction) isInstruction() {}
func (*ParsedInstruction) isInstruction()           {}

// TxMeta 执行结果元数据
type TxMeta struct {
	Failed            bool
	LogMessages       []string
	LoadedAddresses   *LoadedAddresses
	InnerInstructions []InnerInstructionSet
}

// InnerInstructionSet 某条顶层指令（Index）触发的全部 CPI 指令，按执行顺序排列
type InnerInstructionSet struct {
	Index        uint32
	Instructions []InnerInstruction
}

// InnerInstruction StackHeight 为 nil 表示节点未提供，按 2 处理
type InnerInstruction struct {
	Instruction Instruction
	StackHeight *uint32
}
