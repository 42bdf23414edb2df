package txadapter

import (
	"bytes"
	"encoding/json"

	"drift-indexer-sol/internal/logic/domain"
)

// RpcBlock getBlock(encoding=jsonParsed, transactionDetails=full) 的返回结构，只保留用到的字段
type RpcBlock struct {
	Blockhash    string           `json:"blockhash"`
	ParentSlot   uint64           `json:"parentSlot"`
	BlockTime    *int64           `json:"blockTime"`
	BlockHeight  *uint64          `json:"blockHeight"`
	Transactions []RpcTransaction `json:"transactions"`
}

type RpcTransaction struct {
	Transaction struct {
		Signatures []string   `json:"signatures"`
		Message    rpcMessage `json:"message"`
	} `json:"transaction"`
	Meta *rpcMeta `json:"meta"`
}

type rpcMessage struct {
	AccountKeys  []rpcAccountKey  `json:"accountKeys"`
	Instructions []rpcInstruction `json:"instructions"`
}

// rpcAccountKey jsonParsed 下账户以对象形式给出，source 为 transaction 或 lookupTable
type rpcAccountKey struct {
	Pubkey   string `json:"pubkey"`
	Signer   bool   `json:"signer"`
	Writable bool   `json:"writable"`
	Source   string `json:"source"`
}

// rpcInstruction 节点已解析时带 parsed/program，否则带 accounts/data
type rpcInstruction struct {
	ProgramID   string          `json:"programId"`
	Program     string          `json:"program"`
	Parsed      json.RawMessage `json:"parsed"`
	Accounts    []string        `json:"accounts"`
	Data        string          `json:"data"`
	StackHeight *uint32         `json:"stackHeight"`
}

type rpcMeta struct {
	Err               json.RawMessage       `json:"err"`
	LogMessages       []string              `json:"logMessages"`
	InnerInstructions []rpcInnerInstruction `json:"innerInstructions"`
}

type rpcInnerInstruction struct {
	Index        uint32           `json:"index"`
	Instructions []rpcInstruction `json:"instructions"`
}

var jsonNull = []byte("null")

// AdaptRpcBlock 转换 JSON-RPC 区块，slot 由调用方传入（返回体不含 slot）
func AdaptRpcBlock(slot uint64, block *RpcBlock) *domain.Block {
	out := &domain.Block{
		Slot:         slot,
		ParentSlot:   block.ParentSlot,
		BlockTime:    block.BlockTime,
		Transactions: make([]*domain.UpstreamTx, len(block.Transactions)),
	}
	for i := range block.Transactions {
		out.Transactions[i] = AdaptRpcTx(&block.Transactions[i])
	}
	return out
}

// AdaptRpcTx 转换为 jsonParsed 形态的 UpstreamTx，账户表已含查找表展开地址
func AdaptRpcTx(tx *RpcTransaction) *domain.UpstreamTx {
	msg := tx.Transaction.Message

	parsed := &domain.ParsedMessage{
		AccountKeys:  make([]string, len(msg.AccountKeys)),
		Instructions: make([]domain.Instruction, len(msg.Instructions)),
	}
	for i, k := range msg.AccountKeys {
		parsed.AccountKeys[i] = k.Pubkey
	}
	for i := range msg.Instructions {
		parsed.Instructions[i] = rpcInstructionToDomain(&msg.Instructions[i])
	}

	return &domain.UpstreamTx{
		Signatures: tx.Transaction.Signatures,
		Message:    parsed,
		Meta:       adaptRpcMeta(tx.Meta),
	}
}

func adaptRpcMeta(m *rpcMeta) *domain.TxMeta {
	if m == nil {
		return nil
	}
	meta := &domain.TxMeta{
		Failed:      len(m.Err) > 0 && !bytes.Equal(m.Err, jsonNull),
		LogMessages: m.LogMessages,
	}
	if len(m.InnerInstructions) > 0 {
		meta.InnerInstructions = make([]domain.InnerInstructionSet, len(m.InnerInstructions))
		for i, set := range m.InnerInstructions {
			inners := make([]domain.InnerInstruction, len(set.Instructions))
			for j := range set.Instructions {
				ix := &set.Instructions[j]
				inners[j] = domain.InnerInstruction{
					Instruction: rpcInstructionToDomain(ix),
					StackHeight: ix.StackHeight,
				}
			}
			meta.InnerInstructions[i] = domain.InnerInstructionSet{Index: set.Index, Instructions: inners}
		}
	}
	return meta
}

func rpcInstructionToDomain(ix *rpcInstruction) domain.Instruction {
	if len(ix.Parsed) > 0 && !bytes.Equal(ix.Parsed, jsonNull) {
		return &domain.ParsedInstruction{
			ProgramID: ix.ProgramID,
			Program:   ix.Program,
			Parsed:    ix.Parsed,
		}
	}
	accounts := ix.Accounts
	if accounts == nil {
		accounts = []string{}
	}
	return &domain.PartiallyDecodedInstruction{
		ProgramID: ix.ProgramID,
		Accounts:  accounts,
		Data:      ix.Data,
	}
}
