package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"drift-indexer-sol/internal/logic/domain"
)

const topLevelStackHeight = 1

// KeyResolver 展开原始消息的完整账户表
type KeyResolver interface {
	Resolve(ctx context.Context, static []string, loaded *domain.LoadedAddresses, directives []domain.LookupDirective) ([]string, error)
}

// Extractor 将上游交易展平为 ReadonlyTransaction，无内部状态，可并发调用
type Extractor struct {
	resolver KeyResolver
}

func NewExtractor(resolver KeyResolver) *Extractor {
	return &Extractor{resolver: resolver}
}

// Extract 处理流程：
//  1. 执行失败或缺少区块时间的交易直接返回 ErrSkippedTransaction
//  2. 取 Signatures[0] 作为交易签名
//  3. 构建完整账户表（原始形态需展开地址查找表）
//  4. 转换顶层指令
//  5. 按 stackHeight 挂载 inner 指令
func (e *Extractor) Extract(ctx context.Context, txCtx domain.TxContext, tx *domain.UpstreamTx) (_ *domain.ReadonlyTransaction, err error) {
	if tx == nil {
		return nil, fmt.Errorf("%w: nil transaction", ErrUnsupportedMessage)
	}
	if (tx.Meta != nil && tx.Meta.Failed) || txCtx.BlockTime == nil {
		return nil, ErrSkippedTransaction
	}
	if len(tx.Signatures) == 0 {
		return nil, ErrMissingSignature
	}
	signature := tx.Signatures[0]

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract panic: %v, tx=%s", r, signature)
		}
	}()

	var (
		accounts []string
		topLevel []*domain.ReadonlyInstruction
	)
	switch msg := tx.Message.(type) {
	case *domain.RawMessage:
		var loaded *domain.LoadedAddresses
		if tx.Meta != nil {
			loaded = tx.Meta.LoadedAddresses
		}
		accounts, err = e.resolver.Resolve(ctx, msg.AccountKeys, loaded, msg.AddressTableLookups)
		if err != nil {
			return nil, fmt.Errorf("resolve accounts, tx=%s: %w", signature, err)
		}
		topLevel = make([]*domain.ReadonlyInstruction, len(msg.Instructions))
		for i, ix := range msg.Instructions {
			if topLevel[i], err = convertInstruction(ix, accounts, topLevelStackHeight); err != nil {
				return nil, fmt.Errorf("instruction %d, tx=%s: %w", i, signature, err)
			}
		}
	case *domain.ParsedMessage:
		accounts = msg.AccountKeys
		topLevel = make([]*domain.ReadonlyInstruction, len(msg.Instructions))
		for i, ix := range msg.Instructions {
			if topLevel[i], err = convertInstruction(ix, accounts, topLevelStackHeight); err != nil {
				return nil, fmt.Errorf("instruction %d, tx=%s: %w", i, signature, err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %T, tx=%s", ErrUnsupportedMessage, tx.Message, signature)
	}

	logMessages := []string{}
	if tx.Meta != nil {
		if err := attachInnerInstructions(topLevel, tx.Meta.InnerInstructions, accounts); err != nil {
			return nil, fmt.Errorf("tx=%s: %w", signature, err)
		}
		if tx.Meta.LogMessages != nil {
			logMessages = append(logMessages, tx.Meta.LogMessages...)
		}
	}

	return &domain.ReadonlyTransaction{
		Signature:    signature,
		Slot:         txCtx.Slot,
		BlockTime:    *txCtx.BlockTime,
		LogMessages:  logMessages,
		Accounts:     accounts,
		Instructions: topLevel,
	}, nil
}

// attachInnerInstructions 将每组 inner 指令挂到对应顶层指令下。
// stackHeight 为 2（或缺失）时作为顶层指令的直接子节点；
// h > 2 时沿最后一个子节点向下 h-2 层再追加，中间层缺失视为错误。
func attachInnerInstructions(topLevel []*domain.ReadonlyInstruction, sets []domain.InnerInstructionSet, accounts []string) error {
	for _, set := range sets {
		if int(set.Index) >= len(topLevel) {
			return fmt.Errorf("%w: index %d, top-level count %d", ErrInnerInstructionIndex, set.Index, len(topLevel))
		}
		root := topLevel[set.Index]

		for i, inner := range set.Instructions {
			height := uint32(topLevelStackHeight + 1)
			if inner.StackHeight != nil {
				height = *inner.StackHeight
			}
			if height <= topLevelStackHeight {
				return fmt.Errorf("%w: set %d inner %d has height %d", ErrInvalidStackHeight, set.Index, i, height)
			}

			parent := root
			for depth := uint32(topLevelStackHeight + 1); depth < height; depth++ {
				n := len(parent.InnerInstructions)
				if n == 0 {
					return fmt.Errorf("%w: set %d inner %d has height %d but ancestor at height %d is missing",
						ErrInvalidStackHeight, set.Index, i, height, depth)
				}
				parent = parent.InnerInstructions[n-1]
			}

			node, err := convertInstruction(inner.Instruction, accounts, height)
			if err != nil {
				return fmt.Errorf("set %d inner %d: %w", set.Index, i, err)
			}
			parent.InnerInstructions = append(parent.InnerInstructions, node)
		}
	}
	return nil
}

// convertInstruction 将三种上游指令形态统一为 ReadonlyInstruction
func convertInstruction(ix domain.Instruction, accounts []string, height uint32) (*domain.ReadonlyInstruction, error) {
	switch v := ix.(type) {
	case *domain.CompiledInstruction:
		if int(v.ProgramIDIndex) >= len(accounts) {
			return nil, fmt.Errorf("%w: program index %d, account count %d", ErrAccountIndexOutOfRange, v.ProgramIDIndex, len(accounts))
		}
		accs := make([]string, len(v.Accounts))
		for i, idx := range v.Accounts {
			if int(idx) >= len(accounts) {
				return nil, fmt.Errorf("%w: account index %d, account count %d", ErrAccountIndexOutOfRange, idx, len(accounts))
			}
			accs[i] = accounts[idx]
		}
		return &domain.ReadonlyInstruction{
			ProgramID:   accounts[v.ProgramIDIndex],
			Data:        v.Data,
			Encoding:    domain.DataBase58,
			Accounts:    accs,
			StackHeight: height,
		}, nil

	case *domain.PartiallyDecodedInstruction:
		accs := make([]string, len(v.Accounts))
		copy(accs, v.Accounts)
		return &domain.ReadonlyInstruction{
			ProgramID:   v.ProgramID,
			Data:        v.Data,
			Encoding:    domain.DataBase58,
			Accounts:    accs,
			StackHeight: height,
		}, nil

	case *domain.ParsedInstruction:
		var buf bytes.Buffer
		if len(v.Parsed) > 0 {
			if err := json.Compact(&buf, v.Parsed); err != nil {
				return nil, fmt.Errorf("compact parsed instruction of %s: %w", v.ProgramID, err)
			}
		} else {
			buf.WriteString("null")
		}
		return &domain.ReadonlyInstruction{
			ProgramID:   v.ProgramID,
			Data:        buf.String(),
			Encoding:    domain.DataJSON,
			Accounts:    []string{},
			StackHeight: height,
		}, nil

	default:
		return nil, fmt.Errorf("%w: instruction %T", ErrUnsupportedMessage, ix)
	}
}
