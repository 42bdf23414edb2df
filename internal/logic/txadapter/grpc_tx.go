package txadapter

import (
	"errors"
	"fmt"

	"drift-indexer-sol/internal/logic/domain"
	"drift-indexer-sol/internal/types"

	"github.com/mr-tron/base58"
	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
)

var ErrInvalidGrpcTx = errors.New("invalid grpc transaction")

// ValidateGrpcTx 只检查结构完整性；执行失败的交易照常转换，由 extractor 跳过
func ValidateGrpcTx(tx *pb.SubscribeUpdateTransactionInfo) error {
	switch {
	case tx == nil:
		return fmt.Errorf("%w: nil transaction info", ErrInvalidGrpcTx)
	case tx.Transaction == nil:
		return fmt.Errorf("%w: missing Transaction field", ErrInvalidGrpcTx)
	case tx.Transaction.Message == nil:
		return fmt.Errorf("%w: missing Message field", ErrInvalidGrpcTx)
	case tx.Meta == nil:
		return fmt.Errorf("%w: missing meta", ErrInvalidGrpcTx)
	}
	for i, sig := range tx.Transaction.Signatures {
		if len(sig) != types.SignatureSize {
			return fmt.Errorf("%w: signature %d length %d", ErrInvalidGrpcTx, i, len(sig))
		}
	}
	return nil
}

// AdaptGrpcBlock 转换整个区块，vote 交易与结构不完整的交易被丢弃并计入 dropped
func AdaptGrpcBlock(block *pb.SubscribeUpdateBlock) (_ *domain.Block, dropped []error) {
	out := &domain.Block{
		Slot:         block.Slot,
		ParentSlot:   block.ParentSlot,
		Transactions: make([]*domain.UpstreamTx, 0, len(block.Transactions)),
	}
	if block.BlockTime != nil {
		ts := block.BlockTime.Timestamp
		out.BlockTime = &ts
	}

	for _, tx := range block.Transactions {
		if tx != nil && tx.IsVote {
			continue
		}
		adapted, err := AdaptGrpcTx(tx)
		if err != nil {
			dropped = append(dropped, err)
			continue
		}
		out.Transactions = append(out.Transactions, adapted)
	}
	return out, dropped
}

// AdaptGrpcTx 将 gRPC 推送的交易转换为原始形态的 UpstreamTx。
// 账户、签名与指令数据统一转为 base58。
// 节点已给出查找表展开地址时不再携带 AddressTableLookups，避免重复解析。
func AdaptGrpcTx(tx *pb.SubscribeUpdateTransactionInfo) (_ *domain.UpstreamTx, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("AdaptGrpcTx panic: %v", r)
		}
	}()

	if err := ValidateGrpcTx(tx); err != nil {
		return nil, err
	}
	msg := tx.Transaction.Message

	signatures := make([]string, len(tx.Transaction.Signatures))
	for i, sig := range tx.Transaction.Signatures {
		signatures[i] = base58.Encode(sig)
	}

	accountKeys, err := types.EncodePubkeys(msg.AccountKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: account keys: %v", ErrInvalidGrpcTx, err)
	}

	meta, err := adaptGrpcMeta(tx.Meta)
	if err != nil {
		return nil, err
	}

	raw := &domain.RawMessage{
		AccountKeys:  accountKeys,
		Instructions: make([]*domain.CompiledInstruction, len(msg.Instructions)),
	}
	for i, ix := range msg.Instructions {
		raw.Instructions[i] = compiledInstruction(ix.ProgramIdIndex, ix.Accounts, ix.Data)
	}
	if meta.LoadedAddresses == nil {
		raw.AddressTableLookups, err = lookupDirectives(msg.AddressTableLookups)
		if err != nil {
			return nil, err
		}
	}

	return &domain.UpstreamTx{
		Signatures: signatures,
		Message:    raw,
		Meta:       meta,
	}, nil
}

func adaptGrpcMeta(m *pb.TransactionStatusMeta) (*domain.TxMeta, error) {
	meta := &domain.TxMeta{
		Failed: m.Err != nil,
	}
	if !m.LogMessagesNone {
		meta.LogMessages = m.LogMessages
	}

	if len(m.LoadedWritableAddresses)+len(m.LoadedReadonlyAddresses) > 0 {
		writable, err := types.EncodePubkeys(m.LoadedWritableAddresses)
		if err != nil {
			return nil, fmt.Errorf("%w: loaded writable: %v", ErrInvalidGrpcTx, err)
		}
		readonly, err := types.EncodePubkeys(m.LoadedReadonlyAddresses)
		if err != nil {
			return nil, fmt.Errorf("%w: loaded readonly: %v", ErrInvalidGrpcTx, err)
		}
		meta.LoadedAddresses = &domain.LoadedAddresses{Writable: writable, Readonly: readonly}
	}

	if len(m.InnerInstructions) > 0 {
		meta.InnerInstructions = make([]domain.InnerInstructionSet, len(m.InnerInstructions))
		for i, set := range m.InnerInstructions {
			inners := make([]domain.InnerInstruction, len(set.Instructions))
			for j, ix := range set.Instructions {
				inners[j] = domain.InnerInstruction{
					Instruction: compiledInstruction(ix.ProgramIdIndex, ix.Accounts, ix.Data),
					StackHeight: ix.StackHeight,
				}
			}
			meta.InnerInstructions[i] = domain.InnerInstructionSet{Index: set.Index, Instructions: inners}
		}
	}
	return meta, nil
}

func lookupDirectives(lookups []*pb.MessageAddressTableLookup) ([]domain.LookupDirective, error) {
	if len(lookups) == 0 {
		return nil, nil
	}
	directives := make([]domain.LookupDirective, len(lookups))
	for i, l := range lookups {
		key, err := types.TryPubkeyFromBytes(l.AccountKey)
		if err != nil {
			return nil, fmt.Errorf("%w: lookup table %d: %v", ErrInvalidGrpcTx, i, err)
		}
		directives[i] = domain.LookupDirective{
			TableKey:        key.String(),
			WritableIndexes: l.WritableIndexes,
			ReadonlyIndexes: l.ReadonlyIndexes,
		}
	}
	return directives, nil
}

func compiledInstruction(programIDIndex uint32, accounts, data []byte) *domain.CompiledInstruction {
	indexes := make([]uint32, len(accounts))
	for i, a := range accounts {
		indexes[i] = uint32(a)
	}
	return &domain.CompiledInstruction{
		ProgramIDIndex: programIDIndex,
		Accounts:       indexes,
		Data:           base58.Encode(data),
	}
}
