package resolver

import (
	"errors"
	"fmt"

	"drift-indexer-sol/internal/consts"
	"drift-indexer-sol/internal/types"

	"github.com/near/borsh-go"
)

const lookupTableTypeTag = 1

var (
	ErrMalformedLookupTable  = errors.New("malformed lookup table")
	ErrLookupIndexOutOfRange = errors.New("lookup table index out of range")
)

// lookupTableMeta 地址查找表账户头部，固定 56 字节
type lookupTableMeta struct {
	TypeTag                    uint32 // 1 = LookupTable，0 = Uninitialized
	DeactivationSlot           uint64
	LastExtendedSlot           uint64
	LastExtendedSlotStartIndex uint8
	HasAuthority               bool
	Authority                  [32]byte
	Padding                    uint16
}

// LookupTable 已解析的地址查找表
type LookupTable struct {
	DeactivationSlot uint64
	Authority        *types.Pubkey
	Addresses        []types.Pubkey
}

// ParseLookupTable 解析查找表账户数据：56 字节头部 + N 个 32 字节地址
func ParseLookupTable(data []byte) (*LookupTable, error) {
	if len(data) < consts.LookupTableMetaSize {
		return nil, fmt.Errorf("%w: data too short: %d bytes", ErrMalformedLookupTable, len(data))
	}
	body := data[consts.LookupTableMetaSize:]
	if len(body)%types.PubkeySize != 0 {
		return nil, fmt.Errorf("%w: address region not aligned: %d bytes", ErrMalformedLookupTable, len(body))
	}

	var meta lookupTableMeta
	if err := borsh.Deserialize(&meta, data[:consts.LookupTableMetaSize]); err != nil {
		return nil, fmt.Errorf("%w: decode meta: %v", ErrMalformedLookupTable, err)
	}
	if meta.TypeTag != lookupTableTypeTag {
		return nil, fmt.Errorf("%w: unexpected type tag %d", ErrMalformedLookupTable, meta.TypeTag)
	}

	table := &LookupTable{
		DeactivationSlot: meta.DeactivationSlot,
		Addresses:        make([]types.Pubkey, len(body)/types.PubkeySize),
	}
	if meta.HasAuthority {
		authority := types.Pubkey(meta.Authority)
		table.Authority = &authority
	}
	for i := range table.Addresses {
		copy(table.Addresses[i][:], body[i*types.PubkeySize:])
	}
	return table, nil
}

// Select 按下标取地址，越界返回 error
func (t *LookupTable) Select(indexes []uint8) ([]string, error) {
	result := make([]string, len(indexes))
	for i, idx := range indexes {
		if int(idx) >= len(t.Addresses) {
			return nil, fmt.Errorf("%w: index %d, table size %d", ErrLookupIndexOutOfRange, idx, len(t.Addresses))
		}
		result[i] = t.Addresses[idx].String()
	}
	return result, nil
}
