package resolver

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"drift-indexer-sol/internal/logic/domain"
	"drift-indexer-sol/internal/types"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddr(seed byte) types.Pubkey {
	var p types.Pubkey
	p[0] = seed
	p[31] = 0xAA
	return p
}

// buildTableData 构造查找表账户数据
func buildTableData(t *testing.T, addrs ...types.Pubkey) []byte {
	t.Helper()
	meta := lookupTableMeta{
		TypeTag:          lookupTableTypeTag,
		DeactivationSlot: ^uint64(0),
		LastExtendedSlot: 100,
		HasAuthority:     true,
		Authority:        testAddr(0xFF),
	}
	head, err := borsh.Serialize(meta)
	require.NoError(t, err)
	require.Len(t, head, 56)
	for _, a := range addrs {
		head = append(head, a[:]...)
	}
	return head
}

type fakeFetcher struct {
	mu       sync.Mutex
	accounts map[string][]byte
	calls    map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{accounts: map[string][]byte{}, calls: map[string]int{}}
}

func (f *fakeFetcher) FetchAccount(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[key]++
	data, ok := f.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, key)
	}
	return data, nil
}

func staticKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = testAddr(byte(i + 1)).String()
	}
	return keys
}

func TestResolve(t *testing.T) {
	tableKey := testAddr(0x50).String()
	tableAddrs := []types.Pubkey{testAddr(0x60), testAddr(0x61), testAddr(0x62)}

	t.Run("静态 + 可写 + 只读", func(t *testing.T) {
		f := newFakeFetcher()
		f.accounts[tableKey] = buildTableData(t, tableAddrs...)
		r := NewResolver(f, 4)

		static := staticKeys(5)
		got, err := r.Resolve(context.Background(), static, nil, []domain.LookupDirective{
			{TableKey: tableKey, WritableIndexes: []uint8{0, 2}, ReadonlyIndexes: []uint8{1}},
		})
		require.NoError(t, err)
		require.Len(t, got, 8)
		assert.Equal(t, static, got[:5])
		assert.Equal(t, []string{tableAddrs[0].String(), tableAddrs[2].String(), tableAddrs[1].String()}, got[5:])
	})

	t.Run("多张表：先全部可写再全部只读", func(t *testing.T) {
		otherKey := testAddr(0x51).String()
		otherAddrs := []types.Pubkey{testAddr(0x70), testAddr(0x71)}
		f := newFakeFetcher()
		f.accounts[tableKey] = buildTableData(t, tableAddrs...)
		f.accounts[otherKey] = buildTableData(t, otherAddrs...)

		got, err := NewResolver(f, 0).Resolve(context.Background(), staticKeys(1), nil, []domain.LookupDirective{
			{TableKey: tableKey, WritableIndexes: []uint8{1}, ReadonlyIndexes: []uint8{2}},
			{TableKey: otherKey, WritableIndexes: []uint8{0}, ReadonlyIndexes: []uint8{1}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			testAddr(1).String(),
			tableAddrs[1].String(), otherAddrs[0].String(),
			tableAddrs[2].String(), otherAddrs[1].String(),
		}, got)
	})

	t.Run("已展开地址排在查找表之前", func(t *testing.T) {
		f := newFakeFetcher()
		f.accounts[tableKey] = buildTableData(t, tableAddrs...)
		loaded := &domain.LoadedAddresses{Writable: []string{"W1"}, Readonly: []string{"R1", "R2"}}

		got, err := NewResolver(f, 1).Resolve(context.Background(), []string{"S"}, loaded, []domain.LookupDirective{
			{TableKey: tableKey, ReadonlyIndexes: []uint8{0}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "W1", "R1", "R2", tableAddrs[0].String()}, got)
	})

	t.Run("同一张表只获取一次", func(t *testing.T) {
		f := newFakeFetcher()
		f.accounts[tableKey] = buildTableData(t, tableAddrs...)
		_, err := NewResolver(f, 2).Resolve(context.Background(), nil, nil, []domain.LookupDirective{
			{TableKey: tableKey, WritableIndexes: []uint8{0}},
			{TableKey: tableKey, ReadonlyIndexes: []uint8{1}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, f.calls[tableKey])
	})

	t.Run("无查找表不发起请求", func(t *testing.T) {
		f := newFakeFetcher()
		got, err := NewResolver(f, 2).Resolve(context.Background(), staticKeys(2), nil, nil)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Empty(t, f.calls)
	})

	t.Run("下标越界", func(t *testing.T) {
		f := newFakeFetcher()
		f.accounts[tableKey] = buildTableData(t, tableAddrs...)
		_, err := NewResolver(f, 2).Resolve(context.Background(), nil, nil, []domain.LookupDirective{
			{TableKey: tableKey, ReadonlyIndexes: []uint8{3}},
		})
		require.ErrorIs(t, err, ErrAccountResolution)
		assert.ErrorIs(t, err, ErrLookupIndexOutOfRange)
		assert.Contains(t, err.Error(), tableKey)
	})

	t.Run("表不存在", func(t *testing.T) {
		_, err := NewResolver(newFakeFetcher(), 2).Resolve(context.Background(), nil, nil, []domain.LookupDirective{
			{TableKey: tableKey, WritableIndexes: []uint8{0}},
		})
		require.ErrorIs(t, err, ErrAccountResolution)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Contains(t, err.Error(), tableKey)
	})

	t.Run("表数据格式错误", func(t *testing.T) {
		f := newFakeFetcher()
		f.accounts[tableKey] = buildTableData(t, tableAddrs...)[:70]
		_, err := NewResolver(f, 2).Resolve(context.Background(), nil, nil, []domain.LookupDirective{
			{TableKey: tableKey, WritableIndexes: []uint8{0}},
		})
		require.ErrorIs(t, err, ErrAccountResolution)
		assert.ErrorIs(t, err, ErrMalformedLookupTable)
	})

	t.Run("任一失败取消其余请求", func(t *testing.T) {
		slowKey := testAddr(0x52).String()
		fetcher := FetcherFunc(func(ctx context.Context, key string) ([]byte, error) {
			if key == slowKey {
				<-ctx.Done()
				return nil, fmt.Errorf("%w: %v", ErrFetchUnavailable, ctx.Err())
			}
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, key)
		})
		_, err := NewResolver(fetcher, 0).Resolve(context.Background(), nil, nil, []domain.LookupDirective{
			{TableKey: slowKey, WritableIndexes: []uint8{0}},
			{TableKey: tableKey, WritableIndexes: []uint8{0}},
		})
		require.ErrorIs(t, err, ErrAccountResolution)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestParseLookupTable(t *testing.T) {
	t.Run("正常解析", func(t *testing.T) {
		table, err := ParseLookupTable(buildTableData(t, testAddr(1), testAddr(2)))
		require.NoError(t, err)
		assert.Equal(t, []types.Pubkey{testAddr(1), testAddr(2)}, table.Addresses)
		require.NotNil(t, table.Authority)
		assert.Equal(t, testAddr(0xFF), *table.Authority)
		assert.Equal(t, ^uint64(0), table.DeactivationSlot)
	})

	t.Run("空表", func(t *testing.T) {
		table, err := ParseLookupTable(buildTableData(t))
		require.NoError(t, err)
		assert.Empty(t, table.Addresses)
	})

	t.Run("格式错误", func(t *testing.T) {
		valid := buildTableData(t, testAddr(1))

		_, err := ParseLookupTable(valid[:55])
		assert.ErrorIs(t, err, ErrMalformedLookupTable)

		_, err = ParseLookupTable(valid[:len(valid)-1])
		assert.ErrorIs(t, err, ErrMalformedLookupTable)

		wrongTag := append([]byte{}, valid...)
		wrongTag[0] = 0
		_, err = ParseLookupTable(wrongTag)
		assert.ErrorIs(t, err, ErrMalformedLookupTable)
	})
}
