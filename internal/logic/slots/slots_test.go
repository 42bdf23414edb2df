package slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"drift-indexer-sol/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	assert.Nil(t, Split(10, 9))
	assert.Equal(t, []Range{{From: 5, To: 5}}, Split(5, 5))
	assert.Equal(t, []Range{
		{From: 0, To: 9999},
		{From: 10000, To: 19999},
		{From: 20000, To: 20000},
	}, Split(0, 20000))

	for _, r := range Split(123, 54321) {
		assert.LessOrEqual(t, r.Len(), uint64(MaxRangeSize))
	}
}

func TestMerge(t *testing.T) {
	t.Run("空输入", func(t *testing.T) {
		assert.Nil(t, Merge(nil))
	})

	t.Run("相邻与重叠合并", func(t *testing.T) {
		got := Merge([]Range{{From: 20, To: 30}, {From: 1, To: 10}, {From: 11, To: 15}, {From: 25, To: 28}})
		assert.Equal(t, []Range{{From: 1, To: 15}, {From: 20, To: 30}}, got)
	})

	t.Run("合并后不超过上限", func(t *testing.T) {
		got := Merge([]Range{{From: 0, To: 8000}, {From: 8001, To: 15000}})
		assert.Equal(t, []Range{{From: 0, To: 9999}, {From: 10000, To: 15000}}, got)
	})

	t.Run("超长区间拆分", func(t *testing.T) {
		got := Merge([]Range{{From: 100, To: 25099}})
		require.Len(t, got, 3)
		for _, r := range got {
			assert.LessOrEqual(t, r.Len(), uint64(MaxRangeSize))
		}
		assert.Equal(t, uint64(100), got[0].From)
		assert.Equal(t, uint64(25099), got[2].To)
	})
}

func TestMissing(t *testing.T) {
	assert.Equal(t, []uint64{10, 11, 12}, Missing(10, 12, nil))
	assert.Nil(t, Missing(10, 12, []uint64{10, 11, 12}))
	assert.Equal(t, []uint64{10, 13, 15}, Missing(10, 15, []uint64{14, 11, 12}))
	// 区间外的 slot 忽略
	assert.Equal(t, []uint64{11}, Missing(10, 12, []uint64{5, 10, 12, 99}))
	assert.Nil(t, Missing(3, 2, nil))
}

func TestContains(t *testing.T) {
	ranges := []Range{{From: 1, To: 5}, {From: 10, To: 20}}
	assert.True(t, Contains(ranges, 1))
	assert.True(t, Contains(ranges, 15))
	assert.False(t, Contains(ranges, 0))
	assert.False(t, Contains(ranges, 7))
	assert.False(t, Contains(ranges, 21))
	assert.False(t, Contains(nil, 3))
}

// getBlocksServer 返回 [from, to] 内的偶数 slot，前 failFirst 次请求返回 500
func getBlocksServer(t *testing.T, failFirst int32) (*httptest.Server, *int32) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= failFirst {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var req struct {
			ID     uint64   `json:"id"`
			Method string   `json:"method"`
			Params []uint64 `json:"params"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Equal(t, "getBlocks", req.Method)
		from, to := req.Params[0], req.Params[1]
		assert.LessOrEqual(t, to-from+1, uint64(MaxRangeSize))

		result := []uint64{}
		for s := from; s <= to; s++ {
			if s%2 == 0 {
				result = append(result, s)
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestLister(t *testing.T) {
	fastRetry := retry.New(retry.WithAttempts(3), retry.WithDelay(time.Millisecond))

	t.Run("分段查询", func(t *testing.T) {
		srv, calls := getBlocksServer(t, 0)
		l := NewLister(srv.URL, time.Second, fastRetry)

		// [0, 9999] + [10000, 10010]
		blocks, err := l.List(context.Background(), 0, 10010)
		require.NoError(t, err)
		assert.Len(t, blocks, 5006)
		assert.Equal(t, uint64(0), blocks[0])
		assert.Equal(t, uint64(10010), blocks[len(blocks)-1])
		assert.Equal(t, int32(2), atomic.LoadInt32(calls))
	})

	t.Run("失败后重试", func(t *testing.T) {
		srv, calls := getBlocksServer(t, 1)
		l := NewLister(srv.URL, time.Second, fastRetry)

		blocks, err := l.ListRange(context.Background(), Range{From: 1, To: 4})
		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 4}, blocks)
		assert.Equal(t, int32(2), atomic.LoadInt32(calls))
	})

	t.Run("非法区间", func(t *testing.T) {
		l := NewLister("http://127.0.0.1:1", time.Second, fastRetry)
		_, err := l.ListRange(context.Background(), Range{From: 0, To: MaxRangeSize})
		assert.Error(t, err)
	})

	t.Run("持续失败", func(t *testing.T) {
		srv, _ := getBlocksServer(t, 100)
		l := NewLister(srv.URL, time.Second, fastRetry)
		_, err := l.List(context.Background(), 1, 2)
		assert.Error(t, err)
	})
}
