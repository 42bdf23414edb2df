package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(req request) (int, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		status, body := handler(req)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Call(t *testing.T) {
	t.Run("正常返回 result", func(t *testing.T) {
		var got request
		srv := newTestServer(t, func(req request) (int, string) {
			got = req
			return http.StatusOK, `{"jsonrpc":"2.0","id":"1","result":[1,2,3]}`
		})

		var slots []uint64
		err := NewClient(srv.URL).CallResult(context.Background(), &slots, "getBlocks", 10, 20)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 2, 3}, slots)

		assert.Equal(t, "2.0", got.JSONRPC)
		assert.Equal(t, "getBlocks", got.Method)
		assert.Len(t, got.Params, 2)
		_, err = uuid.Parse(got.ID)
		assert.NoError(t, err)
	})

	t.Run("无参数时发送空数组", func(t *testing.T) {
		var got request
		srv := newTestServer(t, func(req request) (int, string) {
			got = req
			return http.StatusOK, `{"result":1}`
		})
		_, err := NewClient(srv.URL).Call(context.Background(), "getSlot")
		require.NoError(t, err)
		assert.NotNil(t, got.Params)
	})

	t.Run("节点返回错误对象", func(t *testing.T) {
		srv := newTestServer(t, func(request) (int, string) {
			return http.StatusOK, `{"jsonrpc":"2.0","id":"1","error":{"code":-32007,"message":"Slot 5 was skipped"}}`
		})
		_, err := NewClient(srv.URL).Call(context.Background(), "getBlock", 5)
		require.ErrorIs(t, err, ErrProviderReturnedError)

		var perr *ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, -32007, perr.Code)
	})

	t.Run("5xx 重试", func(t *testing.T) {
		var calls atomic.Int32
		srv := newTestServer(t, func(request) (int, string) {
			if calls.Add(1) == 1 {
				return http.StatusBadGateway, ""
			}
			return http.StatusOK, `{"result":"ok"}`
		})
		c := NewClient(srv.URL, WithRetryMax(2), WithRetryWaitMin(time.Millisecond), WithRetryWaitMax(2*time.Millisecond))
		raw, err := c.Call(context.Background(), "getHealth")
		require.NoError(t, err)
		assert.JSONEq(t, `"ok"`, string(raw))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("非 JSON 响应", func(t *testing.T) {
		srv := newTestServer(t, func(request) (int, string) {
			return http.StatusOK, `not json`
		})
		_, err := NewClient(srv.URL).Call(context.Background(), "getSlot")
		assert.Error(t, err)
	})
}

func TestClient_CallResult_Null(t *testing.T) {
	srv := newTestServer(t, func(req request) (int, string) {
		return http.StatusOK, `{"jsonrpc":"2.0","id":"1","result":null}`
	})

	type block struct{ Slot uint64 }
	var out *block
	require.NoError(t, NewClient(srv.URL).CallResult(context.Background(), &out, "getBlock", 1))
	assert.Nil(t, out)
}
