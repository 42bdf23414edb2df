package fetcher

import (
	"context"
	"fmt"
	"time"

	"drift-indexer-sol/internal/consts"
	"drift-indexer-sol/internal/logic/resolver"
	"drift-indexer-sol/internal/metrics"

	"github.com/blocto/solana-go-sdk/client"
)

const layerRpc = "rpc"

// RpcFetcher 通过 getAccountInfo 读取账户数据，链路最底层
type RpcFetcher struct {
	client  *client.Client
	timeout time.Duration
}

func NewRpcFetcher(endpoint string, timeout time.Duration) *RpcFetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RpcFetcher{client: client.NewClient(endpoint), timeout: timeout}
}

func (f *RpcFetcher) FetchAccount(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	info, err := f.client.GetAccountInfo(ctx, key)
	if err != nil {
		metrics.LookupFetches.WithLabelValues(layerRpc, metrics.ResultError).Inc()
		return nil, fmt.Errorf("%w: getAccountInfo %s: %v", resolver.ErrFetchUnavailable, key, err)
	}
	if len(info.Data) == 0 {
		metrics.LookupFetches.WithLabelValues(layerRpc, metrics.ResultMiss).Inc()
		return nil, fmt.Errorf("%w: %s", resolver.ErrAccountNotFound, key)
	}
	if owner := info.Owner.ToBase58(); owner != consts.AddressLookupTableProgramStr {
		metrics.LookupFetches.WithLabelValues(layerRpc, metrics.ResultMiss).Inc()
		return nil, fmt.Errorf("%w: %s is not an address lookup table, owner=%s", resolver.ErrAccountNotFound, key, owner)
	}
	metrics.LookupFetches.WithLabelValues(layerRpc, metrics.ResultHit).Inc()
	return info.Data, nil
}
