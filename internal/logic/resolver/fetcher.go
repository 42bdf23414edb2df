package resolver

import (
	"context"
	"errors"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrFetchUnavailable = errors.New("account fetch unavailable")
)

// AccountFetcher 按地址获取账户原始数据。
// 实现方需保证并发安全，失败时包装 ErrAccountNotFound 或 ErrFetchUnavailable。
type AccountFetcher interface {
	FetchAccount(ctx context.Context, key string) ([]byte, error)
}

// FetcherFunc 函数适配器
type FetcherFunc func(ctx context.Context, key string) ([]byte, error)

func (f FetcherFunc) FetchAccount(ctx context.Context, key string) ([]byte, error) {
	return f(ctx, key)
}
