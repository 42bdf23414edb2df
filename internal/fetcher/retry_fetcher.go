package fetcher

import (
	"context"
	"errors"
	"time"

	"drift-indexer-sol/internal/logic/resolver"
	"drift-indexer-sol/internal/pkg/logger"
	"drift-indexer-sol/internal/pkg/retry"
)

// RetryFetcher 仅对 ErrFetchUnavailable 重试，账户不存在直接返回
type RetryFetcher struct {
	next    resolver.AccountFetcher
	retrier *retry.Retrier
}

func NewRetryFetcher(next resolver.AccountFetcher, attempts uint, delay time.Duration) *RetryFetcher {
	return &RetryFetcher{
		next: next,
		retrier: retry.New(
			retry.WithAttempts(attempts),
			retry.WithDelay(delay),
			retry.WithMaxDelay(10*delay),
			retry.WithRetryIf(func(err error) bool {
				return errors.Is(err, resolver.ErrFetchUnavailable)
			}),
		),
	}
}

func (f *RetryFetcher) FetchAccount(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	attempt := 0
	err := f.retrier.Execute(ctx, func() error {
		attempt++
		d, err := f.next.FetchAccount(ctx, key)
		if err != nil {
			if attempt > 1 {
				logger.Warnf("[Fetcher:Retry] 第 %d 次获取账户失败: %v, key=%s", attempt, err, key)
			}
			return err
		}
		data = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
