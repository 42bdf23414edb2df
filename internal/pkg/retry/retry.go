package retry

import (
	"context"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

// Retrier 按指数退避重试，ctx 取消后立即停止
type Retrier struct {
	attempts  uint
	delay     time.Duration
	maxDelay  time.Duration
	retryable func(error) bool
	onRetry   func(attempt uint, err error)
}

type Option func(*Retrier)

// New 默认 3 次尝试（首次 + 2 次重试），初始间隔 200ms，最大间隔 2s
func New(opts ...Option) *Retrier {
	r := &Retrier{
		attempts: 3,
		delay:    200 * time.Millisecond,
		maxDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute 执行 op，失败时按配置重试，仅返回最后一次错误
func (r *Retrier) Execute(ctx context.Context, op func() error) error {
	options := []retrygo.Option{
		retrygo.Attempts(r.attempts),
		retrygo.Delay(r.delay),
		retrygo.MaxDelay(r.maxDelay),
		retrygo.DelayType(retrygo.BackOffDelay),
		retrygo.LastErrorOnly(true),
		retrygo.Context(ctx),
	}
	if r.retryable != nil {
		options = append(options, retrygo.RetryIf(r.retryable))
	}
	if r.onRetry != nil {
		options = append(options, retrygo.OnRetry(r.onRetry))
	}
	return retrygo.Do(op, options...)
}

// WithAttempts 总尝试次数（含首次），0 表示直到成功或 ctx 结束
func WithAttempts(n uint) Option {
	return func(r *Retrier) { r.attempts = n }
}

func WithDelay(d time.Duration) Option {
	return func(r *Retrier) { r.delay = d }
}

func WithMaxDelay(d time.Duration) Option {
	return func(r *Retrier) { r.maxDelay = d }
}

// WithRetryIf 仅当 fn 返回 true 时重试，其余错误立即返回
func WithRetryIf(fn func(error) bool) Option {
	return func(r *Retrier) { r.retryable = fn }
}

// WithOnRetry 每次重试前回调，attempt 从 0 开始
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(r *Retrier) { r.onRetry = fn }
}
