package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrProviderReturnedError 节点返回了 JSON-RPC error 对象
var ErrProviderReturnedError = errors.New("jsonrpc provider error")

// ProviderError 保留节点返回的错误码，便于调用方区分（如 slot 被跳过）
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: [%d] %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return ErrProviderReturnedError
}

var jsonNull = []byte("null")

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Client JSON-RPC 2.0 over HTTP，传输层失败由 retryablehttp 重试
type Client struct {
	endpoint   string
	httpClient *http.Client
}

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

type Option func(*config)

// NewClient 默认单次请求超时 10s，最多重试 2 次
func NewClient(endpoint string, opts ...Option) *Client {
	cfg := config{
		timeout:      10 * time.Second,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.HTTPClient.Timeout = cfg.timeout
	rc.RetryWaitMin = cfg.retryWaitMin
	rc.RetryWaitMax = cfg.retryWaitMax
	rc.RetryMax = cfg.retryMax

	return &Client{endpoint: endpoint, httpClient: rc.StandardClient()}
}

// Call 发送请求并返回原始 result
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(request{JSONRPC: "2.0", ID: uuid.NewString(), Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected http status %d", method, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if data.Error != nil {
		return nil, &ProviderError{Code: data.Error.Code, Message: data.Error.Message}
	}
	return data.Result, nil
}

// CallResult Call 后将 result 反序列化到 out；result 为 null 时 out 保持不变
func (c *Client) CallResult(ctx context.Context, out any, method string, params ...any) error {
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal %s result: %w", method, err)
	}
	return nil
}

func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) { c.retryWaitMin = d }
}

func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) { c.retryWaitMax = d }
}

func WithRetryMax(n int) Option {
	return func(c *config) { c.retryMax = n }
}
