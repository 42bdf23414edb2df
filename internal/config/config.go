package config

import (
	"time"

	"drift-indexer-sol/internal/fetcher"
	"drift-indexer-sol/internal/mq"
	"drift-indexer-sol/internal/pkg/logger"
)

type LogConfig struct {
	Format   string `json:",default=console,options=console|json"` // 日志格式
	LogDir   string `json:",optional"`                              // 日志目录，为空只输出到 stdout
	Level    string `json:",default=info,options=debug|info|warn|error"`
	Compress bool   `json:",optional"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// GrpcConfig Yellowstone gRPC 连接配置
type GrpcConfig struct {
	Endpoint string `json:",optional"` // 回补模式不需要
	XToken   string `json:",optional"` // x-token 认证

	// 应用层 ping 间隔（秒）
	StreamPingIntervalSec int `json:",default=10"`

	// 底层 keepalive
	KeepalivePingIntervalSec int `json:",default=30"`
	KeepalivePingTimeoutSec  int `json:",default=10"`

	// 窗口大小（大数据流推送）
	InitialWindowSize     int32 `json:",default=1073741824"`
	InitialConnWindowSize int32 `json:",default=1073741824"`

	MaxCallSendMsgSize int `json:",default=67108864"`
	MaxCallRecvMsgSize int `json:",default=67108864"`

	ReconnectIntervalSec int `json:",default=3"`
	ConnectTimeoutSec    int `json:",default=10"`
	SendTimeoutSec       int `json:",default=5"`
	BlockRecvTimeoutSec  int `json:",default=60"` // 超时未收到 block 触发重连

	BlockChanSize    int `json:",default=200"`
	GapCheckDelaySec int `json:",default=30"` // 漏块检查前的等待时间，给节点落盘留余量
}

// RpcConfig JSON-RPC 节点
type RpcConfig struct {
	Endpoint  string
	TimeoutMs int `json:",default=10000"`
	RetryMax  int `json:",default=2"`
}

func (c *RpcConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// LookupTableConfig 地址查找表获取
type LookupTableConfig struct {
	FetchConcurrency int  `json:",default=8"`
	FetchTimeoutMs   int  `json:",default=5000"`
	RetryAttempts    uint `json:",default=3"`
	RetryDelayMs     int  `json:",default=200"`
	MemoryCapacity   int  `json:",default=4096"`
	MemoryTTLSec     int  `json:",default=600"`
}

// RedisConfig 查找表二级缓存与处理进度
type RedisConfig struct {
	Enabled           bool   `json:",optional"`
	Addr              string `json:",default=127.0.0.1:6379"`
	Password          string `json:",optional"`
	DB                int    `json:",optional"`
	LookupTableTTLSec int    `json:",default=3600"`
	SlotStatusTTLSec  int    `json:",default=259200"`
}

// KafkaConfig 解码结果输出，未启用时写日志
type KafkaConfig struct {
	Enabled       bool   `json:",optional"`
	Brokers       string `json:",optional"` // 多个用英文逗号分隔
	BatchSize     int    `json:",default=32768"`
	LingerMs      int    `json:",default=5"`
	Topic         string `json:",default=drift-decoded"`
	Partitions    int    `json:",default=8"`
	SendTimeoutMs int    `json:",default=5000"` // 单条消息等待 ack 的超时
}

func (c *KafkaConfig) ToProducerOption() mq.ProducerOption {
	return mq.ProducerOption{
		Brokers:    c.Brokers,
		BatchSize:  c.BatchSize,
		LingerMs:   c.LingerMs,
		Topic:      c.Topic,
		Partitions: c.Partitions,
	}
}

type MetricsConfig struct {
	Addr string `json:",optional"` // 为空不启动
}

// BackfillConfig 历史区间回补
type BackfillConfig struct {
	FromSlot     uint64 `json:",optional"`
	ToSlot       uint64 `json:",optional"`
	Workers      int    `json:",default=8"`
	Checkpoint   string `json:",default=backfill"`
	ShowProgress bool   `json:",default=true"`
}

// Config 各命令共用的配置
type Config struct {
	Logger      LogConfig
	Grpc        GrpcConfig
	Rpc         RpcConfig
	LookupTable LookupTableConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Metrics     MetricsConfig
	Backfill    BackfillConfig
}

// ToChainOptions 查找表获取链参数，Redis 层由调用方注入
func (c *Config) ToChainOptions() fetcher.ChainOptions {
	return fetcher.ChainOptions{
		RpcEndpoint:    c.Rpc.Endpoint,
		RpcTimeout:     time.Duration(c.LookupTable.FetchTimeoutMs) * time.Millisecond,
		RetryAttempts:  c.LookupTable.RetryAttempts,
		RetryDelay:     time.Duration(c.LookupTable.RetryDelayMs) * time.Millisecond,
		RedisTTL:       time.Duration(c.Redis.LookupTableTTLSec) * time.Second,
		MemoryCapacity: c.LookupTable.MemoryCapacity,
		MemoryTTL:      time.Duration(c.LookupTable.MemoryTTLSec) * time.Second,
	}
}
