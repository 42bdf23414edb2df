package svc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"drift-indexer-sol/internal/config"
	"drift-indexer-sol/internal/fetcher"
	"drift-indexer-sol/internal/logic/backfill"
	"drift-indexer-sol/internal/logic/extractor"
	"drift-indexer-sol/internal/logic/progress"
	"drift-indexer-sol/internal/logic/resolver"
	"drift-indexer-sol/internal/logic/scraper"
	"drift-indexer-sol/internal/logic/slots"
	"drift-indexer-sol/internal/metrics"
	"drift-indexer-sol/internal/mq"
	"drift-indexer-sol/internal/pkg/jsonrpc"
	"drift-indexer-sol/internal/pkg/logger"
	"drift-indexer-sol/internal/pkg/retry"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/redis/go-redis/v9"
)

// ServiceContext 各命令共用的资源
type ServiceContext struct {
	Config       config.Config
	Redis        redis.UniversalClient        // Redis 未启用时为 nil
	Producer     *kafka.Producer              // Kafka 未启用时为 nil
	Progress     *progress.RedisProgressStore // Redis 未启用时为 nil
	Processor    *scraper.Processor
	Lister       *slots.Lister
	BlockFetcher *backfill.BlockFetcher
	Metrics      *metrics.Server // 未配置地址时为 nil
}

// NewServiceContext source 为处理来源标签（grpc / backfill），用于指标区分
func NewServiceContext(c config.Config, source string) (*ServiceContext, error) {
	if err := logger.Init(c.Logger.ToLogOption()); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if c.Rpc.Endpoint == "" {
		return nil, fmt.Errorf("rpc endpoint is empty")
	}

	sc := &ServiceContext{Config: c}

	// 1. Redis：查找表二级缓存 + slot 处理进度
	if c.Redis.Enabled {
		rdb := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{c.Redis.Addr},
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping %s: %w", c.Redis.Addr, err)
		}
		sc.Redis = rdb
		sc.Progress = progress.NewRedisProgressStore(rdb, time.Duration(c.Redis.SlotStatusTTLSec)*time.Second)
	}

	// 2. 查找表获取链：内存 → Redis → 重试 → RPC
	chainOpt := c.ToChainOptions()
	chainOpt.Redis = sc.Redis
	ex := extractor.NewExtractor(resolver.NewResolver(fetcher.NewChain(chainOpt), c.LookupTable.FetchConcurrency))

	// 3. 输出：Kafka 或日志
	var sink scraper.Sink = scraper.LogSink{}
	if c.Kafka.Enabled {
		producer, err := mq.NewKafkaProducer(c.Kafka.ToProducerOption())
		if err != nil {
			sc.Close()
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		sc.Producer = producer
		sink = scraper.NewKafkaSink(producer, c.Kafka.Topic, c.Kafka.Partitions, time.Duration(c.Kafka.SendTimeoutMs)*time.Millisecond)
	}
	sc.Processor = scraper.NewProcessor(ex, sink, source)

	// 4. 区块列举与拉取
	sc.Lister = slots.NewLister(c.Rpc.Endpoint, c.Rpc.Timeout(), retry.New(
		retry.WithAttempts(uint(c.Rpc.RetryMax)+1),
		retry.WithDelay(300*time.Millisecond),
	))
	sc.BlockFetcher = backfill.NewBlockFetcher(jsonrpc.NewClient(c.Rpc.Endpoint,
		jsonrpc.WithTimeout(c.Rpc.Timeout()),
		jsonrpc.WithRetryMax(c.Rpc.RetryMax),
	))

	if strings.TrimSpace(c.Metrics.Addr) != "" {
		sc.Metrics = metrics.NewServer(c.Metrics.Addr)
	}

	logger.Infof("[Svc:Init] 服务上下文初始化完成, source=%s, redis=%v, kafka=%v", source, c.Redis.Enabled, c.Kafka.Enabled)
	return sc, nil
}

// Close 关闭服务上下文中的资源
func (sc *ServiceContext) Close() {
	if sc.Producer != nil {
		// 等待未确认消息
		if remaining := sc.Producer.Flush(5000); remaining > 0 {
			logger.Warnf("[Svc:Close] Kafka 仍有 %d 条消息未确认", remaining)
		}
		sc.Producer.Close()
	}
	if sc.Redis != nil {
		if err := sc.Redis.Close(); err != nil {
			logger.Warnf("[Svc:Close] 关闭 Redis 失败: %v", err)
		}
	}
	logger.Sync()
}
