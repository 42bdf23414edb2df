package mq

import (
	"context"
	"fmt"
	"os"
	"time"

	"drift-indexer-sol/internal/pkg/logger"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const (
	defaultBatchSize  = 32 * 1024
	defaultLingerMs   = 5
	defaultPartitions = 1

	metadataTimeoutMs = 10000
)

// ProducerOption Kafka 生产者参数，解码结果只写一个 topic
type ProducerOption struct {
	Brokers    string // 多个 broker 用英文逗号分隔
	BatchSize  int    // 批处理大小（字节）
	LingerMs   int    // 批处理最大延迟（毫秒）
	Topic      string
	Partitions int
}

// NewKafkaProducer 确保 topic 存在后创建幂等生产者
func NewKafkaProducer(opt ProducerOption) (*kafka.Producer, error) {
	if opt.Topic == "" {
		return nil, fmt.Errorf("kafka topic is empty")
	}
	if err := ensureTopic(opt); err != nil {
		return nil, err
	}

	batchSize := opt.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	lingerMs := opt.LingerMs
	if lingerMs < 0 {
		lingerMs = defaultLingerMs
	}

	host, _ := os.Hostname()
	if host == "" {
		host = "unknown"
	}

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": opt.Brokers,
		"client.id":         fmt.Sprintf("drift-indexer-%s", host),

		// 可靠性
		"acks":                                  "all",
		"enable.idempotence":                    true,
		"max.in.flight.requests.per.connection": 5, // 幂等模式上限

		"delivery.timeout.ms": 30000,
		"request.timeout.ms":  30000,
		"retries":             5,
		"retry.backoff.ms":    100,

		"batch.size":       batchSize,
		"linger.ms":        lingerMs,
		"compression.type": "lz4",

		"message.max.bytes": 2 * 1024 * 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return producer, nil
}

// ensureTopic topic 不存在时按 broker 数量选择副本数并创建
func ensureTopic(opt ProducerOption) error {
	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": opt.Brokers,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	meta, err := admin.GetMetadata(nil, true, metadataTimeoutMs)
	if err != nil {
		return fmt.Errorf("failed to get metadata: %w", err)
	}
	if _, ok := meta.Topics[opt.Topic]; ok {
		return nil
	}

	replicationFactor := 1
	if len(meta.Brokers) > 1 {
		replicationFactor = 2
	}
	partitions := opt.Partitions
	if partitions <= 0 {
		partitions = defaultPartitions
	}
	logger.Infof("[Kafka:Producer] 创建 topic: %s, partitions=%d, replication=%d", opt.Topic, partitions, replicationFactor)

	ctx, cancel := context.WithTimeout(context.Background(), metadataTimeoutMs*time.Millisecond)
	defer cancel()

	results, err := admin.CreateTopics(ctx, []kafka.TopicSpecification{{
		Topic:             opt.Topic,
		NumPartitions:     partitions,
		ReplicationFactor: replicationFactor,
	}})
	if err != nil {
		return fmt.Errorf("failed to create topic %s: %w", opt.Topic, err)
	}
	for _, res := range results {
		if code := res.Error.Code(); code != kafka.ErrNoError && code != kafka.ErrTopicAlreadyExists {
			return fmt.Errorf("failed to create topic %s: %w", res.Topic, res.Error)
		}
	}
	return nil
}
