package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"drift-indexer-sol/internal/mq"
	"drift-indexer-sol/internal/pkg/logger"

	"github.com/mr-tron/base58"
)

var ErrSinkDelivery = errors.New("sink delivery failed")

// Sink 解码结果的去向
type Sink interface {
	Emit(ctx context.Context, records []*DecodedRecord) error
}

// LogSink 以 JSON 行写入日志
type LogSink struct{}

func (LogSink) Emit(_ context.Context, records []*DecodedRecord) error {
	for _, r := range records {
		line, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal record, tx=%s: %w", r.Signature, err)
		}
		logger.Infof("[Sink:Log] %s", line)
	}
	return nil
}

// KafkaSink 每条记录一条消息，按交易签名选择分区
type KafkaSink struct {
	producer   mq.Producer
	topic      string
	partitions int32
	timeout    time.Duration
}

func NewKafkaSink(producer mq.Producer, topic string, partitions int, timeout time.Duration) *KafkaSink {
	return &KafkaSink{
		producer:   producer,
		topic:      topic,
		partitions: int32(max(partitions, 1)),
		timeout:    timeout,
	}
}

func (s *KafkaSink) Emit(ctx context.Context, records []*DecodedRecord) error {
	jobs := make([]*mq.KafkaJob, 0, len(records))
	for _, r := range records {
		value, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal record, tx=%s: %w", r.Signature, err)
		}
		jobs = append(jobs, &mq.KafkaJob{
			Topic:     s.topic,
			Partition: s.partitionOf(r.Signature),
			Key:       []byte(r.Signature),
			Value:     value,
		})
	}

	ok, failed := mq.SendKafkaJobs(ctx, s.producer, jobs, s.timeout)
	if len(failed) > 0 {
		logger.Errorf("[Sink:Kafka] 发送失败: %v, ok=%d, failed=%d", failed[0].Err, len(ok), len(failed))
		return fmt.Errorf("%w: %d of %d records: %w", ErrSinkDelivery, len(failed), len(jobs), failed[0].Err)
	}
	return nil
}

func (s *KafkaSink) partitionOf(signature string) int32 {
	raw, err := base58.Decode(signature)
	if err != nil {
		raw = []byte(signature)
	}
	return mq.PartitionFor(raw, s.partitions)
}
