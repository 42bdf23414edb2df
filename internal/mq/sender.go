package mq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const drainTimeout = 2 * time.Second

var (
	ErrDeliveryTimeout = errors.New("kafka delivery timeout")
	ErrDeliveryClosed  = errors.New("kafka delivery channel closed")
)

// Producer *kafka.Producer 满足该接口
type Producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

// KafkaJob 一条待发送消息
type KafkaJob struct {
	Topic     string
	Partition int32
	Key       []byte
	Value     []byte
}

// KafkaSendResult 单条消息的发送失败信息
type KafkaSendResult struct {
	Job *KafkaJob
	Err error
}

// SendKafkaJobs 并发发送并逐条等待 ack，返回成功与失败两部分
func SendKafkaJobs(
	ctx context.Context,
	producer Producer,
	jobs []*KafkaJob,
	perMessageTimeout time.Duration,
) (ok []*KafkaJob, failed []KafkaSendResult) {
	results := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job *KafkaJob) {
			defer wg.Done()
			results[i] = sendOne(ctx, producer, job, perMessageTimeout)
		}(i, job)
	}
	wg.Wait()

	for i, err := range results {
		if err != nil {
			failed = append(failed, KafkaSendResult{Job: jobs[i], Err: err})
		} else {
			ok = append(ok, jobs[i])
		}
	}
	return ok, failed
}

func sendOne(ctx context.Context, producer Producer, job *KafkaJob, timeout time.Duration) error {
	deliveryChan := make(chan kafka.Event, 1)
	err := producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &job.Topic,
			Partition: job.Partition,
		},
		Key:   job.Key,
		Value: job.Value,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce: %w", err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case e, ok := <-deliveryChan:
		if !ok {
			return ErrDeliveryClosed
		}
		msg, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %T", e)
		}
		return msg.TopicPartition.Error
	case <-timer.C:
		go drain(deliveryChan)
		return fmt.Errorf("%w (>%v)", ErrDeliveryTimeout, timeout)
	case <-ctx.Done():
		go drain(deliveryChan)
		return fmt.Errorf("send cancelled: %w", ctx.Err())
	}
}

// drain 接收迟到的回执，避免 librdkafka 回调阻塞
func drain(ch <-chan kafka.Event) {
	select {
	case <-ch:
	case <-time.After(drainTimeout):
	}
}
