package mq

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProducer 按 value 决定回执行为
type fakeProducer struct {
	mu       sync.Mutex
	produced []*kafka.Message
}

func (p *fakeProducer) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	p.mu.Lock()
	p.produced = append(p.produced, msg)
	p.mu.Unlock()

	switch string(msg.Value) {
	case "reject":
		return errors.New("queue full")
	case "silent":
		return nil
	case "broker-error":
		failed := *msg
		failed.TopicPartition.Error = kafka.NewError(kafka.ErrMsgTimedOut, "timed out", false)
		deliveryChan <- &failed
	default:
		deliveryChan <- msg
	}
	return nil
}

func job(value string) *KafkaJob {
	return &KafkaJob{Topic: "drift-decoded", Partition: 0, Value: []byte(value)}
}

func TestSendKafkaJobs(t *testing.T) {
	t.Run("全部成功", func(t *testing.T) {
		p := &fakeProducer{}
		jobs := []*KafkaJob{job("a"), job("b"), job("c")}
		ok, failed := SendKafkaJobs(context.Background(), p, jobs, time.Second)
		assert.Len(t, ok, 3)
		assert.Empty(t, failed)
		assert.Len(t, p.produced, 3)
	})

	t.Run("Produce 失败与 broker 错误", func(t *testing.T) {
		p := &fakeProducer{}
		jobs := []*KafkaJob{job("a"), job("reject"), job("broker-error")}
		ok, failed := SendKafkaJobs(context.Background(), p, jobs, time.Second)
		require.Len(t, ok, 1)
		assert.Equal(t, "a", string(ok[0].Value))
		require.Len(t, failed, 2)
		for _, f := range failed {
			assert.Error(t, f.Err)
		}
	})

	t.Run("回执超时", func(t *testing.T) {
		p := &fakeProducer{}
		ok, failed := SendKafkaJobs(context.Background(), p, []*KafkaJob{job("silent")}, 20*time.Millisecond)
		assert.Empty(t, ok)
		require.Len(t, failed, 1)
		assert.ErrorIs(t, failed[0].Err, ErrDeliveryTimeout)
	})

	t.Run("context 取消", func(t *testing.T) {
		p := &fakeProducer{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, failed := SendKafkaJobs(ctx, p, []*KafkaJob{job("silent")}, time.Minute)
		require.Len(t, failed, 1)
		assert.ErrorIs(t, failed[0].Err, context.Canceled)
	})

	t.Run("空任务", func(t *testing.T) {
		ok, failed := SendKafkaJobs(context.Background(), &fakeProducer{}, nil, time.Second)
		assert.Empty(t, ok)
		assert.Empty(t, failed)
	})
}

func TestPartitionFor(t *testing.T) {
	key := make([]byte, 64)
	for i := range key {
		key[i] = byte(i * 7)
	}

	assert.Equal(t, int32(0), PartitionFor(key, 1))
	assert.Equal(t, int32(0), PartitionFor(key[:10], 8))
	// 2 的幂走低位掩码
	assert.Equal(t, int32(key[27]&7), PartitionFor(key, 8))

	for _, n := range []int32{3, 5, 12, 32} {
		p := PartitionFor(key, n)
		assert.GreaterOrEqual(t, p, int32(0))
		assert.Less(t, p, n)
		assert.Equal(t, p, PartitionFor(key, n), "相同 key 分区稳定")
	}
}
