package utils

import (
	"context"
	"math/rand"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 为了测试上下文取消而定义的任务类型
type TestTaskWithContext struct {
	ID  int
	Ctx context.Context
}

// 定义测试专用的结果类型
type TestTaskProcessResult struct {
	ID     int
	Status string
	Value  int
}

func TestParallelMap(t *testing.T) {
	// 测试空输入
	t.Run("empty input", func(t *testing.T) {
		var emptyInput []int
		result := ParallelMap(emptyInput, 4, func(i int) int {
			return i * 2
		})
		assert.Empty(t, result)
	})

	// 测试单元素输入 - 应该直接处理，不使用并发
	t.Run("single input", func(t *testing.T) {
		result := ParallelMap([]int{42}, 4, func(i int) int {
			return i * 2
		})
		assert.Equal(t, []int{84}, result)
	})

	// 测试多元素输入 - 确保顺序正确
	t.Run("multiple inputs with order", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5}
		result := ParallelMap(input, 3, func(i int) int {
			// 添加随机延迟，测试顺序保持
			time.Sleep(time.Duration(rand.Intn(10)) * time.Millisecond)
			return i * 2
		})
		assert.Equal(t, []int{2, 4, 6, 8, 10}, result)
	})

	// workers 不大于 1 时串行
	t.Run("serial fallback", func(t *testing.T) {
		var current, maxSeen int32
		ParallelMap([]int{1, 2, 3, 4}, 1, func(i int) int {
			c := atomic.AddInt32(&current, 1)
			if c > atomic.LoadInt32(&maxSeen) {
				atomic.StoreInt32(&maxSeen, c)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&current, -1)
			return i
		})
		assert.Equal(t, int32(1), maxSeen)
	})

	// 测试并发执行 - 确保真的是并行处理，且不超过上限
	t.Run("concurrent execution", func(t *testing.T) {
		input := make([]int, 100)
		for i := range input {
			input[i] = i
		}

		var maxConcurrent int32
		var currentConcurrent int32

		ParallelMap(input, 10, func(i int) int {
			current := atomic.AddInt32(&currentConcurrent, 1)
			for {
				m := atomic.LoadInt32(&maxConcurrent)
				if current <= m || atomic.CompareAndSwapInt32(&maxConcurrent, m, current) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&currentConcurrent, -1)
			return i * 2
		})

		assert.GreaterOrEqual(t, maxConcurrent, int32(5))
		assert.LessOrEqual(t, maxConcurrent, int32(10))
	})

	// 测试大量任务
	t.Run("many tasks", func(t *testing.T) {
		const taskCount = 10000
		input := make([]int, taskCount)
		for i := range input {
			input[i] = i
		}

		result := ParallelMap(input, 16, func(i int) int {
			return i * i
		})
		require.Len(t, result, taskCount)
		for i, v := range result {
			if v != i*i {
				t.Fatalf("incorrect result at index %d: expected %d, got %d", i, i*i, v)
			}
		}
	})

	// 测试带有上下文的任务
	t.Run("tasks with context cancellation", func(t *testing.T) {
		parentCtx, parentCancel := context.WithCancel(context.Background())
		defer parentCancel()

		const taskCount = 50
		tasks := make([]TestTaskWithContext, taskCount)
		for i := range tasks {
			tasks[i] = TestTaskWithContext{ID: i, Ctx: parentCtx}
		}

		go func() {
			time.Sleep(50 * time.Millisecond)
			parentCancel()
		}()

		var canceledCount int32
		results := ParallelMap(tasks, 8, func(task TestTaskWithContext) TestTaskProcessResult {
			time.Sleep(time.Duration(30+rand.Intn(40)) * time.Millisecond)
			if task.Ctx.Err() != nil {
				atomic.AddInt32(&canceledCount, 1)
				return TestTaskProcessResult{ID: task.ID, Status: "canceled", Value: -1}
			}
			return TestTaskProcessResult{ID: task.ID, Status: "completed", Value: task.ID * 10}
		})

		require.Len(t, results, taskCount)
		assert.Positive(t, canceledCount, "应该有任务被取消")
		for i, result := range results {
			assert.Equal(t, i, result.ID)
			if result.Status == "completed" {
				assert.Equal(t, i*10, result.Value)
			} else {
				assert.True(t, slices.Contains([]string{"canceled"}, result.Status))
			}
		}
	})
}
