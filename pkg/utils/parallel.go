package utils

import "sync"

// ParallelMap 用最多 workers 个协程对 items 逐个执行 fn，结果顺序与输入一致。
// 单个元素或 workers<=1 时在当前协程执行。
func ParallelMap[T any, R any](items []T, workers int, fn func(T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if workers <= 1 || len(items) == 1 {
		for i, item := range items {
			results[i] = fn(item)
		}
		return results
	}
	workers = min(workers, len(items))

	indexes := make(chan int, len(items))
	for i := range items {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = fn(items[i])
			}
		}()
	}
	wg.Wait()
	return results
}
