package resolver

import (
	"context"
	"errors"
	"fmt"

	"drift-indexer-sol/internal/logic/domain"

	"golang.org/x/sync/errgroup"
)

// ErrAccountResolution 查找表无法获取、格式错误或下标越界
var ErrAccountResolution = errors.New("account resolution failed")

// Resolver 展开 v0 交易的地址查找表引用，本身不做重试与缓存
type Resolver struct {
	fetcher     AccountFetcher
	concurrency int
}

// NewResolver concurrency <= 0 表示不限制并发
func NewResolver(fetcher AccountFetcher, concurrency int) *Resolver {
	return &Resolver{fetcher: fetcher, concurrency: concurrency}
}

// Resolve 生成完整账户表，顺序为：
//  1. 静态账户
//  2. loaded.Writable，loaded.Readonly
//  3. 各查找表引用的可写地址（按引用顺序）
//  4. 各查找表引用的只读地址（按引用顺序）
func (r *Resolver) Resolve(
	ctx context.Context,
	static []string,
	loaded *domain.LoadedAddresses,
	directives []domain.LookupDirective,
) ([]string, error) {
	tables, err := r.fetchTables(ctx, directives)
	if err != nil {
		return nil, err
	}

	total := len(static)
	if loaded != nil {
		total += len(loaded.Writable) + len(loaded.Readonly)
	}
	for _, d := range directives {
		total += len(d.WritableIndexes) + len(d.ReadonlyIndexes)
	}

	accounts := make([]string, 0, total)
	accounts = append(accounts, static...)
	if loaded != nil {
		accounts = append(accounts, loaded.Writable...)
		accounts = append(accounts, loaded.Readonly...)
	}
	for _, d := range directives {
		selected, err := tables[d.TableKey].Select(d.WritableIndexes)
		if err != nil {
			return nil, resolutionError(d.TableKey, err)
		}
		accounts = append(accounts, selected...)
	}
	for _, d := range directives {
		selected, err := tables[d.TableKey].Select(d.ReadonlyIndexes)
		if err != nil {
			return nil, resolutionError(d.TableKey, err)
		}
		accounts = append(accounts, selected...)
	}
	return accounts, nil
}

// fetchTables 每个不同的表地址只获取一次，任一失败即取消其余请求，并等待全部返回
func (r *Resolver) fetchTables(ctx context.Context, directives []domain.LookupDirective) (map[string]*LookupTable, error) {
	if len(directives) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(directives))
	seen := make(map[string]struct{}, len(directives))
	for _, d := range directives {
		if _, ok := seen[d.TableKey]; ok {
			continue
		}
		seen[d.TableKey] = struct{}{}
		keys = append(keys, d.TableKey)
	}

	fetched := make([]*LookupTable, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i, key := range keys {
		g.Go(func() error {
			data, err := r.fetcher.FetchAccount(gctx, key)
			if err != nil {
				return resolutionError(key, err)
			}
			table, err := ParseLookupTable(data)
			if err != nil {
				return resolutionError(key, err)
			}
			fetched[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tables := make(map[string]*LookupTable, len(keys))
	for i, key := range keys {
		tables[key] = fetched[i]
	}
	return tables, nil
}

func resolutionError(tableKey string, cause error) error {
	return fmt.Errorf("%w: table=%s: %w", ErrAccountResolution, tableKey, cause)
}
