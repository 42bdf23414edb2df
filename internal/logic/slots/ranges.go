package slots

import (
	"slices"
	"sort"
)

// MaxRangeSize getBlocks 单次查询的最大跨度
const MaxRangeSize = 10000

// Range 闭区间 [From, To]
type Range struct {
	From uint64
	To   uint64
}

func (r Range) Len() uint64 {
	return r.To - r.From + 1
}

// Split 将 [from, to] 按 MaxRangeSize 切段；from > to 时返回 nil
func Split(from, to uint64) []Range {
	if from > to {
		return nil
	}
	out := make([]Range, 0, (to-from)/MaxRangeSize+1)
	for {
		maxTo := from + MaxRangeSize - 1
		if to <= maxTo {
			return append(out, Range{From: from, To: to})
		}
		out = append(out, Range{From: from, To: maxTo})
		from = maxTo + 1
	}
}

// Merge 拆分并合并区间：先按 MaxRangeSize 切段，再按 From 排序，
// 相邻或重叠的段尽量合并，合并后每段仍不超过 MaxRangeSize。
// 不相邻的段之间的空隙不会被合并进来。
func Merge(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	parts := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, Split(r.From, r.To)...)
	}
	if len(parts) == 0 {
		return nil
	}
	sort.Slice(parts, func(i, j int) bool {
		if parts[i].From == parts[j].From {
			return parts[i].To < parts[j].To
		}
		return parts[i].From < parts[j].From
	})

	merged := make([]Range, 1, len(parts))
	merged[0] = parts[0]
	for _, r := range parts[1:] {
		last := &merged[len(merged)-1]
		switch {
		case r.To <= last.To:
			// 已被覆盖
		case r.From > last.To+1:
			merged = append(merged, r)
		case r.To <= last.From+MaxRangeSize-1:
			last.To = r.To
		default:
			maxTo := last.From + MaxRangeSize - 1
			last.To = maxTo
			merged = append(merged, Range{From: maxTo + 1, To: r.To})
		}
	}
	return merged
}

// Missing 返回 [from, to] 中不在 confirmed 里的 slot，confirmed 可以无序
func Missing(from, to uint64, confirmed []uint64) []uint64 {
	if from > to {
		return nil
	}
	if !slices.IsSorted(confirmed) {
		confirmed = slices.Clone(confirmed)
		slices.Sort(confirmed)
	}

	var missing []uint64
	next := from
	for _, slot := range confirmed {
		if slot < next {
			continue
		}
		if slot > to {
			break
		}
		for ; next < slot; next++ {
			missing = append(missing, next)
		}
		if slot == to {
			return missing
		}
		next = slot + 1
	}
	for s := next; ; s++ {
		missing = append(missing, s)
		if s == to {
			break
		}
	}
	return missing
}

// Contains 二分查找 slot 是否落在已排序且互不重叠的区间内
func Contains(ranges []Range, slot uint64) bool {
	i := sort.Search(len(ranges), func(i int) bool {
		return ranges[i].From > slot
	})
	if i == 0 {
		return false
	}
	r := ranges[i-1]
	return slot >= r.From && slot <= r.To
}
