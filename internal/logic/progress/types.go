package progress

// SlotStatus slot 的处理状态，数值即 Redis 中保存的值
type SlotStatus int

const (
	SlotUnknown   SlotStatus = 0 // Redis 不存在
	SlotProcessed SlotStatus = 1 // 已处理成功
	SlotFailed    SlotStatus = 2 // 处理失败，回补时需要重试
)

func (s SlotStatus) String() string {
	switch s {
	case SlotProcessed:
		return "processed"
	case SlotFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 进度来源，同时用作指标标签
const (
	SourceGrpc     = "grpc"
	SourceBackfill = "backfill"
)
