package consts

import "runtime"

// CpuCount 表示逻辑 CPU 核心数，用于控制并发任务调度上限
var CpuCount = runtime.NumCPU()

const (
	// LookupTableMetaSize 地址查找表账户头部长度，其后为连续的 32 字节地址
	LookupTableMetaSize = 56

	// InstructionDiscriminatorSize Anchor 指令前缀长度
	InstructionDiscriminatorSize = 8
)
