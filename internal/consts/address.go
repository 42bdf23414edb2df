package consts

import "drift-indexer-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	//  Programs
	SystemProgramStr             = "11111111111111111111111111111111"
	AddressLookupTableProgramStr = "AddressLookupTab1e1111111111111111111111111"

	// Drift Protocol v2
	DriftV2ProgramStr = "dRiftyHA39MWEi3m9aunc5MzRF1JYuBsbn6VPcn33UH"
)

// 公钥形式的地址常量，用于链上字节比对
var (
	DriftV2Program = types.PubkeyFromBase58(DriftV2ProgramStr)
)
