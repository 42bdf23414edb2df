package consts

// GrpcAccountInclude 用于 Yellowstone gRPC 区块订阅过滤器，
// 只推送涉及 Drift v2 程序的交易
var GrpcAccountInclude = []string{
	DriftV2ProgramStr,
}
