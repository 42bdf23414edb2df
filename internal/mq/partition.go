package mq

// PartitionFor 取签名中固定位置的字节决定分区，同一交易的消息落在同一分区。
// 非加密哈希，只求分布均匀。
func PartitionFor(key []byte, partitions int32) int32 {
	if len(key) < 28 || partitions <= 1 {
		return 0
	}
	switch partitions {
	case 2, 4, 8, 16:
		return int32(key[27]) & (partitions - 1)
	}
	hash := uint32(key[7])<<24 | uint32(key[15])<<16 | uint32(key[19])<<8 | uint32(key[27])
	return int32(hash % uint32(partitions))
}
