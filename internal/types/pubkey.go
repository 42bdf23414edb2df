package types

import (
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	PubkeySize    = 32
	SignatureSize = 64
)

// Pubkey 账户地址（32 字节），字符串形式为 base58
type Pubkey [PubkeySize]byte

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// MarshalText 使 JSON / YAML 输出为 base58 字符串
func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// TryPubkeyFromBase58 解析 base58 字符串为 Pubkey，失败时返回 error（用于不信任输入路径）
func TryPubkeyFromBase58(s string) (Pubkey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("failed to decode base58 pubkey %q: %w", s, err)
	}
	return TryPubkeyFromBytes(data)
}

// PubkeyFromBase58 仅用于常量初始化，解析失败直接 panic
func PubkeyFromBase58(s string) Pubkey {
	p, err := TryPubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return p
}

// TryPubkeyFromBytes 从 gRPC 原始字节构造 Pubkey，长度必须为 32
func TryPubkeyFromBytes(b []byte) (Pubkey, error) {
	if len(b) != PubkeySize {
		return Pubkey{}, fmt.Errorf("invalid pubkey length: got %d, want %d", len(b), PubkeySize)
	}
	var p Pubkey
	copy(p[:], b)
	return p, nil
}

// EncodePubkeys 将一组原始 32 字节地址转换为 base58 字符串
func EncodePubkeys(raw [][]byte) ([]string, error) {
	result := make([]string, len(raw))
	for i, b := range raw {
		p, err := TryPubkeyFromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		result[i] = p.String()
	}
	return result, nil
}

// Signature 交易签名（64 字节）
type Signature [SignatureSize]byte

func (s Signature) String() string {
	return base58.Encode(s[:])
}

func TrySignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, fmt.Errorf("invalid signature length: got %d, want %d", len(b), SignatureSize)
	}
	var s Signature
	copy(s[:], b)
	return s, nil
}

func TrySignatureFromBase58(str string) (Signature, error) {
	data, err := base58.Decode(str)
	if err != nil {
		return Signature{}, fmt.Errorf("failed to decode base58 signature %q: %w", str, err)
	}
	return TrySignatureFromBytes(data)
}
