package driftv2

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"drift-indexer-sol/internal/consts"

	bin "github.com/gagliardetto/binary"
)

// Decode 按前 8 字节 discriminator 分派并以 Borsh 解码剩余字节。
// 要求完全消费且编码规范（bool / Option 标志只能是 0 或 1），否则返回 ErrInvalidEncoding。
func Decode(data []byte) (ix Instruction, err error) {
	if len(data) < consts.InstructionDiscriminatorSize {
		return nil, fmt.Errorf("%w: data too short: %d bytes", ErrInvalidEncoding, len(data))
	}

	d := Discriminator(binary.BigEndian.Uint64(data[:consts.InstructionDiscriminatorSize]))
	entry, ok := catalog[d]
	if !ok {
		return nil, &UnknownInstructionError{Discriminator: d}
	}

	defer func() {
		if r := recover(); r != nil {
			ix = nil
			err = invalidEncoding(entry.name, fmt.Errorf("panic: %v", r))
		}
	}()

	payload := data[consts.InstructionDiscriminatorSize:]
	args := entry.newArgs()

	dec := bin.NewBorshDecoder(payload)
	if err := dec.Decode(args); err != nil {
		return nil, invalidEncoding(entry.name, err)
	}
	if n := dec.Remaining(); n != 0 {
		return nil, invalidEncoding(entry.name, fmt.Errorf("%d trailing bytes", n))
	}
	if v, ok := args.(validator); ok {
		if err := v.validate(); err != nil {
			return nil, invalidEncoding(entry.name, err)
		}
	}

	// 解码器对 bool / Option 标志宽松处理，重新编码比对以拒绝非规范输入
	canonical, err := bin.MarshalBorsh(args)
	if err != nil {
		return nil, invalidEncoding(entry.name, err)
	}
	if !bytes.Equal(canonical, payload) {
		return nil, invalidEncoding(entry.name, fmt.Errorf("non-canonical encoding"))
	}
	return args, nil
}

// Encode 输出 discriminator + Borsh 负载，与 Decode 互逆
func Encode(ix Instruction) ([]byte, error) {
	if ix == nil {
		return nil, fmt.Errorf("driftv2: nil instruction")
	}
	if !ix.Discriminator().Known() {
		return nil, &UnknownInstructionError{Discriminator: ix.Discriminator()}
	}
	payload, err := bin.MarshalBorsh(ix)
	if err != nil {
		return nil, fmt.Errorf("driftv2: encode %s: %w", ix.Name(), err)
	}

	out := make([]byte, consts.InstructionDiscriminatorSize, consts.InstructionDiscriminatorSize+len(payload))
	binary.BigEndian.PutUint64(out, uint64(ix.Discriminator()))
	return append(out, payload...), nil
}
