package driftv2

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEncoding    = errors.New("driftv2: invalid instruction encoding")
	ErrUnknownInstruction = errors.New("driftv2: unknown instruction")
)

// UnknownInstructionError 携带未识别的 discriminator，errors.Is(err, ErrUnknownInstruction) 成立
type UnknownInstructionError struct {
	Discriminator Discriminator
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("%s: discriminator=0x%016x", ErrUnknownInstruction, uint64(e.Discriminator))
}

func (e *UnknownInstructionError) Unwrap() error {
	return ErrUnknownInstruction
}

// invalidEncoding 统一包装为 ErrInvalidEncoding，保留具体原因
func invalidEncoding(name string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidEncoding, name, cause)
}
