package extractor

import "errors"

var (
	ErrSkippedTransaction     = errors.New("transaction skipped")
	ErrMissingSignature       = errors.New("transaction has no signature")
	ErrUnsupportedMessage     = errors.New("unsupported message shape")
	ErrAccountIndexOutOfRange = errors.New("account index out of range")
	ErrInvalidStackHeight     = errors.New("invalid stack height")
	ErrInnerInstructionIndex  = errors.New("inner instruction set index out of range")
)
