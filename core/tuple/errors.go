package tuple

import "errors"

var (
	ErrEmpty          = errors.New("message has no slots")
	ErrIllegalElement = errors.New("illegal message element")
	ErrArity          = errors.New("arity mismatch")
	ErrUnknownType    = errors.New("unknown slot type")
)
