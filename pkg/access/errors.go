package access

import "errors"

// Access layer errors.
var (
	// ErrDuplicateOpcode is returned by NewCodec when two families declare
	// the same opcode.
	ErrDuplicateOpcode = errors.New("access: duplicate opcode")

	// ErrDuplicateName is returned by NewCodec when two messages share a name.
	ErrDuplicateName = errors.New("access: duplicate message name")

	// ErrUnknownName is returned when encoding by a name that is not
	// registered.
	ErrUnknownName = errors.New("access: unknown message name")

	// ErrOpcodeMismatch is returned when a message carries both an opcode and
	// a name that refer to different definitions.
	ErrOpcodeMismatch = errors.New("access: opcode does not match name")

	// ErrNilMessage is returned when encoding a nil message.
	ErrNilMessage = errors.New("access: nil message")
)
