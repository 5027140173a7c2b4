package opcode

import (
	"errors"

	"github.com/backkem/btmesh/pkg/schema"
)

var (
	// ErrTruncatedInput is returned when fewer octets remain than the opcode
	// class requires. It matches schema.ErrTruncatedInput.
	ErrTruncatedInput = schema.ErrTruncatedInput

	// ErrReservedOpcode is returned for the reserved single-octet opcode 0x7F.
	ErrReservedOpcode = errors.New("opcode: reserved opcode")

	// ErrInvalidOpcode is returned when a value cannot be represented in any
	// opcode class.
	ErrInvalidOpcode = errors.New("opcode: invalid opcode")
)
