// Package opcode implements the Bluetooth Mesh Access-layer opcode format.
//
// An opcode is 1, 2 or 3 octets long. The length is derived from the two
// most significant bits of the first octet:
//
//	0x         1 octet  (0x00-0x7E, 0x7F is reserved)
//	10         2 octets (0x8000-0xBFFF), big-endian
//	11         3 octets (0xC00000-0xFFFFFF), big-endian, low 16 bits carry a company ID
package opcode

import (
	"fmt"
)

// Opcode is an Access-layer opcode value.
type Opcode uint32

// Reserved is the single-octet opcode value reserved for future use.
const Reserved Opcode = 0x7F

// Opcode value limits.
const (
	MaxSingleOctet = 0x7F
	MaxDoubleOctet = 0xFFFF
	MaxTripleOctet = 0xFFFFFF
)

// Len returns the number of octets the opcode occupies on the wire.
// It returns 0 for values that cannot be encoded.
func (o Opcode) Len() int {
	switch {
	case o > MaxTripleOctet:
		return 0
	case o > MaxDoubleOctet:
		if o < 0xC00000 {
			return 0
		}
		return 3
	case o > 0xFF:
		if o < 0x8000 || o > 0xBFFF {
			return 0
		}
		return 2
	case o >= 0x80:
		return 0
	default:
		return 1
	}
}

// IsValid reports whether the opcode can be encoded.
func (o Opcode) IsValid() bool {
	return o != Reserved && o.Len() != 0
}

// IsVendor reports whether the opcode is a 3-octet vendor opcode.
func (o Opcode) IsVendor() bool {
	return o.Len() == 3
}

// CompanyID returns the company identifier carried by a vendor opcode.
// The two low octets are transmitted little-endian after the first octet.
func (o Opcode) CompanyID() uint16 {
	if !o.IsVendor() {
		return 0
	}
	return uint16(o&0xFF)<<8 | uint16(o>>8&0xFF)
}

// String returns the opcode as a hex string sized to its wire length.
func (o Opcode) String() string {
	switch o.Len() {
	case 1:
		return fmt.Sprintf("0x%02X", uint32(o))
	case 2:
		return fmt.Sprintf("0x%04X", uint32(o))
	default:
		return fmt.Sprintf("0x%06X", uint32(o))
	}
}

// Decode reads an opcode from the start of data and returns it with the
// remaining bytes.
func Decode(data []byte) (Opcode, []byte, error) {
	if len(data) < 1 {
		return 0, nil, ErrTruncatedInput
	}

	var n int
	switch data[0] >> 6 {
	case 0b00, 0b01:
		n = 1
	case 0b10:
		n = 2
	default:
		n = 3
	}

	if len(data) < n {
		return 0, nil, fmt.Errorf("%w: need %d octets, have %d", ErrTruncatedInput, n, len(data))
	}

	var op Opcode
	for _, b := range data[:n] {
		op = op<<8 | Opcode(b)
	}

	if op == Reserved {
		return 0, nil, ErrReservedOpcode
	}

	return op, data[n:], nil
}

// Encode returns the wire form of the opcode.
func Encode(o Opcode) ([]byte, error) {
	return AppendEncode(nil, o)
}

// AppendEncode appends the wire form of the opcode to dst.
func AppendEncode(dst []byte, o Opcode) ([]byte, error) {
	if o == Reserved {
		return dst, ErrReservedOpcode
	}

	switch o.Len() {
	case 1:
		return append(dst, byte(o)), nil
	case 2:
		return append(dst, byte(o>>8), byte(o)), nil
	case 3:
		return append(dst, byte(o>>16), byte(o>>8), byte(o)), nil
	}

	return dst, fmt.Errorf("%w: %#x", ErrInvalidOpcode, uint32(o))
}

// Parse parses an opcode from its hex form ("0x8206", "8206").
func Parse(s string) (Opcode, error) {
	var v uint64
	if _, err := fmt.Sscanf(trimHexPrefix(s), "%x", &v); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOpcode, s)
	}
	op := Opcode(v)
	if !op.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOpcode, s)
	}
	return op, nil
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
