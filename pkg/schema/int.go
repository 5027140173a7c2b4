package schema

import (
	"fmt"
	"slices"
)

// Adapter converts between a raw wire integer and a domain value.
type Adapter interface {
	Decode(raw int64) (any, error)
	Encode(v any) (int64, error)
}

// Validator checks a decoded or to-be-encoded domain value.
type Validator func(v any) error

// Int is a fixed-width integer leaf, optionally transformed by an Adapter.
type Int struct {
	size       int
	signed     bool
	bigEndian  bool
	adapter    Adapter
	validators []Validator
}

// Integer leaves. All are little-endian.
var (
	U8  = Uint(1)
	U16 = Uint(2)
	U24 = Uint(3)
	U32 = Uint(4)
	U40 = Uint(5)
	U48 = Uint(6)
	S8  = Sint(1)
	S16 = Sint(2)
	S32 = Sint(4)
)

// Uint returns an unsigned little-endian integer of size bytes.
func Uint(size int) *Int {
	if size < 1 || size > 8 {
		panic(fmt.Sprintf("schema: invalid integer size %d", size))
	}
	return &Int{size: size}
}

// Sint returns a signed little-endian integer of size bytes.
func Sint(size int) *Int {
	n := Uint(size)
	n.signed = true
	return n
}

// BigEndian returns a copy of n that uses big-endian byte order.
func (n *Int) BigEndian() *Int {
	c := *n
	c.bigEndian = true
	return &c
}

// As returns a copy of n that passes values through a.
func (n *Int) As(a Adapter) *Int {
	c := *n
	c.adapter = a
	return &c
}

// Check returns a copy of n with additional validators.
func (n *Int) Check(vs ...Validator) *Int {
	c := *n
	c.validators = append(slices.Clone(n.validators), vs...)
	return &c
}

func (n *Int) Kind() Kind { return KindInt }

// Size returns the wire width in bytes.
func (n *Int) Size() int { return n.size }

// Signed reports whether the integer is two's complement.
func (n *Int) Signed() bool { return n.signed }

// Adapter returns the adapter, or nil.
func (n *Int) Adapter() Adapter { return n.adapter }

func (n *Int) Decode(r *Reader, sc *Scope) (any, error) {
	u, err := r.Uint(n.size, n.bigEndian)
	if err != nil {
		return nil, err
	}
	raw := int64(u)
	if n.signed {
		raw = signExtend(u, n.size*8)
	}
	return decodeRaw(raw, n.adapter, n.validators)
}

func (n *Int) Encode(w *Writer, v any, sc *Scope) error {
	raw, err := encodeRaw(v, n.adapter, n.validators)
	if err != nil {
		return err
	}
	if err := checkRange(raw, n.size*8, n.signed); err != nil {
		return err
	}
	w.PutUint(uint64(raw), n.size, n.bigEndian)
	return nil
}

func decodeRaw(raw int64, a Adapter, validators []Validator) (any, error) {
	var v any = int(raw)
	if a != nil {
		var err error
		if v, err = a.Decode(raw); err != nil {
			return nil, err
		}
	}
	if err := validate(v, validators); err != nil {
		return nil, err
	}
	return v, nil
}

func encodeRaw(v any, a Adapter, validators []Validator) (int64, error) {
	if err := validate(v, validators); err != nil {
		return 0, err
	}
	if a != nil {
		return a.Encode(v)
	}
	return ToInt(v)
}

func validate(v any, validators []Validator) error {
	if v == nil {
		return nil
	}
	for _, check := range validators {
		if err := check(v); err != nil {
			return fmt.Errorf("%w: %v", ErrFieldValidationFailed, err)
		}
	}
	return nil
}

func signExtend(u uint64, bits int) int64 {
	shift := 64 - bits
	return int64(u<<shift) >> shift
}

func checkRange(raw int64, bits int, signed bool) error {
	if signed {
		lo, hi := -(int64(1) << (bits - 1)), int64(1)<<(bits-1)-1
		if raw < lo || raw > hi {
			return fmt.Errorf("%w: %d does not fit in %d signed bits", ErrInvalidValue, raw, bits)
		}
		return nil
	}
	if raw < 0 || (bits < 64 && uint64(raw) >= uint64(1)<<bits) {
		return fmt.Errorf("%w: %d does not fit in %d bits", ErrInvalidValue, raw, bits)
	}
	return nil
}
