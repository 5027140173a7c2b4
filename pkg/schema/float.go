package schema

import (
	"fmt"
	"math"
)

// Float is an IEEE 754 little-endian leaf of 4 or 8 bytes. It decodes to
// float64.
type Float struct {
	size int
}

// Floating point leaves.
var (
	F32 = &Float{size: 4}
	F64 = &Float{size: 8}
)

func (n *Float) Kind() Kind { return KindFloat }

// Size returns the width in bytes.
func (n *Float) Size() int { return n.size }

func (n *Float) Decode(r *Reader, sc *Scope) (any, error) {
	u, err := r.Uint(n.size, false)
	if err != nil {
		return nil, err
	}
	if n.size == 4 {
		return float64(math.Float32frombits(uint32(u))), nil
	}
	return math.Float64frombits(u), nil
}

func (n *Float) Encode(w *Writer, v any, sc *Scope) error {
	f, err := ToFloat(v)
	if err != nil {
		return err
	}
	if n.size == 4 {
		if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return fmt.Errorf("%w: %v overflows a 32-bit float", ErrInvalidValue, f)
		}
		w.PutUint(uint64(math.Float32bits(float32(f))), 4, false)
		return nil
	}
	w.PutUint(math.Float64bits(f), 8, false)
	return nil
}
