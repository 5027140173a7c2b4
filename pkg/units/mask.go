package units

import (
	"fmt"

	"github.com/backkem/btmesh/pkg/schema"
)

// MaskAdapter decodes a bit mask to the sorted positions of its set bits.
// Position 0 is the least significant bit.
type MaskAdapter struct {
	width int
}

// Mask returns an adapter for a width-bit mask.
func Mask(width int) MaskAdapter {
	return MaskAdapter{width: width}
}

func (a MaskAdapter) String() string {
	return fmt.Sprintf("mask(%d)", a.width)
}

func (a MaskAdapter) Decode(raw int64) (any, error) {
	out := []int{}
	for i := 0; i < a.width; i++ {
		if raw&(1<<i) != 0 {
			out = append(out, i)
		}
	}
	return out, nil
}

func (a MaskAdapter) Encode(v any) (int64, error) {
	items, err := schema.ToSlice(v)
	if err != nil {
		return 0, err
	}
	var raw int64
	for _, item := range items {
		p, err := schema.ToInt(item)
		if err != nil {
			return 0, err
		}
		if p < 0 || p >= int64(a.width) {
			return 0, fmt.Errorf("%w: bit %d outside %d-bit mask", schema.ErrInvalidValue, p, a.width)
		}
		raw |= 1 << p
	}
	return raw, nil
}
