package units

import (
	"fmt"

	"github.com/backkem/btmesh/pkg/schema"
)

// BitListNode is a bitmap decoded to the sorted positions of its set bits.
// Position 0 is the most significant bit of the first byte.
type BitListNode struct {
	size int
}

// BitList returns a bitmap of size bytes.
func BitList(size int) *BitListNode {
	return &BitListNode{size: size}
}

func (n *BitListNode) Kind() schema.Kind { return schema.KindCustom }

func (n *BitListNode) Describe() schema.Container {
	return schema.Container{
		"kind":    schema.KindCustom.String(),
		"adapter": "bit_list",
		"size":    n.size,
	}
}

func (n *BitListNode) Decode(r *schema.Reader, sc *schema.Scope) (any, error) {
	b, err := r.Read(n.size)
	if err != nil {
		return nil, err
	}
	out := []int{}
	for i := 0; i < n.size*8; i++ {
		if b[i/8]&(0x80>>(i%8)) != 0 {
			out = append(out, i)
		}
	}
	return out, nil
}

func (n *BitListNode) Encode(w *schema.Writer, v any, sc *schema.Scope) error {
	items, err := schema.ToSlice(v)
	if err != nil {
		return err
	}
	buf := make([]byte, n.size)
	for _, item := range items {
		bit, err := schema.ToInt(item)
		if err != nil {
			return err
		}
		if bit < 0 || bit >= int64(n.size*8) {
			return fmt.Errorf("%w: bit %d outside %d-byte list", schema.ErrInvalidValue, bit, n.size)
		}
		buf[bit/8] |= 0x80 >> (bit % 8)
	}
	w.Write(buf)
	return nil
}
