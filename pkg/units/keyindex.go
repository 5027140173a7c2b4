package units

import (
	"fmt"
	"slices"

	"github.com/backkem/btmesh/pkg/schema"
)

// MaxKeyIndex is the largest 12-bit global key index.
const MaxKeyIndex = 0xFFF

// DoubleKeyIndex packs two 12-bit key indexes into three little-endian
// bytes. first occupies the low 12 bits. The fields are merged into the
// enclosing structure.
func DoubleKeyIndex(first, second string) schema.Field {
	return schema.Embed(schema.PackLE(3,
		schema.Bit(second, 12),
		schema.Bit(first, 12),
	))
}

// SingleKeyIndex is one 12-bit key index in two little-endian bytes, merged
// into the enclosing structure.
func SingleKeyIndex(name string) schema.Field {
	return schema.Embed(schema.PackLE(2,
		schema.Bit("_rfu", 4),
		schema.Bit(name, 12),
	))
}

// Common key index fields.
var (
	NetAndAppKeyIndex = DoubleKeyIndex("net_key_index", "app_key_index")
	NetKeyIndex       = SingleKeyIndex("net_key_index")
	AppKeyIndex       = SingleKeyIndex("app_key_index")
)

// KeyIndices is a packed list of key indexes running to the end of the
// message: pairs in three bytes, and a trailing odd index in two. It decodes
// to a sorted []int.
var KeyIndices schema.Node = keyIndices{}

type keyIndices struct{}

func (keyIndices) Kind() schema.Kind   { return schema.KindCustom }
func (keyIndices) ConsumesRest() bool { return true }

func (keyIndices) Describe() schema.Container {
	return schema.Container{
		"kind":    schema.KindCustom.String(),
		"adapter": "key_indices",
		"greedy":  true,
	}
}

func (keyIndices) Decode(r *schema.Reader, sc *schema.Scope) (any, error) {
	out := []int{}
	for r.Len() > 0 {
		if r.Len() == 2 {
			v, _ := r.Uint(2, false)
			out = append(out, int(v&MaxKeyIndex))
			break
		}
		v, err := r.Uint(3, false)
		if err != nil {
			return nil, err
		}
		out = append(out, int(v>>12), int(v&MaxKeyIndex))
	}
	slices.Sort(out)
	return out, nil
}

func (keyIndices) Encode(w *schema.Writer, v any, sc *schema.Scope) error {
	items, err := schema.ToSlice(v)
	if err != nil {
		return err
	}
	idx := make([]int64, len(items))
	for i, item := range items {
		n, err := schema.ToInt(item)
		if err != nil {
			return err
		}
		if n < 0 || n > MaxKeyIndex {
			return fmt.Errorf("%w: key index %#x", schema.ErrInvalidValue, n)
		}
		idx[i] = n
	}
	slices.Sort(idx)

	for len(idx) > 1 {
		w.PutUint(uint64(idx[0]<<12|idx[1]), 3, false)
		idx = idx[2:]
	}
	if len(idx) == 1 {
		w.PutUint(uint64(idx[0]), 2, false)
	}
	return nil
}
