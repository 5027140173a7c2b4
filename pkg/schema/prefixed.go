package schema

import (
	"fmt"
)

// Prefixed is a value preceded by its length in bytes. The inner node reads
// from exactly that many bytes and must consume all of them.
type Prefixed struct {
	size  *Int
	inner Node
}

// LengthPrefixed returns a node that stores inner behind a size prefix.
// A greedy inner node such as GreedyString or GreedyBytes is the usual
// choice.
func LengthPrefixed(size *Int, inner Node) *Prefixed {
	return &Prefixed{size: size, inner: inner}
}

func (n *Prefixed) Kind() Kind { return KindPrefixed }

func (n *Prefixed) Children() []Child {
	return []Child{{Name: "", Node: n.inner}}
}

func (n *Prefixed) Decode(r *Reader, sc *Scope) (any, error) {
	raw, err := n.size.Decode(r, sc)
	if err != nil {
		return nil, err
	}
	length, err := ToInt(raw)
	if err != nil {
		return nil, err
	}
	sub, err := r.Sub(int(length))
	if err != nil {
		return nil, err
	}
	v, err := n.inner.Decode(sub, sc)
	if err != nil {
		return nil, err
	}
	if sub.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes left in prefixed value", ErrTrailingBytes, sub.Len())
	}
	return v, nil
}

func (n *Prefixed) Encode(w *Writer, v any, sc *Scope) error {
	tmp := NewWriter()
	if err := n.inner.Encode(tmp, v, sc); err != nil {
		return err
	}
	if err := n.size.Encode(w, len(tmp.Bytes()), sc); err != nil {
		return err
	}
	w.Write(tmp.Bytes())
	return nil
}

// CountPrefixed returns a sequence preceded by its element count.
func CountPrefixed(count *Int, elem Node) *PrefixedArray {
	return &PrefixedArray{count: count, elem: elem}
}

// PrefixedArray is a sequence whose element count is stored in front of it.
type PrefixedArray struct {
	count *Int
	elem  Node
}

func (n *PrefixedArray) Kind() Kind { return KindPrefixed }

// Elem returns the element node.
func (n *PrefixedArray) Elem() Node { return n.elem }

func (n *PrefixedArray) Children() []Child {
	return []Child{{Name: "[]", Node: n.elem}}
}

func (n *PrefixedArray) Decode(r *Reader, sc *Scope) (any, error) {
	raw, err := n.count.Decode(r, sc)
	if err != nil {
		return nil, err
	}
	count, err := ToInt(raw)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, count)
	for i := 0; i < int(count); i++ {
		v, err := n.elem.Decode(r, sc)
		if err != nil {
			return nil, wrapField(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (n *PrefixedArray) Encode(w *Writer, v any, sc *Scope) error {
	items, err := ToSlice(v)
	if err != nil {
		return err
	}
	if err := n.count.Encode(w, len(items), sc); err != nil {
		return err
	}
	for i, item := range items {
		if err := n.elem.Encode(w, item, sc); err != nil {
			return wrapField(fmt.Sprintf("[%d]", i), err)
		}
	}
	return nil
}
