package schema

import (
	"fmt"
)

// Repeated is a homogeneous sequence. Its length is fixed, taken from a
// sibling field, or runs to the end of the input.
type Repeated struct {
	elem     Node
	count    int
	countKey string
	toEnd    bool
}

// Array returns a sequence of exactly n elements.
func Array(n int, elem Node) *Repeated {
	return &Repeated{elem: elem, count: n}
}

// Greedy returns a sequence that consumes all remaining input. Every
// element must decode cleanly.
func Greedy(elem Node) *Repeated {
	return &Repeated{elem: elem, toEnd: true}
}

// Counted returns a sequence whose length is the value of the sibling field
// named key.
func Counted(key string, elem Node) *Repeated {
	return &Repeated{elem: elem, countKey: key}
}

func (n *Repeated) Kind() Kind { return KindRepeated }

// Elem returns the element node.
func (n *Repeated) Elem() Node { return n.elem }

// Count describes the sequence length: a fixed count, the name of the
// counting field, or -1 for sequences that run to the end of the input.
func (n *Repeated) Count() (fixed int, key string) {
	if n.toEnd {
		return -1, ""
	}
	return n.count, n.countKey
}

func (n *Repeated) Children() []Child {
	return []Child{{Name: "[]", Node: n.elem}}
}

func (n *Repeated) ConsumesRest() bool { return n.toEnd }

func (n *Repeated) length(sc *Scope) (int, error) {
	if n.countKey == "" {
		return n.count, nil
	}
	v, ok := sc.Lookup(n.countKey)
	if !ok {
		return 0, fmt.Errorf("%w: count %q", ErrMissingField, n.countKey)
	}
	c, err := ToInt(v)
	if err != nil {
		return 0, err
	}
	return int(c), nil
}

func (n *Repeated) Decode(r *Reader, sc *Scope) (any, error) {
	out := []any{}
	if n.toEnd {
		for i := 0; r.Len() > 0; i++ {
			v, err := n.elem.Decode(r, sc)
			if err != nil {
				return nil, wrapField(fmt.Sprintf("[%d]", i), err)
			}
			out = append(out, v)
		}
		return out, nil
	}

	count, err := n.length(sc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		v, err := n.elem.Decode(r, sc)
		if err != nil {
			return nil, wrapField(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (n *Repeated) Encode(w *Writer, v any, sc *Scope) error {
	items, err := ToSlice(v)
	if err != nil {
		return err
	}
	if !n.toEnd {
		count, err := n.length(sc)
		if err != nil {
			return err
		}
		if len(items) != count {
			return fmt.Errorf("%w: expected %d elements, got %d", ErrInvalidValue, count, len(items))
		}
	}
	for i, item := range items {
		if err := n.elem.Encode(w, item, sc); err != nil {
			return wrapField(fmt.Sprintf("[%d]", i), err)
		}
	}
	return nil
}

// LengthOf is an integer field whose value is the length of a sibling
// sequence. On decode it behaves like inner; on encode the value is computed.
func LengthOf(key string, inner *Int) Node {
	return &computed{key: key, inner: inner}
}

type computed struct {
	key   string
	inner *Int
}

func (n *computed) Kind() Kind { return KindComputed }

// Source returns the name of the sequence whose length is stored.
func (n *computed) Source() string { return n.key }

func (n *computed) Children() []Child {
	return []Child{{Name: "", Node: n.inner}}
}

func (n *computed) Decode(r *Reader, sc *Scope) (any, error) {
	return n.inner.Decode(r, sc)
}

func (n *computed) Encode(w *Writer, v any, sc *Scope) error {
	count, err := n.resolve(v, v != nil, sc)
	if err != nil {
		return err
	}
	return n.inner.Encode(w, count, sc)
}

// resolve returns the length of the source sequence. A supplied value must
// agree with it.
func (n *computed) resolve(v any, supplied bool, sc *Scope) (int, error) {
	seq, ok := sc.Lookup(n.key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, n.key)
	}
	items, err := ToSlice(seq)
	if err != nil {
		return 0, err
	}
	if supplied {
		want, err := ToInt(v)
		if err != nil {
			return 0, err
		}
		if int(want) != len(items) {
			return 0, fmt.Errorf("%w: length %d does not match %d elements of %q",
				ErrInvalidValue, want, len(items), n.key)
		}
	}
	return len(items), nil
}
