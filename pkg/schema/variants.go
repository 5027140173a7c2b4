package schema

import (
	"fmt"
)

// Variants is an ordered group of alternative layouts for the same data.
//
// Decode accepts the first candidate that parses and consumes every
// remaining byte. Encode accepts the first candidate that encodes without
// error. Candidates must be ordered from most fields to fewest.
//
// A group built with Select is not exhaustive: a candidate may stop before
// the end of the input, so the group can be an element of a sequence.
type Variants struct {
	candidates []Node
	exhaustive bool
}

// OneOf creates a variant group. It panics if a candidate declares more
// fields than the one before it.
func OneOf(candidates ...Node) *Variants {
	v := newVariants(candidates)
	v.exhaustive = true
	return v
}

// Select creates a non-exhaustive variant group. Decode accepts the first
// candidate that parses, whatever input remains after it.
func Select(candidates ...Node) *Variants {
	return newVariants(candidates)
}

func newVariants(candidates []Node) *Variants {
	if len(candidates) == 0 {
		panic("schema: variant group needs at least one candidate")
	}
	for i := 1; i < len(candidates); i++ {
		prev, cur := fieldCount(candidates[i-1]), fieldCount(candidates[i])
		if cur > prev {
			panic(fmt.Sprintf("schema: variant %d has %d fields, more than variant %d with %d", i, cur, i-1, prev))
		}
	}
	return &Variants{candidates: candidates}
}

// Optional is shorthand for the common "all fields" / "required fields only"
// pair: the first candidate is required followed by optional, the second is
// required alone.
func Optional(required []Field, optional ...Field) *Variants {
	full := append(append([]Field{}, required...), optional...)
	return OneOf(NewStruct(full...), NewStruct(required...))
}

func (v *Variants) Kind() Kind { return KindVariants }

// Candidates returns the candidates in trial order.
func (v *Variants) Candidates() []Node { return v.candidates }

func (v *Variants) Children() []Child {
	out := make([]Child, len(v.candidates))
	for i, c := range v.candidates {
		out[i] = Child{Name: fmt.Sprintf("%d", i), Node: c}
	}
	return out
}

// Exhaustive reports whether a candidate must consume the rest of the input.
func (v *Variants) Exhaustive() bool { return v.exhaustive }

func (v *Variants) ConsumesRest() bool { return v.exhaustive }

func (v *Variants) Decode(r *Reader, sc *Scope) (any, error) {
	var first error
	for _, c := range v.candidates {
		f := r.Fork()
		val, err := c.Decode(f, sc)
		if err == nil && v.exhaustive && f.Len() != 0 {
			err = fmt.Errorf("%w: %d bytes left", ErrTrailingBytes, f.Len())
		}
		if err == nil {
			r.Join(f)
			return val, nil
		}
		if first == nil {
			first = err
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrNoMatchingVariant, first)
}

func (v *Variants) Encode(w *Writer, val any, sc *Scope) error {
	var first error
	for _, c := range v.candidates {
		tmp := NewWriter()
		err := c.Encode(tmp, val, sc)
		if err == nil {
			w.Write(tmp.Bytes())
			return nil
		}
		if first == nil {
			first = err
		}
	}
	return fmt.Errorf("%w: %w", ErrNoMatchingVariant, first)
}
