package schema

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Raw is a byte-string leaf of fixed length, or of the remaining input when
// the length is negative.
type Raw struct {
	size int
}

// Bytes returns a fixed-length byte string.
func Bytes(n int) *Raw { return &Raw{size: n} }

// GreedyBytes consumes every remaining byte.
var GreedyBytes = &Raw{size: -1}

func (n *Raw) Kind() Kind { return KindBytes }

// Size returns the fixed length, or -1 for a greedy byte string.
func (n *Raw) Size() int { return n.size }

func (n *Raw) ConsumesRest() bool { return n.size < 0 }

func (n *Raw) Decode(r *Reader, sc *Scope) (any, error) {
	if n.size < 0 {
		return bytes.Clone(r.Rest()), nil
	}
	b, err := r.Read(n.size)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

func (n *Raw) Encode(w *Writer, v any, sc *Scope) error {
	b, err := ToBytes(v)
	if err != nil {
		return err
	}
	if n.size >= 0 && len(b) != n.size {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidValue, n.size, len(b))
	}
	w.Write(b)
	return nil
}

// Text is a UTF-8 string leaf. Fixed-length strings are NUL padded.
type Text struct {
	size int
}

// PaddedString returns an n-byte NUL padded string.
func PaddedString(n int) *Text { return &Text{size: n} }

// GreedyString consumes every remaining byte as UTF-8.
var GreedyString = &Text{size: -1}

func (n *Text) Kind() Kind { return KindString }

// Size returns the fixed length, or -1 for a greedy string.
func (n *Text) Size() int { return n.size }

func (n *Text) ConsumesRest() bool { return n.size < 0 }

func (n *Text) Decode(r *Reader, sc *Scope) (any, error) {
	var b []byte
	if n.size < 0 {
		b = r.Rest()
	} else {
		var err error
		if b, err = r.Read(n.size); err != nil {
			return nil, err
		}
		b = bytes.TrimRight(b, "\x00")
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrInvalidValue)
	}
	return string(b), nil
}

func (n *Text) Encode(w *Writer, v any, sc *Scope) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: %T is not a string", ErrInvalidValue, v)
	}
	if n.size < 0 {
		w.Write([]byte(s))
		return nil
	}
	if len(s) > n.size {
		return fmt.Errorf("%w: %q longer than %d bytes", ErrInvalidValue, s, n.size)
	}
	buf := make([]byte, n.size)
	copy(buf, s)
	w.Write(buf)
	return nil
}

// Flag is a one-byte boolean.
var Flag Node = flagNode{}

type flagNode struct{}

func (flagNode) Kind() Kind { return KindFlag }

func (flagNode) Decode(r *Reader, sc *Scope) (any, error) {
	b, err := r.Read(1)
	if err != nil {
		return nil, err
	}
	return b[0] != 0, nil
}

func (flagNode) Encode(w *Writer, v any, sc *Scope) error {
	i, err := ToInt(v)
	if err != nil {
		return err
	}
	if i != 0 {
		return w.WriteByte(1)
	}
	return w.WriteByte(0)
}

// Padding is an n-byte reserved area. It decodes to its raw bytes and
// encodes zeros unless a byte string of the same length is given.
func Padding(n int) Node { return &padding{size: n} }

type padding struct {
	size int
}

func (n *padding) Kind() Kind { return KindPadding }

// Size returns the padding length in bytes.
func (n *padding) Size() int { return n.size }

func (n *padding) Decode(r *Reader, sc *Scope) (any, error) {
	b, err := r.Read(n.size)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

func (n *padding) Encode(w *Writer, v any, sc *Scope) error {
	if b, ok := v.([]byte); ok && len(b) == n.size {
		w.Write(b)
		return nil
	}
	if !IsZero(v) {
		return fmt.Errorf("%w: padding must be zero", ErrInvalidValue)
	}
	w.Write(make([]byte, n.size))
	return nil
}
