package schema

import (
	"fmt"
)

// Reader is a cursor over an access message body.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Read consumes and returns the next n bytes.
// The returned slice aliases the underlying buffer.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedInput, n, r.Len())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Rest consumes and returns all unread bytes.
func (r *Reader) Rest() []byte {
	b := r.buf[r.off:]
	r.off = len(r.buf)
	return b
}

// Peek returns the next n bytes without consuming them.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedInput, n, r.Len())
	}
	return r.buf[r.off : r.off+n], nil
}

// Uint reads an n-byte unsigned integer (n <= 8).
func (r *Reader) Uint(n int, bigEndian bool) (uint64, error) {
	b, err := r.Read(n)
	if err != nil {
		return 0, err
	}
	return unpackUint(b, bigEndian), nil
}

// Fork returns an independent cursor at the current position.
// Bytes consumed through the fork do not advance r until Join is called.
func (r *Reader) Fork() *Reader {
	return &Reader{buf: r.buf, off: r.off}
}

// Join moves r to the position of a fork created from it.
func (r *Reader) Join(f *Reader) {
	r.off = f.off
}

// Sub consumes the next n bytes and returns a Reader limited to them.
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.Read(n)
	if err != nil {
		return nil, err
	}
	return NewReader(b), nil
}

func unpackUint(b []byte, bigEndian bool) uint64 {
	var v uint64
	if bigEndian {
		for _, c := range b {
			v = v<<8 | uint64(c)
		}
		return v
	}
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
