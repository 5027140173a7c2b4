package schema

import (
	"bytes"
)

// Writer accumulates an encoded access message body.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Write appends raw bytes.
func (w *Writer) Write(b []byte) {
	w.buf.Write(b)
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(c byte) error {
	return w.buf.WriteByte(c)
}

// PutUint appends v as an n-byte unsigned integer (n <= 8).
func (w *Writer) PutUint(v uint64, n int, bigEndian bool) {
	var tmp [8]byte
	for i := 0; i < n; i++ {
		shift := uint(8 * i)
		if bigEndian {
			shift = uint(8 * (n - 1 - i))
		}
		tmp[i] = byte(v >> shift)
	}
	w.buf.Write(tmp[:n])
}
