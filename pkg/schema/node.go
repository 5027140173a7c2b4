// Package schema implements the composable node kinds used to describe
// Access-layer message parameter layouts.
//
// A schema is a tree of Nodes. Every node decodes from a Reader and encodes
// to a Writer. Decoded values are plain Go values: Container for structures,
// []any for sequences, int for integers, float64 for scaled quantities,
// bool, []byte, string, typed enums, and nil for "unknown" sentinels.
package schema

import (
	"fmt"
	"strings"
)

// Container is a decoded structure: field name to value.
type Container = map[string]any

// Kind identifies a node kind.
type Kind uint8

// Node kinds.
const (
	KindStruct Kind = iota
	KindSwitch
	KindVariants
	KindRepeated
	KindBits
	KindInt
	KindBytes
	KindString
	KindFlag
	KindPadding
	KindComputed
	KindUnsupported
	KindCustom
	KindFloat
	KindPrefixed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindSwitch:
		return "switch"
	case KindVariants:
		return "variants"
	case KindRepeated:
		return "repeated"
	case KindBits:
		return "bits"
	case KindInt:
		return "int"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFlag:
		return "flag"
	case KindPadding:
		return "padding"
	case KindComputed:
		return "computed"
	case KindUnsupported:
		return "unsupported"
	case KindCustom:
		return "custom"
	case KindFloat:
		return "float"
	case KindPrefixed:
		return "prefixed"
	default:
		return "unknown"
	}
}

// Node is a bidirectional schema element.
type Node interface {
	// Kind returns the node kind.
	Kind() Kind

	// Decode reads a value from r. Sibling fields decoded earlier are visible
	// through sc.
	Decode(r *Reader, sc *Scope) (any, error)

	// Encode writes v to w. Sibling fields of the container being encoded
	// are visible through sc.
	Encode(w *Writer, v any, sc *Scope) error
}

// Child is a named sub-node exposed for reflection.
type Child struct {
	Name string
	Node Node
}

// Parent is implemented by nodes that contain other nodes.
type Parent interface {
	Children() []Child
}

// Scope gives nodes access to the enclosing containers.
type Scope struct {
	vals Container
	up   *Scope
}

// NewScope creates a scope over vals whose parent is up.
func NewScope(vals Container, up *Scope) *Scope {
	return &Scope{vals: vals, up: up}
}

// Lookup returns the value of the nearest field called name.
func (s *Scope) Lookup(name string) (any, bool) {
	for ; s != nil; s = s.up {
		if v, ok := s.vals[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Values returns the innermost container.
func (s *Scope) Values() Container {
	if s == nil {
		return nil
	}
	return s.vals
}

// IsInternal reports whether a field name marks schema bookkeeping rather
// than message data.
func IsInternal(name string) bool {
	return strings.HasPrefix(name, "_")
}

// Decode decodes data with n. All of data must be consumed.
func Decode(n Node, data []byte) (any, error) {
	r := NewReader(data)
	v, err := n.Decode(r, nil)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes left", ErrTrailingBytes, r.Len())
	}
	return v, nil
}

// Encode encodes v with n.
func Encode(n Node, v any) ([]byte, error) {
	w := NewWriter()
	if err := n.Encode(w, v, nil); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Tail is implemented by nodes that may consume every remaining byte. Such
// a node must be the last field of its Struct.
type Tail interface {
	ConsumesRest() bool
}

func isGreedy(n Node) bool {
	t, ok := n.(Tail)
	return ok && t.ConsumesRest()
}
