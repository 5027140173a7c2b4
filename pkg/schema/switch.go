package schema

import (
	"fmt"
	"slices"
)

// Switch selects a branch by the value of an earlier sibling field.
type Switch struct {
	key   string
	cases map[int64]Node
	def   Node
	label func(int64) string
	via   Adapter
}

// Case is one branch of a Switch.
type Case struct {
	Key  int64
	Node Node
}

// On creates a Switch keyed on the sibling field named key.
func On(key string, cases ...Case) *Switch {
	s := &Switch{key: key, cases: make(map[int64]Node, len(cases))}
	for _, c := range cases {
		if _, dup := s.cases[c.Key]; dup {
			panic(fmt.Sprintf("schema: duplicate case %d in switch on %q", c.Key, key))
		}
		s.cases[c.Key] = c.Node
	}
	return s
}

// When returns a Case. key may be any integer-like value, including enums.
func When(key any, n Node) Case {
	k, err := ToInt(key)
	if err != nil {
		panic(fmt.Sprintf("schema: invalid case key %v", key))
	}
	return Case{Key: k, Node: n}
}

// Default returns a copy of s that uses n for unmapped discriminants.
func (s *Switch) Default(n Node) *Switch {
	c := *s
	c.def = n
	return &c
}

// Labeled returns a copy of s that names its cases with label for
// reflection.
func (s *Switch) Labeled(label func(int64) string) *Switch {
	c := *s
	c.label = label
	return &c
}

// Via returns a copy of s that converts the discriminant with a.Encode, so
// symbolic values such as enum names select the right branch.
func (s *Switch) Via(a Adapter) *Switch {
	c := *s
	c.via = a
	return &c
}

func (s *Switch) Kind() Kind { return KindSwitch }

// Key returns the discriminant field name.
func (s *Switch) Key() string { return s.key }

// Cases returns the branches ordered by key.
func (s *Switch) Cases() []Case {
	out := make([]Case, 0, len(s.cases))
	for k, n := range s.cases {
		out = append(out, Case{Key: k, Node: n})
	}
	slices.SortFunc(out, func(a, b Case) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return out
}

// DefaultNode returns the default branch, or nil.
func (s *Switch) DefaultNode() Node { return s.def }

func (s *Switch) Children() []Child {
	cases := s.Cases()
	out := make([]Child, 0, len(cases)+1)
	for _, c := range cases {
		name := fmt.Sprintf("%d", c.Key)
		if s.label != nil {
			name = s.label(c.Key)
		}
		out = append(out, Child{Name: name, Node: c.Node})
	}
	if s.def != nil {
		out = append(out, Child{Name: "default", Node: s.def})
	}
	return out
}

func (s *Switch) ConsumesRest() bool {
	if s.def != nil && isGreedy(s.def) {
		return true
	}
	for _, n := range s.cases {
		if isGreedy(n) {
			return true
		}
	}
	return false
}

func (s *Switch) branch(sc *Scope) (Node, error) {
	v, ok := sc.Lookup(s.key)
	if !ok {
		return nil, fmt.Errorf("%w: discriminant %q", ErrMissingField, s.key)
	}
	var k int64
	var err error
	if s.via != nil {
		k, err = s.via.Encode(v)
	} else {
		k, err = ToInt(v)
	}
	if err != nil {
		return nil, err
	}
	if n, ok := s.cases[k]; ok {
		return n, nil
	}
	if s.def != nil {
		return s.def, nil
	}
	return nil, fmt.Errorf("%w: %s = %d", ErrUnhandledVariant, s.key, k)
}

func (s *Switch) Decode(r *Reader, sc *Scope) (any, error) {
	n, err := s.branch(sc)
	if err != nil {
		return nil, err
	}
	return n.Decode(r, sc)
}

func (s *Switch) Encode(w *Writer, v any, sc *Scope) error {
	n, err := s.branch(sc)
	if err != nil {
		return err
	}
	return n.Encode(w, v, sc)
}

// Pass is a node that occupies no bytes and decodes to nil.
var Pass Node = passNode{}

type passNode struct{}

func (passNode) Kind() Kind                               { return KindPadding }
func (passNode) Decode(r *Reader, sc *Scope) (any, error) { return nil, nil }
func (passNode) Encode(w *Writer, v any, sc *Scope) error { return nil }

// Unsupported returns a node that always fails with err.
func Unsupported(err error) Node {
	return unsupportedNode{err: err}
}

type unsupportedNode struct {
	err error
}

func (n unsupportedNode) Kind() Kind { return KindUnsupported }

func (n unsupportedNode) Decode(r *Reader, sc *Scope) (any, error) {
	return nil, n.err
}

func (n unsupportedNode) Encode(w *Writer, v any, sc *Scope) error {
	return n.err
}
