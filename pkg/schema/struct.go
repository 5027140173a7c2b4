package schema

import (
	"fmt"
	"maps"
)

// Field is a named member of a Struct.
type Field struct {
	Name string
	Node Node

	// Embedded merges the field's decoded container into the parent
	// instead of storing it under Name.
	Embedded bool
}

// F returns a named field.
func F(name string, n Node) Field {
	return Field{Name: name, Node: n}
}

// Embed returns an anonymous field whose members are merged into the
// enclosing structure.
func Embed(n Node) Field {
	return Field{Node: n, Embedded: true}
}

// Struct is an ordered list of fields encoded back to back.
type Struct struct {
	fields []Field
}

// NewStruct creates a Struct. It panics if a field that consumes the rest
// of the input is not the last one.
func NewStruct(fields ...Field) *Struct {
	for i, f := range fields {
		if f.Node == nil {
			panic(fmt.Sprintf("schema: field %q has no node", f.Name))
		}
		if !f.Embedded && f.Name == "" {
			panic("schema: unnamed field must be embedded")
		}
		if isGreedy(f.Node) && i != len(fields)-1 {
			panic(fmt.Sprintf("schema: greedy field %q must be last", f.Name))
		}
	}
	return &Struct{fields: fields}
}

func (s *Struct) Kind() Kind { return KindStruct }

// Fields returns the declared fields in wire order.
func (s *Struct) Fields() []Field { return s.fields }

func (s *Struct) Children() []Child {
	out := make([]Child, len(s.fields))
	for i, f := range s.fields {
		out[i] = Child{Name: f.Name, Node: f.Node}
	}
	return out
}

func (s *Struct) ConsumesRest() bool {
	return len(s.fields) > 0 && isGreedy(s.fields[len(s.fields)-1].Node)
}

func (s *Struct) Decode(r *Reader, sc *Scope) (any, error) {
	out := Container{}
	if err := s.decodeInto(r, NewScope(out, sc), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Struct) decodeInto(r *Reader, sc *Scope, out Container) error {
	for _, f := range s.fields {
		if f.Embedded {
			if inner, ok := f.Node.(*Struct); ok {
				if err := inner.decodeInto(r, sc, out); err != nil {
					return err
				}
				continue
			}
		}

		v, err := f.Node.Decode(r, sc)
		if err != nil {
			return wrapField(f.Name, err)
		}

		if f.Embedded {
			c, ok := v.(Container)
			if !ok {
				return fmt.Errorf("%w: embedded %s did not produce a structure", ErrInvalidValue, f.Node.Kind())
			}
			for k, x := range c {
				out[k] = x
			}
			continue
		}

		if IsInternal(f.Name) && IsZero(v) {
			continue
		}
		out[f.Name] = v
	}
	return nil
}

func (s *Struct) Encode(w *Writer, v any, sc *Scope) error {
	c, err := ToContainer(v)
	if err != nil {
		return err
	}
	// Computed fields are stored in the scope so later siblings see them.
	vals := maps.Clone(c)
	if vals == nil {
		vals = Container{}
	}
	return s.encodeFrom(w, c, NewScope(vals, sc))
}

func (s *Struct) encodeFrom(w *Writer, c Container, sc *Scope) error {
	for _, f := range s.fields {
		if f.Embedded {
			if inner, ok := f.Node.(*Struct); ok {
				if err := inner.encodeFrom(w, c, sc); err != nil {
					return err
				}
				continue
			}
			if err := f.Node.Encode(w, c, sc); err != nil {
				return err
			}
			continue
		}

		x, ok := c[f.Name]
		if cn, isComputed := f.Node.(*computed); isComputed {
			n, err := cn.resolve(x, ok, sc)
			if err != nil {
				return wrapField(f.Name, err)
			}
			sc.vals[f.Name] = n
			x = n
		} else if !ok {
			if !IsInternal(f.Name) {
				return wrapField(f.Name, ErrMissingField)
			}
			x = 0
		}

		if err := f.Node.Encode(w, x, sc); err != nil {
			return wrapField(f.Name, err)
		}
	}
	return nil
}

// fieldCount returns the number of data fields a node contributes to its
// enclosing structure.
func fieldCount(n Node) int {
	switch x := n.(type) {
	case *Struct:
		count := 0
		for _, f := range x.fields {
			if IsInternal(f.Name) {
				continue
			}
			if f.Embedded {
				count += fieldCount(f.Node)
				continue
			}
			count++
		}
		return count
	case *Variants:
		best := 0
		for _, c := range x.candidates {
			best = max(best, fieldCount(c))
		}
		return best
	case *Bits:
		count := 0
		for _, f := range x.fields {
			if !IsInternal(f.Name) {
				count++
			}
		}
		return count
	}
	return 1
}
