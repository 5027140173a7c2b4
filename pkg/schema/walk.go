package schema

import (
	"errors"
	"fmt"
	"strings"
)

// SkipChildren can be returned by a WalkFunc to skip a node's children.
var SkipChildren = errors.New("schema: skip children")

// WalkFunc is called for every node visited by Walk. path is the dotted
// field path from the root.
type WalkFunc func(path string, n Node) error

// Walk visits n and its descendants depth-first.
func Walk(n Node, fn WalkFunc) error {
	return walk("", n, fn)
}

func walk(path string, n Node, fn WalkFunc) error {
	if err := fn(path, n); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	p, ok := n.(Parent)
	if !ok {
		return nil
	}
	for _, c := range p.Children() {
		if err := walk(joinPath(path, c.Name), c.Node, fn); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(path, name string) string {
	switch {
	case name == "":
		return path
	case path == "":
		return name
	}
	return path + "." + name
}

// Describer is implemented by custom nodes that describe themselves.
type Describer interface {
	Describe() Container
}

// Describe returns a JSON-friendly description of a schema tree.
func Describe(n Node) Container {
	if d, ok := n.(Describer); ok {
		return d.Describe()
	}

	out := Container{"kind": n.Kind().String()}
	switch x := n.(type) {
	case *Struct:
		fields := make([]any, 0, len(x.fields))
		for _, f := range x.fields {
			entry := Container{"type": Describe(f.Node)}
			if f.Embedded {
				entry["embedded"] = true
			} else {
				entry["name"] = f.Name
			}
			fields = append(fields, entry)
		}
		out["fields"] = fields

	case *Switch:
		out["key"] = x.key
		cases := Container{}
		for _, c := range x.Children() {
			cases[c.Name] = Describe(c.Node)
		}
		out["cases"] = cases

	case *Variants:
		candidates := make([]any, len(x.candidates))
		for i, c := range x.candidates {
			candidates[i] = Describe(c)
		}
		out["candidates"] = candidates
		out["exhaustive"] = x.exhaustive

	case *Repeated:
		switch {
		case x.toEnd:
			out["greedy"] = true
		case x.countKey != "":
			out["count_field"] = x.countKey
		default:
			out["count"] = x.count
		}
		out["element"] = Describe(x.elem)

	case *Bits:
		out["size"] = x.size
		out["little_endian"] = x.littleEndian
		fields := make([]any, len(x.fields))
		for i, f := range x.fields {
			entry := Container{"name": f.Name, "width": f.Width}
			if f.flag {
				entry["flag"] = true
			}
			describeAdapter(entry, f.adapter)
			fields[i] = entry
		}
		out["fields"] = fields

	case *Int:
		out["size"] = x.size
		out["signed"] = x.signed
		if x.bigEndian {
			out["big_endian"] = true
		}
		describeAdapter(out, x.adapter)

	case *Raw:
		out["size"] = x.size
	case *Text:
		out["size"] = x.size
	case *Float:
		out["size"] = x.size
	case *Prefixed:
		out["prefix_size"] = x.size.size
		out["value"] = Describe(x.inner)
	case *PrefixedArray:
		out["prefix_size"] = x.count.size
		out["element"] = Describe(x.elem)
	case *padding:
		out["size"] = x.size
	case *computed:
		out["length_of"] = x.key
		out["size"] = x.inner.size
	case unsupportedNode:
		out["error"] = x.err.Error()
	}
	return out
}

func describeAdapter(out Container, a Adapter) {
	if a == nil {
		return
	}
	if n, ok := a.(Namer); ok {
		names := Container{}
		for v, name := range n.Names() {
			names[fmt.Sprintf("%d", v)] = name
		}
		out["enum"] = names
		out["adapter"] = "enum"
		return
	}
	if s, ok := a.(fmt.Stringer); ok {
		out["adapter"] = s.String()
		return
	}
	name := fmt.Sprintf("%T", a)
	name = name[strings.LastIndex(name, ".")+1:]
	out["adapter"] = strings.TrimLeft(name, "*")
}
