package access

import (
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Definition binds an opcode to its message name and parameter layout.
type Definition struct {
	Opcode opcode.Opcode
	Name   string
	Params schema.Node

	// Family is the name of the family that declared the message. It is set
	// by NewCodec.
	Family string
}

// Def is shorthand for a Definition literal.
func Def(op opcode.Opcode, name string, params schema.Node) Definition {
	return Definition{Opcode: op, Name: name, Params: params}
}

// Family is a named, closed set of message definitions for one model.
type Family struct {
	Name     string
	Messages []Definition
}

// Empty is the parameter layout of messages without parameters.
var Empty = schema.NewStruct()
