package generic

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Generic Default Transition Time opcodes.
const (
	DTTGet      opcode.Opcode = 0x820D
	DTTSet      opcode.Opcode = 0x820E
	DTTSetUnack opcode.Opcode = 0x820F
	DTTStatus   opcode.Opcode = 0x8210
)

var dtt = schema.NewStruct(schema.F("transition_time", units.TransitionTime))

// DefaultTransitionTime returns the Generic Default Transition Time family.
func DefaultTransitionTime() access.Family {
	return access.Family{
		Name: "generic_dtt",
		Messages: []access.Definition{
			access.Def(DTTGet, "GENERIC_DTT_GET", access.Empty),
			access.Def(DTTSet, "GENERIC_DTT_SET", dtt),
			access.Def(DTTSetUnack, "GENERIC_DTT_SET_UNACKNOWLEDGED", dtt),
			access.Def(DTTStatus, "GENERIC_DTT_STATUS", dtt),
		},
	}
}
