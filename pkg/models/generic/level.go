package generic

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Generic Level opcodes.
const (
	LevelGet      opcode.Opcode = 0x8205
	LevelSet      opcode.Opcode = 0x8206
	LevelSetUnack opcode.Opcode = 0x8207
	LevelStatus   opcode.Opcode = 0x8208
	DeltaSet      opcode.Opcode = 0x8209
	DeltaSetUnack opcode.Opcode = 0x820A
	MoveSet       opcode.Opcode = 0x820B
	MoveSetUnack  opcode.Opcode = 0x820C
)

// withTransition builds the usual set layout: the required fields, then an
// optional transition time and delay.
func withTransition(required ...schema.Field) *schema.Variants {
	return schema.Optional(required, units.TransitionFields()...)
}

var (
	levelSet = withTransition(
		schema.F("level", schema.S16),
		schema.F("tid", schema.U8),
	)

	deltaSet = withTransition(
		schema.F("delta_level", schema.S32),
		schema.F("tid", schema.U8),
	)

	moveSet = withTransition(
		schema.F("delta_level", schema.S16),
		schema.F("tid", schema.U8),
	)

	levelStatus = schema.Optional(
		[]schema.Field{schema.F("present_level", schema.S16)},
		schema.F("target_level", schema.S16),
		schema.F("remaining_time", units.RemainingTime),
	)
)

// Level returns the Generic Level family.
func Level() access.Family {
	return access.Family{
		Name: "generic_level",
		Messages: []access.Definition{
			access.Def(LevelGet, "GENERIC_LEVEL_GET", access.Empty),
			access.Def(LevelSet, "GENERIC_LEVEL_SET", levelSet),
			access.Def(LevelSetUnack, "GENERIC_LEVEL_SET_UNACKNOWLEDGED", levelSet),
			access.Def(LevelStatus, "GENERIC_LEVEL_STATUS", levelStatus),
			access.Def(DeltaSet, "GENERIC_DELTA_SET", deltaSet),
			access.Def(DeltaSetUnack, "GENERIC_DELTA_SET_UNACKNOWLEDGED", deltaSet),
			access.Def(MoveSet, "GENERIC_MOVE_SET", moveSet),
			access.Def(MoveSetUnack, "GENERIC_MOVE_SET_UNACKNOWLEDGED", moveSet),
		},
	}
}
