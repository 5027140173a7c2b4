package light

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Light Lightness opcodes.
const (
	LightnessGet            opcode.Opcode = 0x824B
	LightnessSet            opcode.Opcode = 0x824C
	LightnessSetUnack       opcode.Opcode = 0x824D
	LightnessStatus         opcode.Opcode = 0x824E
	LightnessLinearGet      opcode.Opcode = 0x824F
	LightnessLinearSet      opcode.Opcode = 0x8250
	LightnessLinearSetUnack opcode.Opcode = 0x8251
	LightnessLinearStatus   opcode.Opcode = 0x8252
	LightnessLastGet        opcode.Opcode = 0x8253
	LightnessLastStatus     opcode.Opcode = 0x8254
	LightnessDefaultGet     opcode.Opcode = 0x8255
	LightnessDefaultStatus  opcode.Opcode = 0x8256
	LightnessRangeGet       opcode.Opcode = 0x8257
	LightnessRangeStatus    opcode.Opcode = 0x8258

	LightnessDefaultSet      opcode.Opcode = 0x8259
	LightnessDefaultSetUnack opcode.Opcode = 0x825A
	LightnessRangeSet        opcode.Opcode = 0x825B
	LightnessRangeSetUnack   opcode.Opcode = 0x825C
)

var (
	lightnessSet    = setLayout(u16("lightness")...)
	lightnessStatus = statusLayout(u16("present_lightness"), u16("target_lightness"))
	lightnessValue  = schema.NewStruct(u16("lightness")...)
	lightnessRange  = schema.NewStruct(u16("range_min", "range_max")...)
	lightnessRanged = rangeStatus(u16("range_min", "range_max")...)
)

// Lightness returns the Light Lightness family.
func Lightness() access.Family {
	return access.Family{
		Name: "light_lightness",
		Messages: []access.Definition{
			access.Def(LightnessGet, "LIGHT_LIGHTNESS_GET", access.Empty),
			access.Def(LightnessSet, "LIGHT_LIGHTNESS_SET", lightnessSet),
			access.Def(LightnessSetUnack, "LIGHT_LIGHTNESS_SET_UNACKNOWLEDGED", lightnessSet),
			access.Def(LightnessStatus, "LIGHT_LIGHTNESS_STATUS", lightnessStatus),
			access.Def(LightnessLinearGet, "LIGHT_LIGHTNESS_LINEAR_GET", access.Empty),
			access.Def(LightnessLinearSet, "LIGHT_LIGHTNESS_LINEAR_SET", lightnessSet),
			access.Def(LightnessLinearSetUnack, "LIGHT_LIGHTNESS_LINEAR_SET_UNACKNOWLEDGED", lightnessSet),
			access.Def(LightnessLinearStatus, "LIGHT_LIGHTNESS_LINEAR_STATUS", lightnessStatus),
			access.Def(LightnessLastGet, "LIGHT_LIGHTNESS_LAST_GET", access.Empty),
			access.Def(LightnessLastStatus, "LIGHT_LIGHTNESS_LAST_STATUS", lightnessValue),
			access.Def(LightnessDefaultGet, "LIGHT_LIGHTNESS_DEFAULT_GET", access.Empty),
			access.Def(LightnessDefaultStatus, "LIGHT_LIGHTNESS_DEFAULT_STATUS", lightnessValue),
			access.Def(LightnessRangeGet, "LIGHT_LIGHTNESS_RANGE_GET", access.Empty),
			access.Def(LightnessRangeStatus, "LIGHT_LIGHTNESS_RANGE_STATUS", lightnessRanged),
		},
	}
}

// LightnessSetup returns the Light Lightness Setup family.
func LightnessSetup() access.Family {
	return access.Family{
		Name: "light_lightness_setup",
		Messages: []access.Definition{
			access.Def(LightnessDefaultSet, "LIGHT_LIGHTNESS_SETUP_DEFAULT_SET", lightnessValue),
			access.Def(LightnessDefaultSetUnack, "LIGHT_LIGHTNESS_SETUP_DEFAULT_SET_UNACKNOWLEDGED", lightnessValue),
			access.Def(LightnessRangeSet, "LIGHT_LIGHTNESS_SETUP_RANGE_SET", lightnessRange),
			access.Def(LightnessRangeSetUnack, "LIGHT_LIGHTNESS_SETUP_RANGE_SET_UNACKNOWLEDGED", lightnessRange),
		},
	}
}
