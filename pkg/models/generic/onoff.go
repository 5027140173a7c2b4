package generic

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Generic OnOff opcodes.
const (
	OnOffGet      opcode.Opcode = 0x8201
	OnOffSet      opcode.Opcode = 0x8202
	OnOffSetUnack opcode.Opcode = 0x8203
	OnOffStatus   opcode.Opcode = 0x8204
)

var (
	onOffSet = schema.Optional(
		[]schema.Field{
			schema.F("onoff", schema.U8),
			schema.F("tid", schema.U8),
		},
		units.TransitionFields()...,
	)

	onOffStatus = schema.Optional(
		[]schema.Field{schema.F("present_onoff", schema.U8)},
		schema.F("target_onoff", schema.U8),
		schema.F("remaining_time", units.RemainingTime),
	)
)

// OnOff returns the Generic OnOff family.
func OnOff() access.Family {
	return access.Family{
		Name: "generic_onoff",
		Messages: []access.Definition{
			access.Def(OnOffGet, "GENERIC_ONOFF_GET", access.Empty),
			access.Def(OnOffSet, "GENERIC_ONOFF_SET", onOffSet),
			access.Def(OnOffSetUnack, "GENERIC_ONOFF_SET_UNACKNOWLEDGED", onOffSet),
			access.Def(OnOffStatus, "GENERIC_ONOFF_STATUS", onOffStatus),
		},
	}
}
