package light

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Light CTL opcodes.
const (
	CTLGet                    opcode.Opcode = 0x825D
	CTLSet                    opcode.Opcode = 0x825E
	CTLSetUnack               opcode.Opcode = 0x825F
	CTLStatus                 opcode.Opcode = 0x8260
	CTLTemperatureGet         opcode.Opcode = 0x8261
	CTLTemperatureRangeGet    opcode.Opcode = 0x8262
	CTLTemperatureRangeStatus opcode.Opcode = 0x8263
	CTLTemperatureSet         opcode.Opcode = 0x8264
	CTLTemperatureSetUnack    opcode.Opcode = 0x8265
	CTLTemperatureStatus      opcode.Opcode = 0x8266
	CTLDefaultGet             opcode.Opcode = 0x8267
	CTLDefaultStatus          opcode.Opcode = 0x8268

	CTLDefaultSet               opcode.Opcode = 0x8269
	CTLDefaultSetUnack          opcode.Opcode = 0x826A
	CTLTemperatureRangeSet      opcode.Opcode = 0x826B
	CTLTemperatureRangeSetUnack opcode.Opcode = 0x826C
)

// The CTL delta UV is carried unsigned.
var (
	ctlDefault = schema.NewStruct(u16("ctl_lightness", "ctl_temperature", "ctl_delta_uv")...)
	ctlSet     = setLayout(u16("ctl_lightness", "ctl_temperature", "ctl_delta_uv")...)
	ctlStatus  = statusLayout(
		u16("present_ctl_lightness", "present_ctl_temperature"),
		u16("target_ctl_lightness", "target_ctl_temperature"),
	)

	temperatureSet    = setLayout(u16("ctl_temperature", "ctl_delta_uv")...)
	temperatureStatus = statusLayout(
		u16("present_ctl_temperature", "present_ctl_delta_uv"),
		u16("target_ctl_temperature", "target_ctl_delta_uv"),
	)

	temperatureRange       = schema.NewStruct(u16("range_min", "range_max")...)
	temperatureRangeStatus = rangeStatus(u16("range_min", "range_max")...)
)

// CTL returns the Light CTL family.
func CTL() access.Family {
	return access.Family{
		Name: "light_ctl",
		Messages: []access.Definition{
			access.Def(CTLGet, "LIGHT_CTL_GET", access.Empty),
			access.Def(CTLSet, "LIGHT_CTL_SET", ctlSet),
			access.Def(CTLSetUnack, "LIGHT_CTL_SET_UNACKNOWLEDGED", ctlSet),
			access.Def(CTLStatus, "LIGHT_CTL_STATUS", ctlStatus),
			access.Def(CTLTemperatureGet, "LIGHT_CTL_TEMPERATURE_GET", access.Empty),
			access.Def(CTLTemperatureRangeGet, "LIGHT_CTL_TEMPERATURE_RANGE_GET", access.Empty),
			access.Def(CTLTemperatureRangeStatus, "LIGHT_CTL_TEMPERATURE_RANGE_STATUS", temperatureRangeStatus),
			access.Def(CTLTemperatureSet, "LIGHT_CTL_TEMPERATURE_SET", temperatureSet),
			access.Def(CTLTemperatureSetUnack, "LIGHT_CTL_TEMPERATURE_SET_UNACKNOWLEDGED", temperatureSet),
			access.Def(CTLTemperatureStatus, "LIGHT_CTL_TEMPERATURE_STATUS", temperatureStatus),
			access.Def(CTLDefaultGet, "LIGHT_CTL_TEMPERATURE_DEFAULT_GET", access.Empty),
			access.Def(CTLDefaultStatus, "LIGHT_CTL_TEMPERATURE_DEFAULT_STATUS", ctlDefault),
		},
	}
}

// CTLSetup returns the Light CTL Setup family.
func CTLSetup() access.Family {
	return access.Family{
		Name: "light_ctl_setup",
		Messages: []access.Definition{
			access.Def(CTLDefaultSet, "LIGHT_CTL_SETUP_TEMPERATURE_DEFAULT_SET", ctlDefault),
			access.Def(CTLDefaultSetUnack, "LIGHT_CTL_SETUP_TEMPERATURE_DEFAULT_SET_UNACKNOWLEDGED", ctlDefault),
			access.Def(CTLTemperatureRangeSet, "LIGHT_CTL_SETUP_TEMPERATURE_RANGE_SET", temperatureRange),
			access.Def(CTLTemperatureRangeSetUnack, "LIGHT_CTL_SETUP_TEMPERATURE_RANGE_SET_UNACKNOWLEDGED", temperatureRange),
		},
	}
}
