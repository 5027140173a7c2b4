package generic

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Generic Power OnOff opcodes.
const (
	OnPowerUpGet      opcode.Opcode = 0x8211
	OnPowerUpStatus   opcode.Opcode = 0x8212
	OnPowerUpSet      opcode.Opcode = 0x8213
	OnPowerUpSetUnack opcode.Opcode = 0x8214
)

// OnPowerUp is the state an element enters after power-up.
type OnPowerUp uint8

const (
	OnPowerUpOff     OnPowerUp = 0x00
	OnPowerUpDefault OnPowerUp = 0x01
	OnPowerUpRestore OnPowerUp = 0x02
)

// String returns the name of the power-up behavior.
func (p OnPowerUp) String() string {
	switch p {
	case OnPowerUpOff:
		return "GENERIC_ON_POWERUP_OFF"
	case OnPowerUpDefault:
		return "GENERIC_ON_POWERUP_DEFAULT"
	case OnPowerUpRestore:
		return "GENERIC_ON_POWERUP_RESTORE"
	default:
		return "UNKNOWN"
	}
}

var onPowerUp = schema.NewStruct(
	schema.F("on_power_up", schema.U8.As(schema.Enum(OnPowerUpOff, OnPowerUpDefault, OnPowerUpRestore))),
)

// PowerOnOff returns the Generic Power OnOff family.
func PowerOnOff() access.Family {
	return access.Family{
		Name: "generic_power_onoff",
		Messages: []access.Definition{
			access.Def(OnPowerUpGet, "GENERIC_ON_POWERUP_GET", access.Empty),
			access.Def(OnPowerUpStatus, "GENERIC_ON_POWERUP_STATUS", onPowerUp),
		},
	}
}

// PowerOnOffSetup returns the Generic Power OnOff Setup family.
func PowerOnOffSetup() access.Family {
	return access.Family{
		Name: "generic_power_onoff_setup",
		Messages: []access.Definition{
			access.Def(OnPowerUpSet, "GENERIC_ON_POWERUP_SET", onPowerUp),
			access.Def(OnPowerUpSetUnack, "GENERIC_ON_POWERUP_SET_UNACKNOWLEDGED", onPowerUp),
		},
	}
}
