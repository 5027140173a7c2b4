package generic

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Generic Battery opcodes.
const (
	BatteryGet    opcode.Opcode = 0x8223
	BatteryStatus opcode.Opcode = 0x8224
)

// BatteryPresence reports whether a battery is fitted.
type BatteryPresence uint8

const (
	BatteryNotPresent          BatteryPresence = 0b00
	BatteryPresentRemovable    BatteryPresence = 0b01
	BatteryPresentNonRemovable BatteryPresence = 0b10
	BatteryPresenceUnknown     BatteryPresence = 0b11
)

func (p BatteryPresence) String() string {
	switch p {
	case BatteryNotPresent:
		return "BATTERY_NOT_PRESENT"
	case BatteryPresentRemovable:
		return "BATTERY_PRESENT_REMOVABLE"
	case BatteryPresentNonRemovable:
		return "BATTERY_PRESENT_NON_REMOVABLE"
	case BatteryPresenceUnknown:
		return "BATTERY_PRESENCE_UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// BatteryIndicator is the coarse charge level.
type BatteryIndicator uint8

const (
	BatteryChargeCriticallyLow BatteryIndicator = 0b00
	BatteryChargeLow           BatteryIndicator = 0b01
	BatteryChargeGood          BatteryIndicator = 0b10
	BatteryChargeUnknown       BatteryIndicator = 0b11
)

func (i BatteryIndicator) String() string {
	switch i {
	case BatteryChargeCriticallyLow:
		return "BATTERY_CHARGE_CRITICALLY_LOW"
	case BatteryChargeLow:
		return "BATTERY_CHARGE_LOW"
	case BatteryChargeGood:
		return "BATTERY_CHARGE_GOOD"
	case BatteryChargeUnknown:
		return "BATTERY_CHARGE_UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// BatteryCharging is the charging state.
type BatteryCharging uint8

const (
	BatteryNotChargeable         BatteryCharging = 0b00
	BatteryChargeableNotCharging BatteryCharging = 0b01
	BatteryChargeableCharging    BatteryCharging = 0b10
	BatteryChargingStateUnknown  BatteryCharging = 0b11
)

func (c BatteryCharging) String() string {
	switch c {
	case BatteryNotChargeable:
		return "BATTERY_NOT_CHARGEABLE"
	case BatteryChargeableNotCharging:
		return "BATTERY_CHARGEABLE_NOT_CHARGING"
	case BatteryChargeableCharging:
		return "BATTERY_CHARGEABLE_CHARGING"
	case BatteryChargingStateUnknown:
		return "BATTERY_CHARGING_STATE_UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// BatteryServiceability tells whether the battery needs replacing.
type BatteryServiceability uint8

const (
	BatteryServiceabilityRFU     BatteryServiceability = 0b00
	BatteryNotRequireService     BatteryServiceability = 0b01
	BatteryRequireService        BatteryServiceability = 0b10
	BatteryServiceabilityUnknown BatteryServiceability = 0b11
)

func (s BatteryServiceability) String() string {
	switch s {
	case BatteryServiceabilityRFU:
		return "RFU"
	case BatteryNotRequireService:
		return "BATTERY_NOT_REQUIRE_SERVICE"
	case BatteryRequireService:
		return "BATTERY_REQUIRE_SERVICE"
	case BatteryServiceabilityUnknown:
		return "BATTERY_SERVICEABILITY_UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// BatteryFlags is the packed flags byte of a battery status.
var BatteryFlags = schema.Pack(1,
	schema.Bit("battery_serviceability_flags", 2).As(schema.Enum(
		BatteryServiceabilityRFU, BatteryNotRequireService, BatteryRequireService, BatteryServiceabilityUnknown)),
	schema.Bit("battery_charging_flags", 2).As(schema.Enum(
		BatteryNotChargeable, BatteryChargeableNotCharging, BatteryChargeableCharging, BatteryChargingStateUnknown)),
	schema.Bit("battery_indicator_flags", 2).As(schema.Enum(
		BatteryChargeCriticallyLow, BatteryChargeLow, BatteryChargeGood, BatteryChargeUnknown)),
	schema.Bit("battery_presence_flags", 2).As(schema.Enum(
		BatteryNotPresent, BatteryPresentRemovable, BatteryPresentNonRemovable, BatteryPresenceUnknown)),
)

var batteryStatus = schema.NewStruct(
	schema.F("battery_level", units.Count(1)),
	schema.F("time_to_discharge", units.Count24),
	schema.F("time_to_charge", units.Count24),
	schema.F("flags", BatteryFlags),
)

// Battery returns the Generic Battery family.
func Battery() access.Family {
	return access.Family{
		Name: "generic_battery",
		Messages: []access.Definition{
			access.Def(BatteryGet, "GENERIC_BATTERY_GET", access.Empty),
			access.Def(BatteryStatus, "GENERIC_BATTERY_STATUS", batteryStatus),
		},
	}
}
