// Package meshtime defines the Time and Time Setup model families and
// converts their TAI-based time state to and from time.Time.
package meshtime

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Time opcodes.
const (
	Get               opcode.Opcode = 0x8237
	Set               opcode.Opcode = 0x5C
	Status            opcode.Opcode = 0x5D
	RoleGet           opcode.Opcode = 0x8238
	RoleSet           opcode.Opcode = 0x8239
	RoleStatus        opcode.Opcode = 0x823A
	ZoneGet           opcode.Opcode = 0x823B
	ZoneSet           opcode.Opcode = 0x823C
	ZoneStatus        opcode.Opcode = 0x823D
	TAIUTCDeltaGet    opcode.Opcode = 0x823E
	TAIUTCDeltaSet    opcode.Opcode = 0x823F
	TAIUTCDeltaStatus opcode.Opcode = 0x8240
)

// Role is the part a node plays in time propagation.
type Role uint8

const (
	RoleNone      Role = 0
	RoleAuthority Role = 1
	RoleRelay     Role = 2
	RoleClient    Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "NONE"
	case RoleAuthority:
		return "TIME_AUTHORITY"
	case RoleRelay:
		return "TIME_RELAY"
	case RoleClient:
		return "TIME_CLIENT"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether r is a defined role.
func (r Role) IsValid() bool {
	return r <= RoleClient
}

// taiUTCDelta is a 15-bit delta preceded by one reserved bit.
func taiUTCDelta(name string) schema.Field {
	return schema.Embed(schema.PackLE(2,
		schema.Bit("_"+name+"_rfu", 1),
		schema.Bit(name, 15),
	))
}

var (
	taiSeconds = schema.U40

	// A TAI time of zero means the time is unknown and no other field follows.
	unknownTime = schema.NewStruct(schema.F("tai_seconds", taiSeconds.Check(schema.Max(0))))

	timeState = schema.OneOf(
		schema.NewStruct(
			schema.F("tai_seconds", taiSeconds),
			schema.F("subsecond", schema.U8),
			schema.F("uncertainty", schema.U8),
			schema.Embed(schema.PackLE(2,
				schema.Bit("tai_utc_delta", 15),
				schema.BitFlag("time_authority"),
			)),
			schema.F("time_zone_offset", schema.U8),
		),
		unknownTime,
	)

	role = schema.NewStruct(
		schema.F("time_role", schema.U8.As(schema.Enum(RoleNone, RoleAuthority, RoleRelay, RoleClient))),
	)

	zoneSet = schema.NewStruct(
		schema.F("time_zone_offset_new", schema.U8),
		schema.F("tai_of_zone_change", taiSeconds),
	)

	zoneStatus = schema.NewStruct(
		schema.F("time_zone_offset_current", schema.U8),
		schema.F("time_zone_offset_new", schema.U8),
		schema.F("tai_of_zone_change", taiSeconds),
	)

	deltaSet = schema.NewStruct(
		taiUTCDelta("tai_utc_delta_new"),
		schema.F("tai_of_delta_change", taiSeconds),
	)

	deltaStatus = schema.NewStruct(
		taiUTCDelta("tai_utc_delta_current"),
		taiUTCDelta("tai_utc_delta_new"),
		schema.F("tai_of_delta_change", taiSeconds),
	)
)

// Families returns the Time and Time Setup families.
func Families() []access.Family {
	return []access.Family{Time(), Setup()}
}

// Time returns the Time family.
func Time() access.Family {
	return access.Family{
		Name: "time",
		Messages: []access.Definition{
			access.Def(Get, "TIME_GET", access.Empty),
			access.Def(Status, "TIME_STATUS", timeState),
			access.Def(RoleGet, "TIME_ROLE_GET", access.Empty),
			access.Def(RoleStatus, "TIME_ROLE_STATUS", role),
			access.Def(ZoneGet, "TIME_ZONE_GET", access.Empty),
			access.Def(ZoneStatus, "TIME_ZONE_STATUS", zoneStatus),
			access.Def(TAIUTCDeltaGet, "TAI_UTC_DELTA_GET", access.Empty),
			access.Def(TAIUTCDeltaStatus, "TAI_UTC_DELTA_STATUS", deltaStatus),
		},
	}
}

// Setup returns the Time Setup family.
func Setup() access.Family {
	return access.Family{
		Name: "time_setup",
		Messages: []access.Definition{
			access.Def(Set, "TIME_SET", timeState),
			access.Def(RoleSet, "TIME_ROLE_SET", role),
			access.Def(ZoneSet, "TIME_ZONE_SET", zoneSet),
			access.Def(TAIUTCDeltaSet, "TAI_UTC_DELTA_SET", deltaSet),
		},
	}
}
