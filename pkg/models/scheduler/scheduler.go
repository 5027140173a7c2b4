// Package scheduler defines the Scheduler and Scheduler Setup model
// families.
package scheduler

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Scheduler opcodes.
const (
	ActionGet      opcode.Opcode = 0x8248
	Get            opcode.Opcode = 0x8249
	Status         opcode.Opcode = 0x824A
	ActionStatus   opcode.Opcode = 0x5F
	ActionSet      opcode.Opcode = 0x60
	ActionSetUnack opcode.Opcode = 0x61
)

// Action is what a scheduled entry does when it fires.
type Action uint8

const (
	ActionTurnOff     Action = 0x0
	ActionTurnOn      Action = 0x1
	ActionSceneRecall Action = 0x2
	ActionNone        Action = 0xF
)

func (a Action) String() string {
	switch a {
	case ActionTurnOff:
		return "TURN_OFF"
	case ActionTurnOn:
		return "TURN_ON"
	case ActionSceneRecall:
		return "SCENE_RECALL"
	case ActionNone:
		return "NO_ACTION"
	default:
		return "UNKNOWN"
	}
}

// Wildcards and special values of the entry time fields.
const (
	AnyYear        = 0x64
	AnyDay         = 0x00
	AnyHour        = 0x18
	RandomHour     = 0x19
	AnyMinute      = 0x3C
	Every15Minutes = 0x3D
	Every20Minutes = 0x3E
	RandomMinute   = 0x3F
	AnySecond      = 0x3C
	Every15Seconds = 0x3D
	Every20Seconds = 0x3E
	RandomSecond   = 0x3F
)

// MaxIndex is the highest entry index of the schedule register.
const MaxIndex = 0x0F

const firstYear = 2000

// Year converts a raw year field to a calendar year. ok is false for
// AnyYear.
func Year(raw int) (year int, ok bool) {
	if raw == AnyYear {
		return 0, false
	}
	return firstYear + raw, true
}

// The first 56 bits of an entry, least significant field last.
var entryTime = schema.PackLE(7,
	schema.Bit("action", 4).As(schema.Enum(ActionTurnOff, ActionTurnOn, ActionSceneRecall, ActionNone)),
	schema.Bit("day_of_week", 7).As(units.Mask(7)),
	schema.Bit("second", 6),
	schema.Bit("minute", 6),
	schema.Bit("hour", 5).Check(schema.Max(RandomHour)),
	schema.Bit("day", 5),
	schema.Bit("month", 12).As(units.Mask(12)),
	schema.Bit("year", 7).Check(schema.Max(AnyYear)),
	schema.Bit("index", 4),
)

var (
	entry = schema.NewStruct(
		schema.Embed(entryTime),
		schema.F("transition_time", units.RemainingTime),
		schema.F("scene_number", schema.U16),
	)

	actionGet = schema.NewStruct(
		schema.F("index", schema.U8.Check(schema.Max(MaxIndex))),
	)

	status = schema.NewStruct(
		schema.F("schedules", schema.U16.As(units.Mask(MaxIndex + 1))),
	)
)

// Families returns the Scheduler and Scheduler Setup families.
func Families() []access.Family {
	return []access.Family{Scheduler(), Setup()}
}

// Scheduler returns the Scheduler family.
func Scheduler() access.Family {
	return access.Family{
		Name: "scheduler",
		Messages: []access.Definition{
			access.Def(ActionGet, "SCHEDULER_ACTION_GET", actionGet),
			access.Def(Get, "SCHEDULER_GET", access.Empty),
			access.Def(Status, "SCHEDULER_STATUS", status),
			access.Def(ActionStatus, "SCHEDULER_ACTION_STATUS", entry),
		},
	}
}

// Setup returns the Scheduler Setup family.
func Setup() access.Family {
	return access.Family{
		Name: "scheduler_setup",
		Messages: []access.Definition{
			access.Def(ActionSet, "SCHEDULER_ACTION_SET", entry),
			access.Def(ActionSetUnack, "SCHEDULER_ACTION_SET_UNACKNOWLEDGED", entry),
		},
	}
}
