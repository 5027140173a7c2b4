package silvair

import (
	"fmt"
	"time"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/models/meshtime"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/properties"
	"github.com/backkem/btmesh/pkg/schema"
)

// EmergencyLightingTest is the opcode of every emergency lighting test
// message.
const EmergencyLightingTest opcode.Opcode = 0xE93601

// ELTCommand is an emergency lighting test command.
type ELTCommand uint8

const (
	ELTFunctionalTestGet         ELTCommand = 0x00
	ELTFunctionalTestStart       ELTCommand = 0x01
	ELTFunctionalTestStop        ELTCommand = 0x02
	ELTFunctionalTestStatus      ELTCommand = 0x03
	ELTDurationTestGet           ELTCommand = 0x04
	ELTDurationTestStart         ELTCommand = 0x05
	ELTDurationTestStop          ELTCommand = 0x06
	ELTDurationTestStatus        ELTCommand = 0x07
	ELTPropertyGet               ELTCommand = 0x08
	ELTPropertySet               ELTCommand = 0x09
	ELTPropertySetUnacknowledged ELTCommand = 0x0A
	ELTPropertyStatus            ELTCommand = 0x0B
)

var eltCommandNames = []string{
	"ELT_FUNCTIONAL_TEST_GET",
	"ELT_FUNCTIONAL_TEST_START",
	"ELT_FUNCTIONAL_TEST_STOP",
	"ELT_FUNCTIONAL_TEST_STATUS",
	"ELT_DURATION_TEST_GET",
	"ELT_DURATION_TEST_START",
	"ELT_DURATION_TEST_STOP",
	"ELT_DURATION_TEST_STATUS",
	"ELT_PROPERTY_GET",
	"ELT_PROPERTY_SET",
	"ELT_PROPERTY_SET_UNACKNOWLEDGED",
	"ELT_PROPERTY_STATUS",
}

func (c ELTCommand) String() string { return enumName(eltCommandNames, int(c)) }

func eltCommands() []ELTCommand {
	out := make([]ELTCommand, len(eltCommandNames))
	for i := range out {
		out[i] = ELTCommand(i)
	}
	return out
}

// ExecutionStatus is the state of the last emergency lighting test.
type ExecutionStatus uint8

const (
	TestFinished ExecutionStatus = iota
	TestTriggered
	TestInProgress
	TestPostponed
	TestStopped
	TestDropped
	TestTimeout
	TestUnknown
)

var executionStatusNames = []string{
	"FINISHED", "TRIGGERED", "IN_PROGRESS", "POSTPONED", "STOPPED", "DROPPED", "TIMEOUT", "UNKNOWN",
}

func (s ExecutionStatus) String() string { return enumName(executionStatusNames, int(s)) }

var (
	eltCommand = schema.Enum(eltCommands()...)

	executionStatus = schema.U8.As(schema.Enum(
		TestFinished, TestTriggered, TestInProgress, TestPostponed,
		TestStopped, TestDropped, TestTimeout, TestUnknown,
	))

	// The TAI-UTC delta is big-endian here, unlike the Time model.
	eltTimestamp = schema.NewStruct(
		schema.F("tai_seconds", schema.U40),
		schema.F("time_zone_offset", schema.U8),
		schema.Embed(schema.Pack(2,
			schema.Bit("_rfu", 1),
			schema.Bit("tai_utc_delta", 15),
		)),
	)

	functionalResult = schema.Pack(1,
		schema.Bit("_rfu", 5),
		schema.BitFlag("circuit_fault"),
		schema.BitFlag("battery_fault"),
		schema.BitFlag("lamp_fault"),
	)

	durationResult = schema.Pack(1,
		schema.Bit("_rfu", 4),
		schema.BitFlag("battery_duration_fault"),
		schema.BitFlag("circuit_fault"),
		schema.BitFlag("battery_fault"),
		schema.BitFlag("lamp_fault"),
	)

	relativeTimestamp = schema.F("relative_timestamp", schema.U32)

	functionalStatus = schema.Optional(
		[]schema.Field{
			schema.F("tai_timestamp", eltTimestamp),
			schema.F("execution_status", executionStatus),
			schema.F("execution_result", functionalResult),
		},
		relativeTimestamp,
	)

	durationStatus = schema.Optional(
		[]schema.Field{
			schema.F("tai_timestamp", eltTimestamp),
			schema.F("execution_status", executionStatus),
			schema.F("execution_result", durationResult),
			schema.F("duration_result", schema.U16),
		},
		relativeTimestamp,
	)

	eltPropertyGet = schema.NewStruct(schema.F("property_id", properties.ID))
	eltPropertySet = schema.NewStruct(
		schema.F("property_id", properties.ID),
		schema.F("value", properties.Value("property_id", properties.Raw)),
	)

	elt = schema.NewStruct(
		schema.F("subopcode", schema.U8.As(eltCommand)),
		schema.Embed(schema.On("subopcode",
			schema.When(ELTFunctionalTestStatus, functionalStatus),
			schema.When(ELTDurationTestStatus, durationStatus),
			schema.When(ELTPropertyGet, eltPropertyGet),
			schema.When(ELTPropertySet, eltPropertySet),
			schema.When(ELTPropertySetUnacknowledged, eltPropertySet),
			schema.When(ELTPropertyStatus, eltPropertySet),
		).Default(access.Empty).
			Via(eltCommand).
			Labeled(func(k int64) string { return ELTCommand(k).String() })),
	)
)

// EmergencyLightingTestFamily returns the Silvair emergency lighting test
// family.
func EmergencyLightingTestFamily() access.Family {
	return access.Family{
		Name: "silvair_emergency_lighting_test",
		Messages: []access.Definition{
			access.Def(EmergencyLightingTest, "SILVAIR_ELT", elt),
		},
	}
}

// TestTime converts the tai_timestamp of a test status to the instant in
// the reporting node's zone and the TAI-UTC delta it used.
func TestTime(ts schema.Container) (time.Time, time.Duration, error) {
	var raw [3]int64
	for i, key := range []string{"tai_seconds", "time_zone_offset", "tai_utc_delta"} {
		v, ok := ts[key]
		if !ok {
			return time.Time{}, 0, fmt.Errorf("%w: %s", schema.ErrMissingField, key)
		}
		n, err := schema.ToInt(v)
		if err != nil {
			return time.Time{}, 0, schema.WrapField(key, err)
		}
		raw[i] = n
	}
	offset := meshtime.ZoneOffset(raw[1])
	zone := time.FixedZone("", int(offset/time.Second))
	return meshtime.TAI(raw[0]).In(zone), meshtime.TAIUTCDelta(raw[2]), nil
}
