package silvair

import (
	"fmt"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// DebugV2 is the opcode of the second generation debug messages.
const DebugV2 opcode.Opcode = 0xEB3601

// DebugV2Command is a debug v2 command.
type DebugV2Command uint8

const (
	DebugV2Get    DebugV2Command = 0x00
	DebugV2Set    DebugV2Command = 0x01
	DebugV2Status DebugV2Command = 0x02
	DebugV2Clear  DebugV2Command = 0x03
)

func (c DebugV2Command) String() string {
	return enumName([]string{"GET", "SET", "STATUS", "CLEAR"}, int(c))
}

// DebugParameter names the parameter a debug v2 message refers to. Values
// outside the list are passed through.
type DebugParameter uint8

const (
	GetableParameterList       DebugParameter = 0x00
	SetableParameterList       DebugParameter = 0x01
	SettableParameterTypeList  DebugParameter = 0x02
	ClearableParameterList     DebugParameter = 0x03
	ParameterRSSIThreshold     DebugParameter = 0x08
	ParameterUptime            DebugParameter = 0x09
	MeshRPLListContent         DebugParameter = 0x0A
	TimeSyncMsgList            DebugParameter = 0x0B
	FirstTimeSyncTimestamp     DebugParameter = 0x0C
	LastTimeSyncTime           DebugParameter = 0x0D
	LastTimeRecoveryTime       DebugParameter = 0x0E
	RecalledEventsTime         DebugParameter = 0x0F
	ResetMonitorCounters       DebugParameter = 0x10
	TimeRecoveryCounter        DebugParameter = 0x11
	OccupancyEventsCounter     DebugParameter = 0x12
	OccupancyHistory           DebugParameter = 0x13
	OccupancyHistoryResolution DebugParameter = 0x14
	RadioStatsPerChannel       DebugParameter = 0x15
	QueuesStats                DebugParameter = 0x16
)

var debugParameterNames = map[DebugParameter]string{
	GetableParameterList:       "GETABLE_PARAMETER_LIST",
	SetableParameterList:       "SETABLE_PARAMETER_LIST",
	SettableParameterTypeList:  "SETTABLE_PARAMETER_TYPE_LIST",
	ClearableParameterList:     "CLEARABLE_PARAMETER_LIST",
	ParameterRSSIThreshold:     "RSSI_THRESHOLD",
	ParameterUptime:            "UPTIME",
	MeshRPLListContent:         "MESH_RPL_LIST_CONTENT",
	TimeSyncMsgList:            "TIME_SYNC_MSG_LIST",
	FirstTimeSyncTimestamp:     "FIRST_TIME_SYNC_TIMESTAMP",
	LastTimeSyncTime:           "LAST_TIME_SYNC_TIME",
	LastTimeRecoveryTime:       "LAST_TIME_RECOVERY_TIME",
	RecalledEventsTime:         "RECALLED_EVENTS_TIME",
	ResetMonitorCounters:       "RESET_MONITOR_COUNTERS",
	TimeRecoveryCounter:        "TIME_RECOVERY_COUNTER",
	OccupancyEventsCounter:     "OCCUPANCY_EVENTS_COUNTER",
	OccupancyHistory:           "OCCUPANCY_HISTORY",
	OccupancyHistoryResolution: "OCCUPANCY_HISTORY_RESOLUTION",
	RadioStatsPerChannel:       "RADIO_STATS_PER_CHANNEL",
	QueuesStats:                "QUEUES_STATS",
}

func (p DebugParameter) String() string {
	if name, ok := debugParameterNames[p]; ok {
		return name
	}
	return "NOT_KNOWN_PARAMETER"
}

// IsValid reports whether p is a named parameter.
func (p DebugParameter) IsValid() bool {
	_, ok := debugParameterNames[p]
	return ok
}

// debugParameterAdapter keeps every byte value, named or not.
type debugParameterAdapter struct{}

func (debugParameterAdapter) String() string { return "debug_parameter" }

func (debugParameterAdapter) Decode(raw int64) (any, error) {
	return DebugParameter(raw), nil
}

func (debugParameterAdapter) Encode(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return schema.ToInt(v)
	}
	for p, name := range debugParameterNames {
		if name == s {
			return int64(p), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown debug parameter %q", schema.ErrInvalidValue, s)
}

// DataType is the type tag of a debug v2 value.
type DataType uint8

const (
	DataUint8   DataType = 0x00
	DataUint16  DataType = 0x01
	DataUint32  DataType = 0x02
	DataUint64  DataType = 0x03
	DataInt8    DataType = 0x04
	DataInt16   DataType = 0x05
	DataInt32   DataType = 0x06
	DataInt64   DataType = 0x07
	DataFloat   DataType = 0x08
	DataDouble  DataType = 0x09
	DataEnum    DataType = 0x0A
	DataString  DataType = 0x0B
	DataArray   DataType = 0x0C
	DataInvalid DataType = 0xFF
)

var dataTypeNames = []string{
	"UINT8", "UINT16", "UINT32", "UINT64", "INT8", "INT16", "INT32", "INT64",
	"FLOAT", "DOUBLE", "ENUM", "STRING", "ARRAY",
}

func (t DataType) String() string {
	if t == DataInvalid {
		return "INVALID"
	}
	return enumName(dataTypeNames, int(t))
}

var (
	dataType = schema.Enum(
		DataUint8, DataUint16, DataUint32, DataUint64, DataInt8, DataInt16, DataInt32, DataInt64,
		DataFloat, DataDouble, DataEnum, DataString, DataArray, DataInvalid,
	)

	// An invalid value carries no bytes and decodes to an empty structure.
	debugV2Value = schema.NewStruct(
		schema.F("data_type", schema.U8.As(dataType)),
		schema.F("parameter", schema.On("data_type",
			schema.When(DataUint8, schema.U8),
			schema.When(DataUint16, schema.U16),
			schema.When(DataUint32, schema.U32),
			schema.When(DataUint64, schema.Uint(8)),
			schema.When(DataInt8, schema.S8),
			schema.When(DataInt16, schema.S16),
			schema.When(DataInt32, schema.S32),
			schema.When(DataInt64, schema.Sint(8)),
			schema.When(DataFloat, schema.F32),
			schema.When(DataDouble, schema.F64),
			schema.When(DataEnum, schema.U8),
			schema.When(DataString, schema.LengthPrefixed(schema.U8, schema.GreedyString)),
			schema.When(DataArray, schema.CountPrefixed(schema.U8, schema.U8)),
			schema.When(DataInvalid, access.Empty),
		).Via(dataType).
			Labeled(func(k int64) string { return DataType(k).String() })),
	)

	debugV2 = schema.NewStruct(
		schema.F("subopcode", schema.U8.As(schema.Enum(DebugV2Get, DebugV2Set, DebugV2Status, DebugV2Clear))),
		schema.F("parameter_type", schema.U8.As(debugParameterAdapter{})),
		schema.F("page_number", schema.U8),
		schema.F("payload", schema.Greedy(debugV2Value)),
	)
)

// DebugV2Family returns the Silvair debug v2 family.
func DebugV2Family() access.Family {
	return access.Family{
		Name: "silvair_debug_v2",
		Messages: []access.Definition{
			access.Def(DebugV2, "SILVAIR_DEBUG_V2", debugV2),
		},
	}
}
