// Package silvair defines vendor model families of Silvair devices.
package silvair

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
)

// Debug is the opcode of every debug message. The command is carried in
// the first parameter byte.
const Debug opcode.Opcode = 0xF53601

// SubOpcode is a debug command.
type SubOpcode uint8

const (
	RSSIThresholdGet                  SubOpcode = 0x00
	RSSIThresholdSet                  SubOpcode = 0x01
	RSSIThresholdStatus               SubOpcode = 0x02
	RadioTest                         SubOpcode = 0x03
	TimeslotTxPowerGet                SubOpcode = 0x04
	TimeslotTxPowerSet                SubOpcode = 0x05
	TimeslotTxPowerStatus             SubOpcode = 0x06
	SoftdeviceTxPowerGet              SubOpcode = 0x07
	SoftdeviceTxPowerSet              SubOpcode = 0x08
	SoftdeviceTxPowerStatus           SubOpcode = 0x09
	UptimeGet                         SubOpcode = 0x0A
	UptimeStatus                      SubOpcode = 0x0B
	LastSWFaultGet                    SubOpcode = 0x0C
	LastSWFaultClear                  SubOpcode = 0x0D
	LastSWFaultStatus                 SubOpcode = 0x0E
	SystemStatsGet                    SubOpcode = 0x0F
	SystemStatsStatus                 SubOpcode = 0x10
	LastMallocFaultGet                SubOpcode = 0x11
	LastMallocFaultClear              SubOpcode = 0x12
	LastMallocFaultStatus             SubOpcode = 0x13
	LastFDSFaultGet                   SubOpcode = 0x14
	LastFDSFaultClear                 SubOpcode = 0x15
	LastFDSFaultStatus                SubOpcode = 0x16
	BytesBeforeGarbageCollectorGet    SubOpcode = 0x17
	BytesBeforeGarbageCollectorStatus SubOpcode = 0x18
	ProvisionedAppVersionGet          SubOpcode = 0x19
	ProvisionedAppVersionStatus       SubOpcode = 0x1A
	FullFirmwareVersionGet            SubOpcode = 0x1B
	FullFirmwareVersionStatus         SubOpcode = 0x1C
	IVIndexGet                        SubOpcode = 0x1D
	IVIndexStatus                     SubOpcode = 0x1E
	GarbageCollectorCounterGet        SubOpcode = 0x1F
	GarbageCollectorCounterStatus     SubOpcode = 0x20
	ARAPListSizeGet                   SubOpcode = 0x21
	ARAPListSizeStatus                SubOpcode = 0x22
	ARAPListContentGet                SubOpcode = 0x23
	ARAPListContentStatus             SubOpcode = 0x24
)

var subOpcodeNames = [...]string{
	"RSSI_THRESHOLD_GET",
	"RSSI_THRESHOLD_SET",
	"RSSI_THRESHOLD_STATUS",
	"RADIO_TEST",
	"TIMESLOT_TX_POWER_GET",
	"TIMESLOT_TX_POWER_SET",
	"TIMESLOT_TX_POWER_STATUS",
	"SOFTDEVICE_TX_POWER_GET",
	"SOFTDEVICE_TX_POWER_SET",
	"SOFTDEVICE_TX_POWER_STATUS",
	"UPTIME_GET",
	"UPTIME_STATUS",
	"LAST_SW_FAULT_GET",
	"LAST_SW_FAULT_CLEAR",
	"LAST_SW_FAULT_STATUS",
	"SYSTEM_STATS_GET",
	"SYSTEM_STATS_STATUS",
	"LAST_MALLOC_FAULT_GET",
	"LAST_MALLOC_FAULT_CLEAR",
	"LAST_MALLOC_FAULT_STATUS",
	"LAST_FDS_FAULT_GET",
	"LAST_FDS_FAULT_CLEAR",
	"LAST_FDS_FAULT_STATUS",
	"BYTES_BEFORE_GARBAGE_COLLECTOR_GET",
	"BYTES_BEFORE_GARBAGE_COLLECTOR_STATUS",
	"PROVISIONED_APP_VERSION_GET",
	"PROVISIONED_APP_VERSION_STATUS",
	"FULL_FIRMWARE_VERSION_GET",
	"FULL_FIRMWARE_VERSION_STATUS",
	"IV_INDEX_GET",
	"IV_INDEX_STATUS",
	"GARBAGE_COLLECTOR_COUNTER_GET",
	"GARBAGE_COLLECTOR_COUNTER_STATUS",
	"ARAP_LIST_SIZE_GET",
	"ARAP_LIST_SIZE_STATUS",
	"ARAP_LIST_CONTENT_GET",
	"ARAP_LIST_CONTENT_STATUS",
}

func (s SubOpcode) String() string {
	if s.IsValid() {
		return subOpcodeNames[s]
	}
	return "UNKNOWN"
}

// IsValid reports whether s is a known debug command.
func (s SubOpcode) IsValid() bool {
	return int(s) < len(subOpcodeNames)
}

func subOpcodes() []SubOpcode {
	out := make([]SubOpcode, len(subOpcodeNames))
	for i := range out {
		out[i] = SubOpcode(i)
	}
	return out
}

var (
	subOpcode = schema.Enum(subOpcodes()...)

	rssiThreshold = schema.NewStruct(schema.F("rssi_threshold", schema.U8))
	radioTest     = schema.NewStruct(schema.F("packet_counter", schema.U8))
	txPower       = schema.NewStruct(schema.F("tx_power", schema.U8))
	uptime        = schema.NewStruct(schema.F("uptime", schema.U32))
	bytesLeft     = schema.NewStruct(schema.F("bytes_left", schema.U16))
	appVersion    = schema.NewStruct(schema.F("version", schema.U16))
	fwVersion     = schema.NewStruct(schema.F("version", schema.GreedyString))
	ivIndex       = schema.NewStruct(schema.F("iv_index", schema.U32))
	gcCounter     = schema.NewStruct(schema.F("counter", schema.U16))
	arapPage      = schema.NewStruct(schema.F("page", schema.U8))

	lastFault = schema.NewStruct(
		schema.F("time", schema.U32),
		schema.F("fault", schema.GreedyString),
	)

	// Stack high water marks of the firmware tasks, in reporting order.
	systemStats = schema.NewStruct(
		schema.F("stats", schema.Greedy(schema.NewStruct(
			schema.F("name", schema.PaddedString(8)),
			schema.F("high_water_mark", schema.U16),
			schema.F("_rfu", schema.Padding(4)),
		))),
	)

	// Older firmware reports one-byte counters. Encoding always produces
	// the two-byte form.
	arapSize = schema.OneOf(
		schema.NewStruct(
			schema.F("capacity", schema.U16),
			schema.F("size", schema.U16),
		),
		schema.NewStruct(
			schema.F("capacity", schema.U8),
			schema.F("size", schema.U8),
		),
	)

	arapContent = schema.NewStruct(
		schema.F("current_page", schema.U8),
		schema.F("last_page", schema.U8),
		schema.F("nodes", schema.Greedy(schema.PackLE(5,
			schema.Bit("sequence", 24),
			schema.BitFlag("ivi"),
			schema.Bit("address", 15),
		))),
	)

	// Commands without a payload map to the empty structure.
	payload = schema.On("subopcode",
		schema.When(RSSIThresholdSet, rssiThreshold),
		schema.When(RSSIThresholdStatus, rssiThreshold),
		schema.When(RadioTest, radioTest),
		schema.When(TimeslotTxPowerSet, txPower),
		schema.When(TimeslotTxPowerStatus, txPower),
		schema.When(SoftdeviceTxPowerSet, txPower),
		schema.When(SoftdeviceTxPowerStatus, txPower),
		schema.When(UptimeStatus, uptime),
		schema.When(LastSWFaultStatus, lastFault),
		schema.When(SystemStatsStatus, systemStats),
		schema.When(LastMallocFaultStatus, lastFault),
		schema.When(LastFDSFaultStatus, lastFault),
		schema.When(BytesBeforeGarbageCollectorStatus, bytesLeft),
		schema.When(ProvisionedAppVersionStatus, appVersion),
		schema.When(FullFirmwareVersionStatus, fwVersion),
		schema.When(IVIndexStatus, ivIndex),
		schema.When(GarbageCollectorCounterStatus, gcCounter),
		schema.When(ARAPListSizeStatus, arapSize),
		schema.When(ARAPListContentGet, arapPage),
		schema.When(ARAPListContentStatus, arapContent),
	).Default(access.Empty).
		Via(subOpcode).
		Labeled(func(k int64) string { return SubOpcode(k).String() })

	debug = schema.NewStruct(
		schema.F("subopcode", schema.U8.As(subOpcode)),
		schema.Embed(payload),
	)
)

// DebugFamily returns the Silvair debug family.
func DebugFamily() access.Family {
	return access.Family{
		Name: "silvair_debug",
		Messages: []access.Definition{
			access.Def(Debug, "SILVAIR_DEBUG", debug),
		},
	}
}

// Families returns the Silvair vendor families.
func Families() []access.Family {
	return []access.Family{
		DebugFamily(),
		DebugV2Family(),
		GatewayConfigFamily(),
		NetworkDiagnosticFamily(),
		LightExtendedControllerFamily(),
		RRuleSchedulerFamily(),
		EmergencyLightingTestFamily(),
	}
}
