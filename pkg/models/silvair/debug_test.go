package silvair

import (
	"fmt"
	"testing"

	"github.com/backkem/btmesh/pkg/models/internal/modeltest"
	"github.com/backkem/btmesh/pkg/schema"
)

type C = schema.Container

func stat(name string, mark int) C {
	return C{"name": name, "high_water_mark": mark}
}

func TestDebug(t *testing.T) {
	c := modeltest.Codec(t, Families()...)

	var vectors []modeltest.Vector
	for _, op := range []SubOpcode{
		RSSIThresholdGet, TimeslotTxPowerGet, SoftdeviceTxPowerGet, UptimeGet,
		LastSWFaultGet, SystemStatsGet, LastMallocFaultGet, LastFDSFaultGet,
		BytesBeforeGarbageCollectorGet, ProvisionedAppVersionGet, FullFirmwareVersionGet,
		IVIndexGet, GarbageCollectorCounterGet, LastSWFaultClear, LastMallocFaultClear,
		LastFDSFaultClear, ARAPListSizeGet,
	} {
		vectors = append(vectors, modeltest.Vector{
			Name:   op.String(),
			PDU:    fmt.Sprintf("f53601%02x", uint8(op)),
			Msg:    "SILVAIR_DEBUG",
			Params: C{"subopcode": op},
		})
	}

	vectors = append(vectors, []modeltest.Vector{
		{Name: "arap list content get", PDU: "f53601 23 02", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": ARAPListContentGet, "page": 2}},
		{Name: "rssi threshold set", PDU: "f53601 01 80", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": RSSIThresholdSet, "rssi_threshold": 0x80}},
		{Name: "rssi threshold status", PDU: "f53601 02 80", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": RSSIThresholdStatus, "rssi_threshold": 0x80}},
		{Name: "radio test", PDU: "f53601 03 01", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": RadioTest, "packet_counter": 1}},
		{Name: "timeslot tx power set", PDU: "f53601 05 02", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": TimeslotTxPowerSet, "tx_power": 2}},
		{Name: "softdevice tx power status", PDU: "f53601 09 04", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": SoftdeviceTxPowerStatus, "tx_power": 4}},
		{Name: "uptime status", PDU: "f53601 0b a2d00200", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": UptimeStatus, "uptime": 184482}},
		{Name: "last sw fault status", PDU: "f53601 0e 0a000000 506f776572204f4646205b375d", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": LastSWFaultStatus, "time": 10, "fault": "Power OFF [7]"}},
		{Name: "last malloc fault status", PDU: "f53601 13 00000000 4e6f204572726f72", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": LastMallocFaultStatus, "time": 0, "fault": "No Error"}},
		{Name: "last fds fault status", PDU: "f53601 16 ff000000 466f6f206572726f72", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": LastFDSFaultStatus, "time": 255, "fault": "Foo error"}},
		{Name: "bytes before garbage collector status", PDU: "f53601 18 f82e", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": BytesBeforeGarbageCollectorStatus, "bytes_left": 12024}},
		{Name: "provisioned app version status", PDU: "f53601 1a 080c", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": ProvisionedAppVersionStatus, "version": 3080}},
		{Name: "full firmware version status", PDU: "f53601 1c 322e31322e302d7263342d36633734623464", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": FullFirmwareVersionStatus, "version": "2.12.0-rc4-6c74b4d"}},
		{Name: "iv index status", PDU: "f53601 1e 05000000", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": IVIndexStatus, "iv_index": 5}},
		{Name: "garbage collector counter status", PDU: "f53601 20 0100", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": GarbageCollectorCounterStatus, "counter": 1}},
		{Name: "arap list size status", PDU: "f53601 22 feff 0100", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": ARAPListSizeStatus, "capacity": 65534, "size": 1}},
		{Name: "arap list size status short", PDU: "f53601 22 7e 0e", Msg: "SILVAIR_DEBUG",
			Params:  C{"subopcode": ARAPListSizeStatus, "capacity": 126, "size": 14},
			Encoded: "f53601 22 7e00 0e00"},
		{Name: "system stats status", PDU: "f53601 10" +
			"4845415000000000 884a 00000000" +
			"546d722053766300 2802 00000000" +
			"49444c4500000000 f400 00000000", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": SystemStatsStatus, "stats": []any{
				stat("HEAP", 19080),
				stat("Tmr Svc", 552),
				stat("IDLE", 244),
			}}},
		{Name: "arap list content status", PDU: "f53601 24 00 00 808058 0000", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": ARAPListContentStatus, "current_page": 0, "last_page": 0, "nodes": []any{
				C{"address": 0x0080, "ivi": true, "sequence": 0x58},
			}}},
		{Name: "arap list content status two nodes", PDU: "f53601 24 00 00 0700700c02 8000580000", Msg: "SILVAIR_DEBUG",
			Params: C{"subopcode": ARAPListContentStatus, "current_page": 0, "last_page": 0, "nodes": []any{
				C{"address": 0x0007, "ivi": false, "sequence": 0x20c70},
				C{"address": 0x0080, "ivi": false, "sequence": 0x58},
			}}},
	}...)

	modeltest.Run(t, c, vectors)

	modeltest.EncodeOnly(t, c, "SILVAIR_DEBUG", C{"subopcode": "UPTIME_STATUS", "uptime": 1}, "f53601 0b 01000000")
	modeltest.EncodeFails(t, c, "SILVAIR_DEBUG", C{"subopcode": UptimeStatus}, schema.ErrMissingField)
	modeltest.DecodeFails(t, c, "f53601 30", schema.ErrFieldValidationFailed)
	modeltest.DecodeFails(t, c, "f53601 0b a2d002", schema.ErrTruncatedInput)
}

func TestSubOpcode(t *testing.T) {
	if got := ARAPListContentStatus.String(); got != "ARAP_LIST_CONTENT_STATUS" {
		t.Errorf("String() = %s", got)
	}
	if SubOpcode(0x25).IsValid() {
		t.Error("SubOpcode(0x25) is valid")
	}
	if got := SubOpcode(0x25).String(); got != "UNKNOWN" {
		t.Errorf("String() = %s", got)
	}
}
