package silvair

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/backkem/btmesh/pkg/models/internal/modeltest"
	"github.com/backkem/btmesh/pkg/properties"
	"github.com/backkem/btmesh/pkg/schema"
)

func eltStamp(seconds int) C {
	return C{"tai_seconds": seconds, "time_zone_offset": 6, "tai_utc_delta": 0x0807}
}

func TestEmergencyLightingTest(t *testing.T) {
	c := modeltest.Codec(t, Families()...)
	const msg = "SILVAIR_ELT"

	faults := C{"circuit_fault": true, "battery_fault": true, "lamp_fault": false}
	durationFaults := C{"battery_duration_fault": false, "circuit_fault": true, "battery_fault": true, "lamp_fault": false}
	retry := C{"seconds": 0x01020304}

	vectors := []modeltest.Vector{
		{Name: "functional test status", PDU: "e93601 03 0504030201 06 0807 05 06", Msg: msg,
			Params: C{
				"subopcode":        ELTFunctionalTestStatus,
				"tai_timestamp":    eltStamp(0x0102030405),
				"execution_status": TestDropped,
				"execution_result": faults,
			}},
		{Name: "functional test status relative", PDU: "e93601 03 0000000000 06 0807 05 06 04030201", Msg: msg,
			Params: C{
				"subopcode":          ELTFunctionalTestStatus,
				"tai_timestamp":      eltStamp(0),
				"execution_status":   TestDropped,
				"execution_result":   faults,
				"relative_timestamp": 0x01020304,
			}},
		{Name: "duration test status", PDU: "e93601 07 0504030201 06 0807 05 06 3412", Msg: msg,
			Params: C{
				"subopcode":        ELTDurationTestStatus,
				"tai_timestamp":    eltStamp(0x0102030405),
				"execution_status": TestDropped,
				"execution_result": durationFaults,
				"duration_result":  0x1234,
			}},
		{Name: "duration test status relative", PDU: "e93601 07 0000000000 06 0807 05 06 3412 04030201", Msg: msg,
			Params: C{
				"subopcode":          ELTDurationTestStatus,
				"tai_timestamp":      eltStamp(0),
				"execution_status":   TestDropped,
				"execution_result":   durationFaults,
				"duration_result":    0x1234,
				"relative_timestamp": 0x01020304,
			}},
		{Name: "property get", PDU: "e93601 08 86ff", Msg: msg,
			Params: C{"subopcode": ELTPropertyGet, "property_id": properties.ELTDurationTestRetryPeriod}},
		{Name: "property set", PDU: "e93601 09 86ff 04030201", Msg: msg,
			Params: C{"subopcode": ELTPropertySet, "property_id": properties.ELTDurationTestRetryPeriod, "value": retry}},
		{Name: "property set unacknowledged", PDU: "e93601 0a 86ff 04030201", Msg: msg,
			Params: C{"subopcode": ELTPropertySetUnacknowledged, "property_id": properties.ELTDurationTestRetryPeriod, "value": retry}},
		{Name: "property status", PDU: "e93601 0b 86ff 04030201", Msg: msg,
			Params: C{"subopcode": ELTPropertyStatus, "property_id": properties.ELTDurationTestRetryPeriod, "value": retry}},
	}
	for _, sub := range []ELTCommand{
		ELTFunctionalTestGet, ELTFunctionalTestStart, ELTFunctionalTestStop,
		ELTDurationTestGet, ELTDurationTestStart, ELTDurationTestStop,
	} {
		vectors = append(vectors, modeltest.Vector{
			Name:   sub.String(),
			PDU:    fmt.Sprintf("e93601%02x", uint8(sub)),
			Msg:    msg,
			Params: C{"subopcode": sub},
		})
	}
	modeltest.Run(t, c, vectors)

	modeltest.DecodeFails(t, c, "e93601 03 0504030201 06 0807 08 06", schema.ErrFieldValidationFailed)
	modeltest.DecodeFails(t, c, "e93601 07 0504030201 06 0807 05 06 34", nil)
}

func TestTestTime(t *testing.T) {
	at, delta, err := TestTime(eltStamp(0x0102030405))
	if err != nil {
		t.Fatalf("TestTime() error = %v", err)
	}
	if want := time.Date(2137, time.March, 3, 22, 2, 45, 0, time.UTC); !at.Equal(want) {
		t.Errorf("TestTime() = %s, want %s", at, want)
	}
	if at.Hour() != 7 || at.Minute() != 32 {
		t.Errorf("TestTime() local time = %s, want 07:32", at.Format(time.Kitchen))
	}
	if _, offset := at.Zone(); offset != -(14*3600 + 30*60) {
		t.Errorf("TestTime() offset = %d", offset)
	}
	if delta != 1800*time.Second {
		t.Errorf("TestTime() delta = %s, want 30m0s", delta)
	}

	if _, _, err := TestTime(C{"tai_seconds": 1}); !errors.Is(err, schema.ErrMissingField) {
		t.Errorf("TestTime() error = %v, want %v", err, schema.ErrMissingField)
	}
}
