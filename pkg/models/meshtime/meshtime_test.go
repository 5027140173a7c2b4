package meshtime

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/backkem/btmesh/pkg/models/internal/modeltest"
	"github.com/backkem/btmesh/pkg/schema"
)

type C = schema.Container

var setParams = C{
	"tai_seconds":      0x2667f7bd,
	"subsecond":        0x1a,
	"uncertainty":      0xb2,
	"tai_utc_delta":    0x0124,
	"time_authority":   true,
	"time_zone_offset": 0x48,
}

func TestTime(t *testing.T) {
	c := modeltest.Codec(t, Families()...)
	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "get", PDU: "8237", Msg: "TIME_GET"},
		{Name: "set", PDU: "5c bdf7672600 1a b2 4902 48", Msg: "TIME_SET", Params: setParams},
		{Name: "status", PDU: "5d bdf7672600 1a b2 4902 48", Msg: "TIME_STATUS", Params: setParams},
		{Name: "status unknown", PDU: "5d 0000000000", Msg: "TIME_STATUS",
			Params: C{"tai_seconds": 0}},
		{Name: "zone get", PDU: "823b", Msg: "TIME_ZONE_GET"},
		{Name: "zone set", PDU: "823c ab 3400000012", Msg: "TIME_ZONE_SET",
			Params: C{"time_zone_offset_new": 0xab, "tai_of_zone_change": 0x1200000034}},
		{Name: "zone status", PDU: "823d cd ab 3400000012", Msg: "TIME_ZONE_STATUS",
			Params: C{"time_zone_offset_current": 0xcd, "time_zone_offset_new": 0xab, "tai_of_zone_change": 0x1200000034}},
		{Name: "delta get", PDU: "823e", Msg: "TAI_UTC_DELTA_GET"},
		{Name: "delta set", PDU: "823f 0100 5544332211", Msg: "TAI_UTC_DELTA_SET",
			Params: C{"tai_utc_delta_new": 1, "tai_of_delta_change": 0x1122334455}},
		{Name: "delta status", PDU: "8240 0140 0100 5544332211", Msg: "TAI_UTC_DELTA_STATUS",
			Params: C{"tai_utc_delta_current": 0b100000000000001, "tai_utc_delta_new": 1, "tai_of_delta_change": 0x1122334455}},
		{Name: "role get", PDU: "8238", Msg: "TIME_ROLE_GET"},
		{Name: "role set", PDU: "823903", Msg: "TIME_ROLE_SET",
			Params: C{"time_role": RoleClient}},
		{Name: "role status", PDU: "823a01", Msg: "TIME_ROLE_STATUS",
			Params: C{"time_role": RoleAuthority}},
	})

	// A non-zero time must carry every field.
	modeltest.DecodeFails(t, c, "5c 0500000000", schema.ErrNoMatchingVariant)
	modeltest.DecodeFails(t, c, "823904", schema.ErrFieldValidationFailed)
}

func TestToTime(t *testing.T) {
	got, err := ToTime(setParams)
	if err != nil {
		t.Fatalf("ToTime() error = %v", err)
	}

	want := Epoch.Add(0x2667f7bd*time.Second + 26*time.Second/256)
	if !got.Time.Equal(want) {
		t.Errorf("Time = %s, want %s", got.Time, want)
	}
	if _, offset := got.Time.Zone(); offset != 2*60*60 {
		t.Errorf("zone offset = %d, want 7200", offset)
	}
	if got.Uncertainty != 1780*time.Millisecond {
		t.Errorf("Uncertainty = %s, want 1.78s", got.Uncertainty)
	}
	if got.TAIUTCDelta != 37*time.Second {
		t.Errorf("TAIUTCDelta = %s, want 37s", got.TAIUTCDelta)
	}
	if !got.Authority {
		t.Error("Authority = false")
	}

	back, err := FromTime(got)
	if err != nil {
		t.Fatalf("FromTime() error = %v", err)
	}
	if !reflect.DeepEqual(back, setParams) {
		t.Errorf("FromTime() = %v, want %v", back, setParams)
	}
}

func TestToTimeUnknown(t *testing.T) {
	if _, err := ToTime(C{"tai_seconds": 0}); !errors.Is(err, ErrUnknownTime) {
		t.Errorf("ToTime() error = %v, want ErrUnknownTime", err)
	}
	if _, err := ToTime(C{"tai_seconds": 1}); !errors.Is(err, schema.ErrMissingField) {
		t.Errorf("ToTime() error = %v, want ErrMissingField", err)
	}
}

func TestFromTimeErrors(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{"before epoch", State{Time: Epoch.Add(-time.Hour)}},
		{"odd zone", State{Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.FixedZone("", 600))}},
		{"fractional delta", State{Time: Epoch.Add(time.Hour), TAIUTCDelta: 1500 * time.Millisecond}},
		{"uncertainty", State{Time: Epoch.Add(time.Hour), Uncertainty: 3 * time.Second}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromTime(tc.state); !errors.Is(err, schema.ErrInvalidValue) {
				t.Errorf("FromTime() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	if got := ZoneOffset(0x40); got != 0 {
		t.Errorf("ZoneOffset(0x40) = %s", got)
	}
	if got := ZoneOffset(0x3c); got != -time.Hour {
		t.Errorf("ZoneOffset(0x3c) = %s", got)
	}
	if raw, err := ZoneOffsetRaw(-time.Hour); err != nil || raw != 0x3c {
		t.Errorf("ZoneOffsetRaw(-1h) = %#x, %v", raw, err)
	}
	if got := TAIUTCDelta(0xff); got != 0 {
		t.Errorf("TAIUTCDelta(0xff) = %s", got)
	}
	if raw, err := TAIUTCDeltaRaw(37 * time.Second); err != nil || raw != 0x124 {
		t.Errorf("TAIUTCDeltaRaw(37s) = %#x, %v", raw, err)
	}
	if got := TAI(0x2667f7bd); got.Year() != 2020 {
		t.Errorf("TAI(0x2667f7bd) = %s", got)
	}
}
