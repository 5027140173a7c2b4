package generic

import (
	"testing"

	"github.com/backkem/btmesh/pkg/models/internal/modeltest"
	"github.com/backkem/btmesh/pkg/schema"
)

type C = schema.Container

func TestOnOff(t *testing.T) {
	c := modeltest.Codec(t, OnOff())
	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "get", PDU: "8201", Msg: "GENERIC_ONOFF_GET"},
		{Name: "set", PDU: "82020122", Msg: "GENERIC_ONOFF_SET",
			Params: C{"onoff": 1, "tid": 34}},
		{Name: "set with transition", PDU: "82020031323c", Msg: "GENERIC_ONOFF_SET",
			Params: C{"onoff": 0, "tid": 49, "transition_time": 5.0, "delay": 0.3}},
		{Name: "set long transition", PDU: "82020031f23c", Msg: "GENERIC_ONOFF_SET",
			Params: C{"onoff": 0, "tid": 49, "transition_time": 30000.0, "delay": 0.3}},
		{Name: "set unacknowledged", PDU: "82030122", Msg: "GENERIC_ONOFF_SET_UNACKNOWLEDGED",
			Params: C{"onoff": 1, "tid": 34}},
		{Name: "status", PDU: "820400", Msg: "GENERIC_ONOFF_STATUS",
			Params: C{"present_onoff": 0}},
		{Name: "status with target", PDU: "820400014a", Msg: "GENERIC_ONOFF_STATUS",
			Params: C{"present_onoff": 0, "target_onoff": 1, "remaining_time": 10.0}},
		{Name: "status unknown remaining", PDU: "820400013f", Msg: "GENERIC_ONOFF_STATUS",
			Params: C{"present_onoff": 0, "target_onoff": 1, "remaining_time": nil}},
	})

	// A transition time that does not fit falls back to the short form.
	modeltest.EncodeOnly(t, c, "GENERIC_ONOFF_SET",
		C{"onoff": 1, "tid": 34, "transition_time": 6.3, "delay": 0.0}, "82020122")
}

func TestOnOffRejectsUnknownTransition(t *testing.T) {
	c := modeltest.Codec(t, OnOff())
	modeltest.DecodeFails(t, c, "820201223f00", schema.ErrNoMatchingVariant)
}

func TestLevel(t *testing.T) {
	c := modeltest.Codec(t, Level())
	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "get", PDU: "8205", Msg: "GENERIC_LEVEL_GET"},
		{Name: "set max", PDU: "8206ff7f22", Msg: "GENERIC_LEVEL_SET",
			Params: C{"level": 32767, "tid": 34}},
		{Name: "set min", PDU: "8206008022", Msg: "GENERIC_LEVEL_SET",
			Params: C{"level": -32768, "tid": 34}},
		{Name: "set with transition", PDU: "8206000031323c", Msg: "GENERIC_LEVEL_SET",
			Params: C{"level": 0, "tid": 49, "transition_time": 5.0, "delay": 0.3}},
		{Name: "set unacknowledged", PDU: "8207000031323c", Msg: "GENERIC_LEVEL_SET_UNACKNOWLEDGED",
			Params: C{"level": 0, "tid": 49, "transition_time": 5.0, "delay": 0.3}},
		{Name: "status", PDU: "8208ff7f", Msg: "GENERIC_LEVEL_STATUS",
			Params: C{"present_level": 32767}},
		{Name: "status with target", PDU: "82080000ff004a", Msg: "GENERIC_LEVEL_STATUS",
			Params: C{"present_level": 0, "target_level": 255, "remaining_time": 10.0}},
		{Name: "delta", PDU: "8209ffffff7f22", Msg: "GENERIC_DELTA_SET",
			Params: C{"delta_level": 2147483647, "tid": 34}},
		{Name: "delta with transition", PDU: "82090000000031323c", Msg: "GENERIC_DELTA_SET",
			Params: C{"delta_level": 0, "tid": 49, "transition_time": 5.0, "delay": 0.3}},
		{Name: "delta unacknowledged", PDU: "820a0000008022", Msg: "GENERIC_DELTA_SET_UNACKNOWLEDGED",
			Params: C{"delta_level": -2147483648, "tid": 34}},
		{Name: "move", PDU: "820bff7f22", Msg: "GENERIC_MOVE_SET",
			Params: C{"delta_level": 32767, "tid": 34}},
		{Name: "move unacknowledged", PDU: "820c0080 22 31 32", Msg: "GENERIC_MOVE_SET_UNACKNOWLEDGED",
			Params: C{"delta_level": -32768, "tid": 34, "transition_time": 4.9, "delay": 0.25}},
	})

	modeltest.EncodeOnly(t, c, "GENERIC_LEVEL_SET",
		C{"level": 1, "tid": 34, "transition_time": 6.3, "delay": 0.0}, "8206010022")
	modeltest.EncodeFails(t, c, "GENERIC_LEVEL_SET", C{"level": 32768, "tid": 1}, nil)
}

func TestDefaultTransitionTime(t *testing.T) {
	c := modeltest.Codec(t, DefaultTransitionTime())
	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "get", PDU: "820d", Msg: "GENERIC_DTT_GET"},
		{Name: "zero", PDU: "820e00", Msg: "GENERIC_DTT_SET",
			Params: C{"transition_time": 0.0}},
		{Name: "tenths", PDU: "820e3e", Msg: "GENERIC_DTT_SET",
			Params: C{"transition_time": 6.2}},
		{Name: "tens of seconds", PDU: "820f88", Msg: "GENERIC_DTT_SET_UNACKNOWLEDGED",
			Params: C{"transition_time": 80.0}},
		{Name: "minutes", PDU: "8210fe", Msg: "GENERIC_DTT_STATUS",
			Params: C{"transition_time": 37200.0}},
	})

	modeltest.DecodeFails(t, c, "820e3f", nil)
	modeltest.DecodeFails(t, c, "820e", schema.ErrTruncatedInput)
}

func TestPowerOnOff(t *testing.T) {
	c := modeltest.Codec(t, PowerOnOff(), PowerOnOffSetup())
	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "get", PDU: "8211", Msg: "GENERIC_ON_POWERUP_GET"},
		{Name: "status", PDU: "821201", Msg: "GENERIC_ON_POWERUP_STATUS",
			Params: C{"on_power_up": OnPowerUpDefault}},
		{Name: "set", PDU: "821302", Msg: "GENERIC_ON_POWERUP_SET",
			Params: C{"on_power_up": OnPowerUpRestore}},
		{Name: "set unacknowledged", PDU: "821400", Msg: "GENERIC_ON_POWERUP_SET_UNACKNOWLEDGED",
			Params: C{"on_power_up": OnPowerUpOff}},
	})

	modeltest.EncodeOnly(t, c, "GENERIC_ON_POWERUP_SET", C{"on_power_up": "GENERIC_ON_POWERUP_RESTORE"}, "821302")
	modeltest.DecodeFails(t, c, "821203", schema.ErrFieldValidationFailed)
}

func TestBattery(t *testing.T) {
	c := modeltest.Codec(t, Battery())
	modeltest.Run(t, c, []modeltest.Vector{
		{Name: "get", PDU: "8223", Msg: "GENERIC_BATTERY_GET"},
		{Name: "status", PDU: "822432b40000fefe0062", Msg: "GENERIC_BATTERY_STATUS",
			Params: C{
				"battery_level":     50,
				"time_to_discharge": 0xb4,
				"time_to_charge":    0xfefe,
				"flags": C{
					"battery_serviceability_flags": BatteryNotRequireService,
					"battery_charging_flags":       BatteryChargeableCharging,
					"battery_indicator_flags":      BatteryChargeCriticallyLow,
					"battery_presence_flags":       BatteryPresentNonRemovable,
				},
			}},
		{Name: "status unknown", PDU: "8224ffbbaa00ffffffdb", Msg: "GENERIC_BATTERY_STATUS",
			Params: C{
				"battery_level":     nil,
				"time_to_discharge": 0xaabb,
				"time_to_charge":    nil,
				"flags": C{
					"battery_serviceability_flags": BatteryServiceabilityUnknown,
					"battery_charging_flags":       BatteryChargeableNotCharging,
					"battery_indicator_flags":      BatteryChargeGood,
					"battery_presence_flags":       BatteryPresenceUnknown,
				},
			}},
	})
}

func TestFamilies(t *testing.T) {
	c := modeltest.Codec(t, Families()...)
	if got := len(c.Messages()); got != 4+8+4+2+2+2 {
		t.Errorf("len(Messages()) = %d, want 22", got)
	}
	if got := c.Name(BatteryStatus); got != "GENERIC_BATTERY_STATUS" {
		t.Errorf("Name(%s) = %s", BatteryStatus, got)
	}
}
