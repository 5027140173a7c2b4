package sensor

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/properties"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Sensor Setup opcodes.
const (
	CadenceGet      opcode.Opcode = 0x8234
	CadenceSet      opcode.Opcode = 0x55
	CadenceSetUnack opcode.Opcode = 0x56
	CadenceStatus   opcode.Opcode = 0x57
	SettingsGet     opcode.Opcode = 0x8235
	SettingsStatus  opcode.Opcode = 0x58
	SettingGet      opcode.Opcode = 0x8236
	SettingSet      opcode.Opcode = 0x59
	SettingSetUnack opcode.Opcode = 0x5A
	SettingStatus   opcode.Opcode = 0x5B
)

// SettingAccess tells whether a sensor setting can be written.
type SettingAccess uint8

const (
	AccessReadOnly  SettingAccess = 0x01
	AccessReadWrite SettingAccess = 0x03
)

func (a SettingAccess) String() string {
	switch a {
	case AccessReadOnly:
		return "READ_ONLY"
	case AccessReadWrite:
		return "READ_WRITE"
	default:
		return "UNKNOWN"
	}
}

// TriggerType selects the unit of the cadence trigger deltas.
type TriggerType uint8

const (
	// TriggerProperty deltas use the format of the sensor property.
	TriggerProperty TriggerType = 0
	// TriggerPercentage deltas are unitless percentages of the value.
	TriggerPercentage TriggerType = 1
)

func (t TriggerType) String() string {
	switch t {
	case TriggerProperty:
		return "PROPERTY"
	case TriggerPercentage:
		return "PERCENTAGE"
	default:
		return "UNKNOWN"
	}
}

// Cadence limits.
const (
	MaxFastCadencePeriodDivisor = 15
	MaxStatusMinInterval        = 26
)

var (
	settingAccess = schema.U8.As(schema.Enum(AccessReadOnly, AccessReadWrite))

	triggerType = schema.Enum(TriggerProperty, TriggerPercentage)

	triggerDelta = schema.On("status_trigger_type",
		schema.When(TriggerProperty, propertyValue(false)),
		schema.When(TriggerPercentage, schema.U16.As(units.Scale(0.01, 2))),
	).Via(triggerType)

	cadenceGet = schema.NewStruct(propertyID)

	cadenceStatus = schema.Optional(
		[]schema.Field{propertyID},
		schema.Embed(schema.Pack(1,
			schema.Bit("status_trigger_type", 1).As(triggerType),
			schema.Bit("fast_cadence_period_divisor", 7).Check(schema.Max(MaxFastCadencePeriodDivisor)),
		)),
		schema.F("status_trigger_delta_down", triggerDelta),
		schema.F("status_trigger_delta_up", triggerDelta),
		schema.F("status_min_interval", schema.U8.Check(schema.Max(MaxStatusMinInterval))),
		schema.F("fast_cadence_low", propertyValue(false)),
		schema.F("fast_cadence_high", propertyValue(false)),
	)

	settingsGet = schema.NewStruct(
		schema.F("sensor_property_id", properties.ID),
	)

	settingsStatus = schema.NewStruct(
		schema.F("sensor_property_id", properties.ID),
		schema.F("sensor_setting_property_ids", schema.Greedy(properties.ID)),
	)

	settingGet = schema.NewStruct(
		schema.F("sensor_property_id", properties.ID),
		schema.F("sensor_setting_property_id", properties.ID),
	)

	settingRaw = properties.Value("sensor_setting_property_id", properties.Raw)

	settingSet = schema.NewStruct(
		schema.F("sensor_property_id", properties.ID),
		schema.F("sensor_setting_property_id", properties.ID),
		schema.F("sensor_setting_raw", settingRaw),
	)

	// An unknown setting is reported without access and value.
	settingStatus = schema.Optional(
		[]schema.Field{
			schema.F("sensor_property_id", properties.ID),
			schema.F("sensor_setting_property_id", properties.ID),
		},
		schema.F("sensor_setting_access", settingAccess),
		schema.F("sensor_setting_raw", settingRaw),
	)
)

// Setup returns the Sensor Setup family.
func Setup() access.Family {
	return access.Family{
		Name: "sensor_setup",
		Messages: []access.Definition{
			access.Def(CadenceGet, "SENSOR_CADENCE_GET", cadenceGet),
			access.Def(CadenceSet, "SENSOR_CADENCE_SET", cadenceStatus),
			access.Def(CadenceSetUnack, "SENSOR_CADENCE_SET_UNACKNOWLEDGED", cadenceStatus),
			access.Def(CadenceStatus, "SENSOR_CADENCE_STATUS", cadenceStatus),
			access.Def(SettingsGet, "SENSOR_SETTINGS_GET", settingsGet),
			access.Def(SettingsStatus, "SENSOR_SETTINGS_STATUS", settingsStatus),
			access.Def(SettingGet, "SENSOR_SETTING_GET", settingGet),
			access.Def(SettingSet, "SENSOR_SETTING_SET", settingSet),
			access.Def(SettingSetUnack, "SENSOR_SETTING_SET_UNACKNOWLEDGED", settingSet),
			access.Def(SettingStatus, "SENSOR_SETTING_STATUS", settingStatus),
		},
	}
}
