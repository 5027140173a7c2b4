package properties

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/backkem/btmesh/pkg/schema"
)

// PropertyID is a 16-bit mesh device property identifier.
type PropertyID uint16

// Mesh device properties.
const (
	AverageAmbientTemperatureInAPeriodOfDay           PropertyID = 0x0001
	AverageInputCurrent                               PropertyID = 0x0002
	AverageInputVoltage                               PropertyID = 0x0003
	AverageOutputCurrent                              PropertyID = 0x0004
	AverageOutputVoltage                              PropertyID = 0x0005
	CenterBeamIntensityAtFullPower                    PropertyID = 0x0006
	ChromaticityTolerance                             PropertyID = 0x0007
	ColorRenderingIndexR9                             PropertyID = 0x0008
	ColorRenderingIndexRA                             PropertyID = 0x0009
	DeviceAppearance                                  PropertyID = 0x000A
	DeviceCountryOfOrigin                             PropertyID = 0x000B
	DeviceDateOfManufacture                           PropertyID = 0x000C
	DeviceEnergyUseSinceTurnOn                        PropertyID = 0x000D
	DeviceFirmwareRevision                            PropertyID = 0x000E
	DeviceGlobalTradeItemNumber                       PropertyID = 0x000F
	DeviceHardwareRevision                            PropertyID = 0x0010
	DeviceManufacturerName                            PropertyID = 0x0011
	DeviceModelNumber                                 PropertyID = 0x0012
	DeviceOperatingTemperatureRangeSpecification      PropertyID = 0x0013
	DeviceOperatingTemperatureStatisticalValues       PropertyID = 0x0014
	DeviceOverTemperatureEventStatistics              PropertyID = 0x0015
	DevicePowerRangeSpecification                     PropertyID = 0x0016
	DeviceRuntimeSinceTurnOn                          PropertyID = 0x0017
	DeviceRuntimeWarranty                             PropertyID = 0x0018
	DeviceSerialNumber                                PropertyID = 0x0019
	DeviceSoftwareRevision                            PropertyID = 0x001A
	DeviceUnderTemperatureEventStatistics             PropertyID = 0x001B
	IndoorAmbientTemperatureStatisticalValues         PropertyID = 0x001C
	InitialCIE1931ChromaticityCoordinates             PropertyID = 0x001D
	InitialCorrelatedColorTemperature                 PropertyID = 0x001E
	InitialLuminousFlux                               PropertyID = 0x001F
	InitialPlanckianDistance                          PropertyID = 0x0020
	InputCurrentRangeSpecification                    PropertyID = 0x0021
	InputCurrentStatistics                            PropertyID = 0x0022
	InputOverCurrentEventStatistics                   PropertyID = 0x0023
	InputOverRippleVoltageEventStatistics             PropertyID = 0x0024
	InputOverVoltageEventStatistics                   PropertyID = 0x0025
	InputUnderCurrentEventStatistics                  PropertyID = 0x0026
	InputUnderVoltageEventStatistics                  PropertyID = 0x0027
	InputVoltageRangeSpecification                    PropertyID = 0x0028
	InputVoltageRippleSpecification                   PropertyID = 0x0029
	InputVoltageStatistics                            PropertyID = 0x002A
	LightControlAmbientLuxlevelOn                     PropertyID = 0x002B
	LightControlAmbientLuxlevelProlong                PropertyID = 0x002C
	LightControlAmbientLuxlevelStandby                PropertyID = 0x002D
	LightControlLightnessOn                           PropertyID = 0x002E
	LightControlLightnessProlong                      PropertyID = 0x002F
	LightControlLightnessStandby                      PropertyID = 0x0030
	LightControlRegulatorAccuracy                     PropertyID = 0x0031
	LightControlRegulatorKID                          PropertyID = 0x0032
	LightControlRegulatorKIU                          PropertyID = 0x0033
	LightControlRegulatorKPD                          PropertyID = 0x0034
	LightControlRegulatorKPU                          PropertyID = 0x0035
	LightControlTimeFade                              PropertyID = 0x0036
	LightControlTimeFadeOn                            PropertyID = 0x0037
	LightControlTimeFadeStandbyAuto                   PropertyID = 0x0038
	LightControlTimeFadeStandbyManual                 PropertyID = 0x0039
	LightControlTimeOccupancyDelay                    PropertyID = 0x003A
	LightControlTimeProlong                           PropertyID = 0x003B
	LightControlTimeRunOn                             PropertyID = 0x003C
	LumenMaintenanceFactor                            PropertyID = 0x003D
	LuminousEfficacy                                  PropertyID = 0x003E
	LuminousEnergySinceTurnOn                         PropertyID = 0x003F
	LuminousExposure                                  PropertyID = 0x0040
	LuminousFluxRange                                 PropertyID = 0x0041
	MotionSensed                                      PropertyID = 0x0042
	MotionThreshold                                   PropertyID = 0x0043
	OpenCircuitEventStatistics                        PropertyID = 0x0044
	OutdoorStatisticalValues                          PropertyID = 0x0045
	OutputCurrentRange                                PropertyID = 0x0046
	OutputCurrentStatistics                           PropertyID = 0x0047
	OutputRippleVoltageSpecification                  PropertyID = 0x0048
	OutputVoltageRange                                PropertyID = 0x0049
	OutputVoltageStatistics                           PropertyID = 0x004A
	OverOutputRippleVoltageEventStatistics            PropertyID = 0x004B
	PeopleCount                                       PropertyID = 0x004C
	PresenceDetected                                  PropertyID = 0x004D
	PresentAmbientLightLevel                          PropertyID = 0x004E
	PresentAmbientTemperature                         PropertyID = 0x004F
	PresentCIE1931ChromaticityCoordinates             PropertyID = 0x0050
	PresentCorrelatedColorTemperature                 PropertyID = 0x0051
	PresentDeviceInputPower                           PropertyID = 0x0052
	PresentDeviceOperatingEfficiency                  PropertyID = 0x0053
	PresentDeviceOperatingTemperature                 PropertyID = 0x0054
	PresentIlluminance                                PropertyID = 0x0055
	PresentIndoorAmbientTemperature                   PropertyID = 0x0056
	PresentInputCurrent                               PropertyID = 0x0057
	PresentInputRippleVoltage                         PropertyID = 0x0058
	PresentInputVoltage                               PropertyID = 0x0059
	PresentLuminousFlux                               PropertyID = 0x005A
	PresentOutdoorAmbientTemperature                  PropertyID = 0x005B
	PresentOutputCurrent                              PropertyID = 0x005C
	PresentOutputVoltage                              PropertyID = 0x005D
	PresentPlanckianDistance                          PropertyID = 0x005E
	PresentRelativeOutputRippleVoltage                PropertyID = 0x005F
	RelativeDeviceEnergyUseInAPeriodOfDay             PropertyID = 0x0060
	RelativeDeviceRuntimeInAGenericLevelRange         PropertyID = 0x0061
	RelativeExposureTimeInAnIlluminanceRange          PropertyID = 0x0062
	RelativeRuntimeInACorrelatedColorTemperatureRange PropertyID = 0x0063
	RelativeRuntimeInADeviceOperatingTemperatureRange PropertyID = 0x0064
	RelativeRuntimeInAnInputCurrentRange              PropertyID = 0x0065
	RelativeRuntimeInAnInputVoltageRange              PropertyID = 0x0066
	ShortCircuitEventStatistics                       PropertyID = 0x0067
	TimeSinceMotionSensed                             PropertyID = 0x0068
	TimeSincePresenceDetected                         PropertyID = 0x0069
	TotalDeviceEnergyUse                              PropertyID = 0x006A
	TotalDeviceOffOnCycles                            PropertyID = 0x006B
	TotalDevicePowerOnCycles                          PropertyID = 0x006C
	TotalDevicePowerOnTime                            PropertyID = 0x006D
	TotalDeviceRuntime                                PropertyID = 0x006E
	TotalLightExposureTime                            PropertyID = 0x006F
	TotalLuminousEnergy                               PropertyID = 0x0070
	DesiredAmbientTemperature                         PropertyID = 0x0071
	ELTPreciseTotalDeviceEnergyUse                    PropertyID = 0x0072
	PowerFactor                                       PropertyID = 0x0073
	SensorGain                                        PropertyID = 0x0074
	ELTDurationTestExecutionTimeout                   PropertyID = 0xFF84
	ELTFunctionalTestExecutionTimeout                 PropertyID = 0xFF85
	ELTDurationTestRetryPeriod                        PropertyID = 0xFF86
	ELTFunctionalTestRetryPeriod                      PropertyID = 0xFF87
	ELTDurationTestBackupAutomaticDelay               PropertyID = 0xFF88
	ELTFunctionalTestBackupAutomaticDelay             PropertyID = 0xFF89
	ELTDurationTestBackupAutomaticInterval            PropertyID = 0xFF8A
	ELTFunctionalTestBackupAutomaticInterval          PropertyID = 0xFF8B
)

var propertyNames = map[PropertyID]string{
	AverageAmbientTemperatureInAPeriodOfDay:           "AVERAGE_AMBIENT_TEMPERATURE_IN_A_PERIOD_OF_DAY",
	AverageInputCurrent:                               "AVERAGE_INPUT_CURRENT",
	AverageInputVoltage:                               "AVERAGE_INPUT_VOLTAGE",
	AverageOutputCurrent:                              "AVERAGE_OUTPUT_CURRENT",
	AverageOutputVoltage:                              "AVERAGE_OUTPUT_VOLTAGE",
	CenterBeamIntensityAtFullPower:                    "CENTER_BEAM_INTENSITY_AT_FULL_POWER",
	ChromaticityTolerance:                             "CHROMATICITY_TOLERANCE",
	ColorRenderingIndexR9:                             "COLOR_RENDERING_INDEX_R9",
	ColorRenderingIndexRA:                             "COLOR_RENDERING_INDEX_RA",
	DeviceAppearance:                                  "DEVICE_APPEARANCE",
	DeviceCountryOfOrigin:                             "DEVICE_COUNTRY_OF_ORIGIN",
	DeviceDateOfManufacture:                           "DEVICE_DATE_OF_MANUFACTURE",
	DeviceEnergyUseSinceTurnOn:                        "DEVICE_ENERGY_USE_SINCE_TURN_ON",
	DeviceFirmwareRevision:                            "DEVICE_FIRMWARE_REVISION",
	DeviceGlobalTradeItemNumber:                       "DEVICE_GLOBAL_TRADE_ITEM_NUMBER",
	DeviceHardwareRevision:                            "DEVICE_HARDWARE_REVISION",
	DeviceManufacturerName:                            "DEVICE_MANUFACTURER_NAME",
	DeviceModelNumber:                                 "DEVICE_MODEL_NUMBER",
	DeviceOperatingTemperatureRangeSpecification:      "DEVICE_OPERATING_TEMPERATURE_RANGE_SPECIFICATION",
	DeviceOperatingTemperatureStatisticalValues:       "DEVICE_OPERATING_TEMPERATURE_STATISTICAL_VALUES",
	DeviceOverTemperatureEventStatistics:              "DEVICE_OVER_TEMPERATURE_EVENT_STATISTICS",
	DevicePowerRangeSpecification:                     "DEVICE_POWER_RANGE_SPECIFICATION",
	DeviceRuntimeSinceTurnOn:                          "DEVICE_RUNTIME_SINCE_TURN_ON",
	DeviceRuntimeWarranty:                             "DEVICE_RUNTIME_WARRANTY",
	DeviceSerialNumber:                                "DEVICE_SERIAL_NUMBER",
	DeviceSoftwareRevision:                            "DEVICE_SOFTWARE_REVISION",
	DeviceUnderTemperatureEventStatistics:             "DEVICE_UNDER_TEMPERATURE_EVENT_STATISTICS",
	IndoorAmbientTemperatureStatisticalValues:         "INDOOR_AMBIENT_TEMPERATURE_STATISTICAL_VALUES",
	InitialCIE1931ChromaticityCoordinates:             "INITIAL_CIE1931_CHROMATICITY_COORDINATES",
	InitialCorrelatedColorTemperature:                 "INITIAL_CORRELATED_COLOR_TEMPERATURE",
	InitialLuminousFlux:                               "INITIAL_LUMINOUS_FLUX",
	InitialPlanckianDistance:                          "INITIAL_PLANCKIAN_DISTANCE",
	InputCurrentRangeSpecification:                    "INPUT_CURRENT_RANGE_SPECIFICATION",
	InputCurrentStatistics:                            "INPUT_CURRENT_STATISTICS",
	InputOverCurrentEventStatistics:                   "INPUT_OVER_CURRENT_EVENT_STATISTICS",
	InputOverRippleVoltageEventStatistics:             "INPUT_OVER_RIPPLE_VOLTAGE_EVENT_STATISTICS",
	InputOverVoltageEventStatistics:                   "INPUT_OVER_VOLTAGE_EVENT_STATISTICS",
	InputUnderCurrentEventStatistics:                  "INPUT_UNDER_CURRENT_EVENT_STATISTICS",
	InputUnderVoltageEventStatistics:                  "INPUT_UNDER_VOLTAGE_EVENT_STATISTICS",
	InputVoltageRangeSpecification:                    "INPUT_VOLTAGE_RANGE_SPECIFICATION",
	InputVoltageRippleSpecification:                   "INPUT_VOLTAGE_RIPPLE_SPECIFICATION",
	InputVoltageStatistics:                            "INPUT_VOLTAGE_STATISTICS",
	LightControlAmbientLuxlevelOn:                     "LIGHT_CONTROL_AMBIENT_LUXLEVEL_ON",
	LightControlAmbientLuxlevelProlong:                "LIGHT_CONTROL_AMBIENT_LUXLEVEL_PROLONG",
	LightControlAmbientLuxlevelStandby:                "LIGHT_CONTROL_AMBIENT_LUXLEVEL_STANDBY",
	LightControlLightnessOn:                           "LIGHT_CONTROL_LIGHTNESS_ON",
	LightControlLightnessProlong:                      "LIGHT_CONTROL_LIGHTNESS_PROLONG",
	LightControlLightnessStandby:                      "LIGHT_CONTROL_LIGHTNESS_STANDBY",
	LightControlRegulatorAccuracy:                     "LIGHT_CONTROL_REGULATOR_ACCURACY",
	LightControlRegulatorKID:                          "LIGHT_CONTROL_REGULATOR_KID",
	LightControlRegulatorKIU:                          "LIGHT_CONTROL_REGULATOR_KIU",
	LightControlRegulatorKPD:                          "LIGHT_CONTROL_REGULATOR_KPD",
	LightControlRegulatorKPU:                          "LIGHT_CONTROL_REGULATOR_KPU",
	LightControlTimeFade:                              "LIGHT_CONTROL_TIME_FADE",
	LightControlTimeFadeOn:                            "LIGHT_CONTROL_TIME_FADE_ON",
	LightControlTimeFadeStandbyAuto:                   "LIGHT_CONTROL_TIME_FADE_STANDBY_AUTO",
	LightControlTimeFadeStandbyManual:                 "LIGHT_CONTROL_TIME_FADE_STANDBY_MANUAL",
	LightControlTimeOccupancyDelay:                    "LIGHT_CONTROL_TIME_OCCUPANCY_DELAY",
	LightControlTimeProlong:                           "LIGHT_CONTROL_TIME_PROLONG",
	LightControlTimeRunOn:                             "LIGHT_CONTROL_TIME_RUN_ON",
	LumenMaintenanceFactor:                            "LUMEN_MAINTENANCE_FACTOR",
	LuminousEfficacy:                                  "LUMINOUS_EFFICACY",
	LuminousEnergySinceTurnOn:                         "LUMINOUS_ENERGY_SINCE_TURN_ON",
	LuminousExposure:                                  "LUMINOUS_EXPOSURE",
	LuminousFluxRange:                                 "LUMINOUS_FLUX_RANGE",
	MotionSensed:                                      "MOTION_SENSED",
	MotionThreshold:                                   "MOTION_THRESHOLD",
	OpenCircuitEventStatistics:                        "OPEN_CIRCUIT_EVENT_STATISTICS",
	OutdoorStatisticalValues:                          "OUTDOOR_STATISTICAL_VALUES",
	OutputCurrentRange:                                "OUTPUT_CURRENT_RANGE",
	OutputCurrentStatistics:                           "OUTPUT_CURRENT_STATISTICS",
	OutputRippleVoltageSpecification:                  "OUTPUT_RIPPLE_VOLTAGE_SPECIFICATION",
	OutputVoltageRange:                                "OUTPUT_VOLTAGE_RANGE",
	OutputVoltageStatistics:                           "OUTPUT_VOLTAGE_STATISTICS",
	OverOutputRippleVoltageEventStatistics:            "OVER_OUTPUT_RIPPLE_VOLTAGE_EVENT_STATISTICS",
	PeopleCount:                                       "PEOPLE_COUNT",
	PresenceDetected:                                  "PRESENCE_DETECTED",
	PresentAmbientLightLevel:                          "PRESENT_AMBIENT_LIGHT_LEVEL",
	PresentAmbientTemperature:                         "PRESENT_AMBIENT_TEMPERATURE",
	PresentCIE1931ChromaticityCoordinates:             "PRESENT_CIE1931_CHROMATICITY_COORDINATES",
	PresentCorrelatedColorTemperature:                 "PRESENT_CORRELATED_COLOR_TEMPERATURE",
	PresentDeviceInputPower:                           "PRESENT_DEVICE_INPUT_POWER",
	PresentDeviceOperatingEfficiency:                  "PRESENT_DEVICE_OPERATING_EFFICIENCY",
	PresentDeviceOperatingTemperature:                 "PRESENT_DEVICE_OPERATING_TEMPERATURE",
	PresentIlluminance:                                "PRESENT_ILLUMINANCE",
	PresentIndoorAmbientTemperature:                   "PRESENT_INDOOR_AMBIENT_TEMPERATURE",
	PresentInputCurrent:                               "PRESENT_INPUT_CURRENT",
	PresentInputRippleVoltage:                         "PRESENT_INPUT_RIPPLE_VOLTAGE",
	PresentInputVoltage:                               "PRESENT_INPUT_VOLTAGE",
	PresentLuminousFlux:                               "PRESENT_LUMINOUS_FLUX",
	PresentOutdoorAmbientTemperature:                  "PRESENT_OUTDOOR_AMBIENT_TEMPERATURE",
	PresentOutputCurrent:                              "PRESENT_OUTPUT_CURRENT",
	PresentOutputVoltage:                              "PRESENT_OUTPUT_VOLTAGE",
	PresentPlanckianDistance:                          "PRESENT_PLANCKIAN_DISTANCE",
	PresentRelativeOutputRippleVoltage:                "PRESENT_RELATIVE_OUTPUT_RIPPLE_VOLTAGE",
	RelativeDeviceEnergyUseInAPeriodOfDay:             "RELATIVE_DEVICE_ENERGY_USE_IN_A_PERIOD_OF_DAY",
	RelativeDeviceRuntimeInAGenericLevelRange:         "RELATIVE_DEVICE_RUNTIME_IN_A_GENERIC_LEVEL_RANGE",
	RelativeExposureTimeInAnIlluminanceRange:          "RELATIVE_EXPOSURE_TIME_IN_AN_ILLUMINANCE_RANGE",
	RelativeRuntimeInACorrelatedColorTemperatureRange: "RELATIVE_RUNTIME_IN_A_CORRELATED_COLOR_TEMPERATURE_RANGE",
	RelativeRuntimeInADeviceOperatingTemperatureRange: "RELATIVE_RUNTIME_IN_A_DEVICE_OPERATING_TEMPERATURE_RANGE",
	RelativeRuntimeInAnInputCurrentRange:              "RELATIVE_RUNTIME_IN_AN_INPUT_CURRENT_RANGE",
	RelativeRuntimeInAnInputVoltageRange:              "RELATIVE_RUNTIME_IN_AN_INPUT_VOLTAGE_RANGE",
	ShortCircuitEventStatistics:                       "SHORT_CIRCUIT_EVENT_STATISTICS",
	TimeSinceMotionSensed:                             "TIME_SINCE_MOTION_SENSED",
	TimeSincePresenceDetected:                         "TIME_SINCE_PRESENCE_DETECTED",
	TotalDeviceEnergyUse:                              "TOTAL_DEVICE_ENERGY_USE",
	TotalDeviceOffOnCycles:                            "TOTAL_DEVICE_OFF_ON_CYCLES",
	TotalDevicePowerOnCycles:                          "TOTAL_DEVICE_POWER_ON_CYCLES",
	TotalDevicePowerOnTime:                            "TOTAL_DEVICE_POWER_ON_TIME",
	TotalDeviceRuntime:                                "TOTAL_DEVICE_RUNTIME",
	TotalLightExposureTime:                            "TOTAL_LIGHT_EXPOSURE_TIME",
	TotalLuminousEnergy:                               "TOTAL_LUMINOUS_ENERGY",
	DesiredAmbientTemperature:                         "DESIRED_AMBIENT_TEMPERATURE",
	ELTPreciseTotalDeviceEnergyUse:                    "ELT_PRECISE_TOTAL_DEVICE_ENERGY_USE",
	PowerFactor:                                       "POWER_FACTOR",
	SensorGain:                                        "SENSOR_GAIN",
	ELTDurationTestExecutionTimeout:                   "ELT_DURATION_TEST_EXECUTION_TIMEOUT",
	ELTFunctionalTestExecutionTimeout:                 "ELT_FUNCTIONAL_TEST_EXECUTION_TIMEOUT",
	ELTDurationTestRetryPeriod:                        "ELT_DURATION_TEST_RETRY_PERIOD",
	ELTFunctionalTestRetryPeriod:                      "ELT_FUNCTIONAL_TEST_RETRY_PERIOD",
	ELTDurationTestBackupAutomaticDelay:               "ELT_DURATION_TEST_BACKUP_AUTOMATIC_DELAY",
	ELTFunctionalTestBackupAutomaticDelay:             "ELT_FUNCTIONAL_TEST_BACKUP_AUTOMATIC_DELAY",
	ELTDurationTestBackupAutomaticInterval:            "ELT_DURATION_TEST_BACKUP_AUTOMATIC_INTERVAL",
	ELTFunctionalTestBackupAutomaticInterval:          "ELT_FUNCTIONAL_TEST_BACKUP_AUTOMATIC_INTERVAL",
}

var propertyByName = func() map[string]PropertyID {
	m := make(map[string]PropertyID, len(propertyNames))
	for id, name := range propertyNames {
		m[name] = id
	}
	return m
}()

// String returns the property name, or the hex identifier for properties
// outside the enumeration.
func (id PropertyID) String() string {
	if name, ok := propertyNames[id]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint16(id))
}

// IsValid reports whether id is a known property.
func (id PropertyID) IsValid() bool {
	_, ok := propertyNames[id]
	return ok
}

// IDs returns every known property identifier in ascending order.
func IDs() []PropertyID {
	out := make([]PropertyID, 0, len(propertyNames))
	for id := range propertyNames {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseID parses a property name or a decimal or 0x-prefixed hex identifier.
func ParseID(s string) (PropertyID, error) {
	if id, ok := propertyByName[strings.ToUpper(s)]; ok {
		return id, nil
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown property %q", schema.ErrInvalidValue, s)
	}
	return PropertyID(n), nil
}

// idAdapter decodes any 16-bit value to a PropertyID. Identifiers outside
// the enumeration are kept as-is.
type idAdapter struct{}

func (idAdapter) String() string { return "property_id" }

func (idAdapter) Decode(raw int64) (any, error) {
	return PropertyID(raw), nil
}

func (idAdapter) Encode(v any) (int64, error) {
	if s, ok := v.(string); ok {
		id, err := ParseID(s)
		return int64(id), err
	}
	return schema.ToInt(v)
}

// ID is a two-byte property identifier field.
var ID = schema.U16.As(idAdapter{})
